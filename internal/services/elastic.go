package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"catalog_back_end/internal/database"
	"catalog_back_end/internal/feed"
	"catalog_back_end/internal/models"
)

const productIndex = "products"

//
// --- INDEXATION DANS ELASTICSEARCH ---
//

// IndexCatalog indexe le catalogue complet après un rechargement de flux.
// Best-effort : sans client Elastic, on ne fait rien.
func IndexCatalog(products []models.ProductRecord) {
	if database.Elastic == nil {
		return
	}

	indexed := 0
	for _, p := range products {
		if indexProduct(p) {
			indexed++
		}
	}
	log.Printf("✅ %d/%d produits indexés dans Elasticsearch", indexed, len(products))
}

func indexProduct(p models.ProductRecord) bool {
	docID := p.Barcode
	if docID == "" {
		docID = feed.GroupKey(p)
	}
	if docID == "" {
		return false
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: docID,
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return false
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", p.Name, res.String())
		return false
	}
	return true
}

//
// --- RECHERCHE DANS ELASTICSEARCH ---
//

// SearchProducts interroge l'index par nom, description, société ou pays.
func SearchProducts(query string) ([]map[string]interface{}, error) {
	if database.Elastic == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "company", "country"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Elasticsearch erreur: %+v", e)
		return nil, errors.New("index non trouvé ou vide")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %v", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("réponse Elastic invalide (pas de hits)")
	}
	hitsArray, ok := hitsData["hits"].([]interface{})
	if !ok {
		return nil, errors.New("aucun résultat trouvé")
	}

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, hit := range hitsArray {
		hitMap, _ := hit.(map[string]interface{})
		if source, ok := hitMap["_source"].(map[string]interface{}); ok {
			results = append(results, source)
		}
	}
	return results, nil
}

// SuggestCompletions renvoie des préfixes de noms pour l'autocomplétion de
// la barre de recherche, côté catalogue en mémoire (pas Elastic).
func SuggestCompletions(products []models.ProductRecord, prefix string, limit int) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" || limit <= 0 {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		name := strings.TrimSpace(p.Name)
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			seen[strings.ToLower(name)] = true
			out = append(out, name)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
