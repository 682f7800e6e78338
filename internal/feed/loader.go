package feed

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"

	"catalog_back_end/internal/cache"
	"catalog_back_end/internal/config"
	"catalog_back_end/internal/models"
)

// Timeout par stratégie de transport, pas global : chaque URL de la chaîne
// a droit à sa propre fenêtre avant qu'on passe à la suivante.
const transportTimeout = 15 * time.Second

// Loader télécharge et parse l'ensemble des flux publiés.
type Loader struct {
	Sources []config.FeedSource
	Client  *http.Client
}

func NewLoader(sources []config.FeedSource) *Loader {
	return &Loader{
		Sources: sources,
		Client:  &http.Client{},
	}
}

type feedResult struct {
	index   int
	records []models.ProductRecord
}

// Load télécharge tous les flux en parallèle et renvoie la liste à plat,
// dans l'ordre des sources. Succès partiel accepté : un flux en échec donne
// une liste vide pour sa catégorie, jamais d'abandon des autres.
func (l *Loader) Load(ctx context.Context) []models.ProductRecord {
	results := make([]feedResult, len(l.Sources))

	var wg sync.WaitGroup
	for i, src := range l.Sources {
		wg.Add(1)
		go func(i int, src config.FeedSource) {
			defer wg.Done()

			raw, err := l.fetchWithFallback(ctx, src)
			if err != nil {
				log.Printf("⚠️ Flux '%s' injoignable, catégorie vide: %v", src.Category, err)
				results[i] = feedResult{index: i}
				return
			}

			records := Parse(raw, ParseOptions{NewOnly: src.NewOnly})
			for j := range records {
				if records[j].Category == "" {
					records[j].Category = src.Category
				}
			}
			log.Printf("✅ Flux '%s' chargé: %d produits", src.Category, len(records))
			results[i] = feedResult{index: i, records: records}
		}(i, src)
	}
	wg.Wait()

	sort.Slice(results, func(a, b int) bool { return results[a].index < results[b].index })

	var all []models.ProductRecord
	for _, r := range results {
		all = append(all, r.records...)
	}
	return all
}

// fetchWithFallback essaie chaque transport dans l'ordre : les URLs de la
// source puis le snapshot Redis. Une seule politique de reprise, pas de
// handlers d'erreur imbriqués. Un fetch réussi rafraîchit le snapshot.
func (l *Loader) fetchWithFallback(ctx context.Context, src config.FeedSource) (string, error) {
	var lastErr error
	for _, url := range src.URLs {
		raw, err := l.fetchOne(ctx, url)
		if err != nil {
			log.Printf("⚠️ Transport en échec pour '%s' (%s): %v", src.Category, url, err)
			lastErr = err
			continue
		}
		if err := cache.StoreFeedSnapshot(ctx, src.Category, raw); err != nil {
			log.Printf("⚠️ Snapshot Redis non sauvegardé pour '%s': %v", src.Category, err)
		}
		return raw, nil
	}

	// Dernier recours : le dernier snapshot connu.
	if raw, err := cache.GetFeedSnapshot(ctx, src.Category); err == nil && raw != "" {
		log.Printf("📦 Flux '%s' servi depuis le snapshot Redis", src.Category)
		return raw, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("aucun transport configuré")
	}
	return "", lastErr
}

func (l *Loader) fetchOne(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, transportTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("statut HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
