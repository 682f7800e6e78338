package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// FeedSource décrit un flux CSV publié : une catégorie, une liste ordonnée
// d'URLs d'export (essayées en séquence) et le mode nouveautés.
type FeedSource struct {
	Category string
	URLs     []string
	NewOnly  bool
}

// FeedSources lit CATALOG_FEEDS, au format :
//
//	categorie=url|url_secours;categorie2=url
//
// La catégorie nommée par CATALOG_NEW_CATEGORY (défaut "חדשים") est le flux
// combiné parse+filtre nouveautés.
func FeedSources() []FeedSource {
	raw := os.Getenv("CATALOG_FEEDS")
	if raw == "" {
		return nil
	}

	newCategory := os.Getenv("CATALOG_NEW_CATEGORY")
	if newCategory == "" {
		newCategory = "חדשים"
	}

	var sources []FeedSource
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, urls, ok := strings.Cut(entry, "=")
		if !ok {
			log.Println("⚠️ Entrée CATALOG_FEEDS invalide ignorée:", entry)
			continue
		}
		name = strings.TrimSpace(name)
		var list []string
		for _, u := range strings.Split(urls, "|") {
			if u = strings.TrimSpace(u); u != "" {
				list = append(list, u)
			}
		}
		if len(list) == 0 {
			continue
		}
		sources = append(sources, FeedSource{
			Category: name,
			URLs:     list,
			NewOnly:  name == newCategory,
		})
	}
	return sources
}
