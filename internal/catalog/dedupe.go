package catalog

import (
	"catalog_back_end/internal/feed"
	"catalog_back_end/internal/models"
)

// Deduplicate ne garde qu'un représentant par clé de regroupement (le premier
// rencontré) pour l'affichage en cartes. L'ensemble "déjà vu" est reconstruit
// à chaque passe, pas de diff incrémental. Les enregistrements sans clé
// passent tels quels.
func Deduplicate(products []models.ProductRecord) []models.ProductRecord {
	seen := make(map[string]bool, len(products))
	var out []models.ProductRecord
	for _, r := range products {
		key := feed.GroupKey(r)
		if key != "" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		out = append(out, r)
	}
	return out
}
