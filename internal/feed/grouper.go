package feed

import "catalog_back_end/internal/models"

// BuildGroups construit l'index clé de regroupement → groupe. Le premier
// enregistrement rencontré pour une clé devient le principal, les suivants
// s'ajoutent comme variantes dans l'ordre d'arrivée. Résultat déterministe :
// il ne dépend que de l'ordre et des valeurs d'entrée. Les enregistrements
// sans nom (clé indéfinie) sont exclus de l'index.
func BuildGroups(records []models.ProductRecord) map[string]*models.ProductGroup {
	groups := make(map[string]*models.ProductGroup)
	for _, r := range records {
		key := GroupKey(r)
		if key == "" {
			continue
		}
		if g, ok := groups[key]; ok {
			g.Variants = append(g.Variants, r)
		} else {
			groups[key] = &models.ProductGroup{Key: key, Main: r}
		}
	}
	return groups
}
