package catalog

import (
	"strings"

	"catalog_back_end/internal/models"
)

// Jetons reconnus comme "oui" pour le champ cacherout. Tout le reste
// (vide ou inconnu) compte comme "non".
var kosherTruthy = map[string]bool{
	"כן":   true,
	"כשר":  true,
	"yes":  true,
	"true": true,
}

// Filter applique l'état des filtres sur la liste à plat. Prédicats combinés
// en ET logique, chacun optionnel (valeur vide = toujours vrai). L'ordre
// d'entrée est préservé.
func Filter(products []models.ProductRecord, state models.FilterState) []models.ProductRecord {
	var out []models.ProductRecord
	for _, r := range products {
		if !matches(r, state) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(r models.ProductRecord, state models.FilterState) bool {
	// Correspondances exactes, sensibles à la casse
	if state.Country != "" && r.Country != state.Country {
		return false
	}
	if state.Category != "" && r.Category != state.Category {
		return false
	}
	if state.Brand != "" && r.Company != state.Brand {
		return false
	}
	if state.Tab != "" && r.Category != state.Tab {
		return false
	}

	if !matchesKosher(r, state.Kosher) {
		return false
	}
	if !matchesSearch(r, state.Search) {
		return false
	}
	if !matchesAllowedBrands(r, state.AllowedBrands) {
		return false
	}
	if state.NewOnly && !strings.EqualFold(r.IsNew, "true") {
		return false
	}
	return true
}

// matchesKosher : tri-état. "" passe tout, "true" exige un jeton vrai,
// "false" exige un jeton non vrai (vide ou inconnu = non cacher).
func matchesKosher(r models.ProductRecord, want string) bool {
	switch want {
	case "":
		return true
	case "true":
		return kosherTruthy[strings.ToLower(strings.TrimSpace(r.Kosher))]
	default:
		return !kosherTruthy[strings.ToLower(strings.TrimSpace(r.Kosher))]
	}
}

// matchesSearch : sous-chaîne insensible à la casse sur le OU de plusieurs
// champs — un seul champ qui contient le terme suffit.
func matchesSearch(r models.ProductRecord, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{r.Name, r.Description, r.Company, r.Barcode, r.Category, r.Country} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// matchesAllowedBrands : restriction client. Correspondance volontairement
// lâche, par inclusion dans les deux sens, pas une appartenance exacte.
func matchesAllowedBrands(r models.ProductRecord, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	brand := strings.ToLower(strings.TrimSpace(r.Company))
	for _, a := range allowed {
		a = strings.ToLower(strings.TrimSpace(a))
		if a == "" {
			continue
		}
		if strings.Contains(a, brand) || strings.Contains(brand, a) {
			return true
		}
	}
	return false
}
