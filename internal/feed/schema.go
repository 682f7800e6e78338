package feed

import (
	"strings"

	"catalog_back_end/internal/models"
)

// Chaînes d'alias par attribut logique : les feuilles publiées n'ont pas de
// schéma fixe, les en-têtes varient selon la feuille (hébreu ou anglais).
// Le premier alias dont la valeur est non vide gagne.
var fieldAliases = map[string][]string{
	"name":        {"שם פריט אוטומטי", "שם פריט", "שם", "name"},
	"company":     {"חברה", "יצרן", "מותג", "company", "brand"},
	"country":     {"מדינה", "ארץ ייצור", "country"},
	"category":    {"קטגוריה", "סוג", "category"},
	"barcode":     {"ברקוד", "barcode"},
	"price":       {"מחיר", "price"},
	"price_list":  {"מחיר מחירון", "מחירון", "pricelist", "price_list"},
	"volume":      {"נפח", "משקל", "volume", "weight"},
	"kosher":      {"כשר", "כשרות", "kosher"},
	"is_new":      {"חדש", "is-new", "new"},
	"description": {"תיאור", "description"},
}

// resolveField renvoie la première valeur non vide de la chaîne d'alias.
// Les en-têtes du record sont déjà normalisés en minuscules.
func resolveField(fields map[string]string, logical string) string {
	for _, alias := range fieldAliases[logical] {
		if v := fields[strings.ToLower(alias)]; v != "" {
			return v
		}
	}
	return ""
}

// resolveRecord fige les champs logiques d'une ligne brute.
// La map brute est conservée pour la vue détail.
func resolveRecord(fields map[string]string, row int) models.ProductRecord {
	return models.ProductRecord{
		Name:        resolveField(fields, "name"),
		Company:     resolveField(fields, "company"),
		Country:     resolveField(fields, "country"),
		Category:    resolveField(fields, "category"),
		Barcode:     resolveField(fields, "barcode"),
		Price:       resolveField(fields, "price"),
		PriceList:   resolveField(fields, "price_list"),
		Volume:      resolveField(fields, "volume"),
		Kosher:      resolveField(fields, "kosher"),
		IsNew:       resolveField(fields, "is_new"),
		Description: resolveField(fields, "description"),
		Fields:      fields,
		Row:         row,
	}
}

// ResolvedHeaders renvoie l'ensemble (en minuscules) des en-têtes déjà
// couverts par un champ logique. La vue détail s'en sert pour ne lister que
// les colonnes brutes restantes.
func ResolvedHeaders() map[string]bool {
	set := make(map[string]bool)
	for _, aliases := range fieldAliases {
		for _, a := range aliases {
			set[strings.ToLower(a)] = true
		}
	}
	return set
}

// Normalize prépare une valeur pour servir de clé de regroupement :
// minuscules + espaces rognés. La casse d'affichage est préservée ailleurs.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GroupKey calcule la clé de regroupement d'un enregistrement.
// Sans nom, pas de clé (l'enregistrement est inutilisable pour l'affichage).
func GroupKey(r models.ProductRecord) string {
	name := Normalize(r.Name)
	if name == "" {
		return ""
	}
	if brand := Normalize(r.Company); brand != "" {
		return name + "_" + brand
	}
	return name
}
