package catalog

import (
	"sort"
	"strings"

	"catalog_back_end/internal/feed"
	"catalog_back_end/internal/models"
)

// ImageSource fournit la chaîne ordonnée d'URLs candidates pour un
// code-barres. Le navigateur la parcourt sur échec de chargement ; le
// serveur ne sonde jamais les URLs lui-même.
type ImageSource interface {
	Candidates(barcode string) []string
}

// CardView est le résumé affichable d'un produit (une carte).
type CardView struct {
	Title      string   `json:"title"`
	Company    string   `json:"company,omitempty"`
	Country    string   `json:"country,omitempty"`
	FlagCode   string   `json:"flag_code,omitempty"`
	Kosher     bool     `json:"kosher"`
	IsNew      bool     `json:"is_new"`
	Volume     string   `json:"volume,omitempty"`
	Barcode    string   `json:"barcode"`
	PriceLabel string   `json:"price_label,omitempty"`
	Images     []string `json:"images"`
}

// DetailView est la vue modale : la carte, la description, toutes les
// colonnes brutes non déjà montrées, et les variantes du groupe.
type DetailView struct {
	CardView
	Description string            `json:"description,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
	Variants    []CardView        `json:"variants,omitempty"`
}

// BuildCard mappe un enregistrement vers sa carte.
func BuildCard(r models.ProductRecord, images ImageSource) CardView {
	var candidates []string
	if images != nil {
		candidates = images.Candidates(r.Barcode)
	}
	return CardView{
		Title:      r.Name,
		Company:    r.Company,
		Country:    r.Country,
		FlagCode:   FlagCode(r.Country),
		Kosher:     kosherTruthy[strings.ToLower(strings.TrimSpace(r.Kosher))],
		IsNew:      strings.EqualFold(r.IsNew, "true"),
		Volume:     r.Volume,
		Barcode:    r.Barcode,
		PriceLabel: priceLabel(r),
		Images:     candidates,
	}
}

// BuildCards mappe une liste filtrée et dédupliquée vers ses cartes.
func BuildCards(products []models.ProductRecord, images ImageSource) []CardView {
	cards := make([]CardView, 0, len(products))
	for _, r := range products {
		cards = append(cards, BuildCard(r, images))
	}
	return cards
}

// BuildDetail construit la vue détail d'un enregistrement et de son groupe.
// La liste des variantes commence par le principal puis suit l'ordre
// d'apparition ; cliquer une variante re-rend la vue pour elle.
func BuildDetail(r models.ProductRecord, group *models.ProductGroup, images ImageSource) DetailView {
	detail := DetailView{
		CardView:    BuildCard(r, images),
		Description: r.Description,
		Extra:       extraFields(r),
	}

	if group != nil {
		detail.Variants = append(detail.Variants, BuildCard(group.Main, images))
		for _, v := range group.Variants {
			detail.Variants = append(detail.Variants, BuildCard(v, images))
		}
	}
	return detail
}

// extraFields : toutes les colonnes brutes non vides qui ne sont pas déjà
// dans le résumé ou la description.
func extraFields(r models.ProductRecord) map[string]string {
	shown := feed.ResolvedHeaders()
	extra := make(map[string]string)
	for header, value := range r.Fields {
		if value == "" || shown[header] {
			continue
		}
		extra[header] = value
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}

// priceLabel : mise en forme du prix avec repli. Le champ mercuriale arrive
// déjà suffixé ; sinon le prix nu reçoit le shekel ; sinon rien.
func priceLabel(r models.ProductRecord) string {
	if r.PriceList != "" {
		return r.PriceList
	}
	if r.Price != "" {
		return r.Price + " ₪"
	}
	return ""
}

// FilterMeta rassemble les valeurs distinctes pour les listes déroulantes.
type FilterMeta struct {
	Countries  []string `json:"countries"`
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

// BuildFilterMeta parcourt la liste à plat et collecte les valeurs
// distinctes, triées, de chaque filtre à sélection unique.
func BuildFilterMeta(products []models.ProductRecord) FilterMeta {
	countries := make(map[string]bool)
	categories := make(map[string]bool)
	brands := make(map[string]bool)
	for _, r := range products {
		if r.Country != "" {
			countries[r.Country] = true
		}
		if r.Category != "" {
			categories[r.Category] = true
		}
		if r.Company != "" {
			brands[r.Company] = true
		}
	}
	return FilterMeta{
		Countries:  sortedKeys(countries),
		Categories: sortedKeys(categories),
		Brands:     sortedKeys(brands),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
