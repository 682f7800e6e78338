package catalog

import (
	"testing"

	"catalog_back_end/internal/models"
)

// source d'images de test : chaîne fixe par code-barres
type stubImages struct{}

func (stubImages) Candidates(barcode string) []string {
	return []string{"cdn/" + barcode, "tl/" + barcode, "placeholder.png"}
}

func TestPriceLabelRepli(t *testing.T) {
	cases := []struct {
		name string
		rec  models.ProductRecord
		want string
	}{
		{"mercuriale déjà suffixée", models.ProductRecord{PriceList: "45 ₪"}, "45 ₪"},
		{"prix nu suffixé", models.ProductRecord{Price: "32"}, "32 ₪"},
		{"mercuriale prioritaire", models.ProductRecord{PriceList: "45 ₪", Price: "32"}, "45 ₪"},
		{"aucun prix", models.ProductRecord{}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := priceLabel(tc.rec); got != tc.want {
				t.Errorf("priceLabel = %q, attendu %q", got, tc.want)
			}
		})
	}
}

func TestFlagCode(t *testing.T) {
	if got := FlagCode("ישראל"); got != "il" {
		t.Errorf("drapeau ישראל = %q", got)
	}
	// pays non mappé : pas de drapeau, le texte reste affiché ailleurs
	if got := FlagCode("אטלנטיס"); got != "" {
		t.Errorf("pays inconnu devrait donner \"\": %q", got)
	}
}

func TestBuildCard(t *testing.T) {
	r := models.ProductRecord{
		Name:    "Wine A",
		Company: "Acme",
		Country: "ישראל",
		Barcode: "111",
		Volume:  "750ml",
		Kosher:  "כן",
		Price:   "32",
	}

	card := BuildCard(r, stubImages{})
	if card.Title != "Wine A" || card.FlagCode != "il" || !card.Kosher {
		t.Errorf("carte inattendue: %+v", card)
	}
	if card.PriceLabel != "32 ₪" {
		t.Errorf("prix = %q", card.PriceLabel)
	}
	if len(card.Images) != 3 || card.Images[0] != "cdn/111" {
		t.Errorf("chaîne d'images inattendue: %v", card.Images)
	}
}

func TestBuildDetailChampsRestants(t *testing.T) {
	r := models.ProductRecord{
		Name:        "Wine A",
		Barcode:     "111",
		Description: "Rouge sec",
		Fields: map[string]string{
			"שם פריט אוטומטי": "Wine A",
			"ברקוד":           "111",
			"תיאור":           "Rouge sec",
			"אחוז אלכוהול":    "13%",
			"ריק":             "",
		},
	}

	detail := BuildDetail(r, nil, nil)
	if detail.Description != "Rouge sec" {
		t.Errorf("description = %q", detail.Description)
	}
	// seules les colonnes non vides et non déjà affichées restent
	if len(detail.Extra) != 1 || detail.Extra["אחוז אלכוהול"] != "13%" {
		t.Errorf("extra inattendu: %v", detail.Extra)
	}
}

func TestBuildDetailVariantes(t *testing.T) {
	main := models.ProductRecord{Name: "Wine A", Company: "Acme", Barcode: "111", Volume: "750ml"}
	variant := models.ProductRecord{Name: "Wine A", Company: "Acme", Barcode: "112", Volume: "375ml"}
	group := &models.ProductGroup{Key: "wine a_acme", Main: main, Variants: []models.ProductRecord{variant}}

	detail := BuildDetail(variant, group, nil)
	if len(detail.Variants) != 2 {
		t.Fatalf("attendu 2 entrées (principal + variante), obtenu %d", len(detail.Variants))
	}
	if detail.Variants[0].Barcode != "111" || detail.Variants[1].Barcode != "112" {
		t.Errorf("le principal devrait ouvrir la liste: %+v", detail.Variants)
	}
}

func TestBuildFilterMeta(t *testing.T) {
	meta := BuildFilterMeta([]models.ProductRecord{
		{Country: "ישראל", Category: "יין", Company: "Acme"},
		{Country: "ישראל", Category: "בירה", Company: "Bravo"},
		{Country: "בלגיה", Category: "בירה"},
	})

	if len(meta.Countries) != 2 || len(meta.Categories) != 2 || len(meta.Brands) != 2 {
		t.Errorf("meta inattendue: %+v", meta)
	}
}
