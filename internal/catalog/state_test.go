package catalog

import (
	"testing"

	"catalog_back_end/internal/models"
)

func TestCatalogReplace(t *testing.T) {
	c := New()
	if c.Size() != 0 {
		t.Fatalf("catalogue neuf non vide: %d", c.Size())
	}

	c.Replace(sampleProducts())
	if c.Size() != 4 {
		t.Errorf("taille après chargement = %d", c.Size())
	}

	// rechargement : l'état est échangé en bloc, pas fusionné
	c.Replace(sampleProducts()[:2])
	if c.Size() != 2 {
		t.Errorf("taille après rechargement = %d", c.Size())
	}
}

func TestCatalogFindByBarcode(t *testing.T) {
	c := New()
	c.Replace(sampleProducts())

	r, ok := c.FindByBarcode("222")
	if !ok || r.Name != "Beer B" {
		t.Errorf("code-barres 222: ok=%v, %+v", ok, r)
	}

	if _, ok := c.FindByBarcode("999"); ok {
		t.Error("code-barres inconnu trouvé")
	}
}

func TestCatalogGroup(t *testing.T) {
	c := New()
	c.Replace(sampleProducts())

	products := sampleProducts()
	group := c.Group(products[1]) // variante de Wine A
	if group == nil {
		t.Fatal("groupe introuvable pour la variante")
	}
	if group.Main.Barcode != "111" || len(group.Variants) != 1 {
		t.Errorf("groupe inattendu: %+v", group)
	}

	if got := c.Group(models.ProductRecord{Barcode: "555"}); got != nil {
		t.Errorf("enregistrement sans nom: groupe attendu nil, obtenu %+v", got)
	}
}
