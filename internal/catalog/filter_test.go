package catalog

import (
	"testing"

	"catalog_back_end/internal/feed"
	"catalog_back_end/internal/models"
)

func sampleProducts() []models.ProductRecord {
	return []models.ProductRecord{
		{Name: "Wine A", Company: "Israel Beer Breweries", Country: "ישראל", Category: "יין", Barcode: "111", Kosher: "כן"},
		{Name: "Wine A", Company: "Israel Beer Breweries", Country: "ישראל", Category: "יין", Barcode: "112", Kosher: "כן"},
		{Name: "Beer B", Company: "Bravo", Country: "בלגיה", Category: "בירה", Barcode: "222", Kosher: "לא", IsNew: "true"},
		{Name: "Sake C", Company: "Chiyo", Country: "יפן", Category: "סאקה", Barcode: "333"},
	}
}

func barcodes(list []models.ProductRecord) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.Barcode
	}
	return out
}

func TestFilterPaysExact(t *testing.T) {
	got := Filter(sampleProducts(), models.FilterState{Country: "ישראל"})
	if len(got) != 2 {
		t.Fatalf("attendu 2 produits, obtenu %v", barcodes(got))
	}
}

func TestFilterVideEstUnSurEnsemble(t *testing.T) {
	products := sampleProducts()
	strict := models.FilterState{Country: "ישראל", Kosher: "true"}
	relaxed := strict
	relaxed.Country = ""

	strictSet := Filter(products, strict)
	relaxedSet := Filter(products, relaxed)

	if len(relaxedSet) < len(strictSet) {
		t.Fatalf("relâcher un filtre a réduit le résultat: %d < %d", len(relaxedSet), len(strictSet))
	}
	// chaque produit du résultat strict doit rester dans le relâché
	inRelaxed := make(map[string]bool)
	for _, r := range relaxedSet {
		inRelaxed[r.Barcode] = true
	}
	for _, r := range strictSet {
		if !inRelaxed[r.Barcode] {
			t.Errorf("produit %s perdu en relâchant un filtre", r.Barcode)
		}
	}
}

func TestFilterRechercheInsensibleALaCasse(t *testing.T) {
	products := sampleProducts()

	upper := Filter(products, models.FilterState{Search: "ISRAEL"})
	lower := Filter(products, models.FilterState{Search: "israel"})

	if len(upper) == 0 {
		t.Fatal("la recherche devrait trouver la société Israel Beer Breweries")
	}
	if len(upper) != len(lower) {
		t.Fatalf("résultats différents selon la casse: %v vs %v", barcodes(upper), barcodes(lower))
	}
	for i := range upper {
		if upper[i].Barcode != lower[i].Barcode {
			t.Errorf("ordre différent selon la casse: %v vs %v", barcodes(upper), barcodes(lower))
		}
	}
}

func TestFilterRechercheSurPlusieursChamps(t *testing.T) {
	// le code-barres participe à la recherche
	got := Filter(sampleProducts(), models.FilterState{Search: "333"})
	if len(got) != 1 || got[0].Name != "Sake C" {
		t.Fatalf("recherche par code-barres: %v", barcodes(got))
	}
}

func TestFilterCacherTriEtat(t *testing.T) {
	products := sampleProducts()

	kosher := Filter(products, models.FilterState{Kosher: "true"})
	if len(kosher) != 2 {
		t.Errorf("cacher=true: %v", barcodes(kosher))
	}

	// vide ou inconnu compte comme non cacher
	notKosher := Filter(products, models.FilterState{Kosher: "false"})
	if len(notKosher) != 2 {
		t.Errorf("cacher=false: %v", barcodes(notKosher))
	}

	all := Filter(products, models.FilterState{})
	if len(all) != len(products) {
		t.Errorf("tri-état non défini devrait tout passer: %v", barcodes(all))
	}
}

func TestFilterListeMarquesAutorisees(t *testing.T) {
	products := sampleProducts()

	// inclusion dans les deux sens, volontairement lâche
	got := Filter(products, models.FilterState{AllowedBrands: []string{"israel beer"}})
	if len(got) != 2 {
		t.Errorf("entrée contenue dans la marque: %v", barcodes(got))
	}

	got = Filter(products, models.FilterState{AllowedBrands: []string{"Bravo Brewing Company"}})
	if len(got) != 1 || got[0].Barcode != "222" {
		t.Errorf("marque contenue dans l'entrée: %v", barcodes(got))
	}
}

func TestFilterNouveautes(t *testing.T) {
	got := Filter(sampleProducts(), models.FilterState{NewOnly: true})
	if len(got) != 1 || got[0].Barcode != "222" {
		t.Fatalf("nouveautés: %v", barcodes(got))
	}
}

// Le nombre de clés distinctes avant déduplication égale le nombre de cartes
// après : la déduplication ne perd jamais un groupe.
func TestDeduplicateNePerdAucunGroupe(t *testing.T) {
	filtered := Filter(sampleProducts(), models.FilterState{})

	distinct := make(map[string]bool)
	for _, r := range filtered {
		if key := feed.GroupKey(r); key != "" {
			distinct[key] = true
		}
	}

	deduped := Deduplicate(filtered)
	if len(deduped) != len(distinct) {
		t.Fatalf("%d clés distinctes mais %d cartes", len(distinct), len(deduped))
	}

	// le représentant est le premier rencontré
	if deduped[0].Barcode != "111" {
		t.Errorf("représentant inattendu: %s", deduped[0].Barcode)
	}
}
