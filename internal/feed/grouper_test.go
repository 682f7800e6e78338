package feed

import (
	"testing"

	"catalog_back_end/internal/models"
)

func record(name, company string) models.ProductRecord {
	return models.ProductRecord{Name: name, Company: company}
}

func TestGroupKeyDeterministe(t *testing.T) {
	// la clé ne dépend que du nom et de la marque normalisés
	a := GroupKey(record("Wine A", "Acme"))
	b := GroupKey(record("  wine a ", "ACME  "))
	if a == "" || a != b {
		t.Errorf("clés différentes pour des valeurs normalisées identiques: %q vs %q", a, b)
	}

	sansMarque := GroupKey(record("Wine A", ""))
	if sansMarque != "wine a" {
		t.Errorf("clé sans marque = %q", sansMarque)
	}
	if a != "wine a_acme" {
		t.Errorf("clé avec marque = %q", a)
	}
}

func TestGroupKeySansNom(t *testing.T) {
	if key := GroupKey(record("  ", "Acme")); key != "" {
		t.Errorf("un enregistrement sans nom ne devrait pas avoir de clé: %q", key)
	}
}

func TestBuildGroupsOrdreDesVariantes(t *testing.T) {
	records := []models.ProductRecord{
		{Name: "Wine A", Company: "Acme", Volume: "750ml"},
		{Name: "Beer B", Company: "Bravo"},
		{Name: "wine a", Company: "ACME", Volume: "375ml"},
		{Name: "Wine A", Company: "Acme", Volume: "1.5L"},
	}

	groups := BuildGroups(records)
	if len(groups) != 2 {
		t.Fatalf("attendu 2 groupes, obtenu %d", len(groups))
	}

	g := groups["wine a_acme"]
	if g == nil {
		t.Fatal("groupe wine a_acme absent")
	}
	if g.Main.Volume != "750ml" {
		t.Errorf("le premier rencontré devrait être le principal: %+v", g.Main)
	}
	if len(g.Variants) != 2 || g.Variants[0].Volume != "375ml" || g.Variants[1].Volume != "1.5L" {
		t.Errorf("variantes dans le mauvais ordre: %+v", g.Variants)
	}
}

func TestBuildGroupsExclutLesSansNom(t *testing.T) {
	records := []models.ProductRecord{
		{Name: "", Company: "Acme"},
		{Name: "Wine A", Company: "Acme"},
	}

	groups := BuildGroups(records)
	if len(groups) != 1 {
		t.Fatalf("attendu 1 groupe, obtenu %d", len(groups))
	}
}
