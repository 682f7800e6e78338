package feed

import (
	"strings"
	"testing"
)

func TestParseScenarioHebreu(t *testing.T) {
	raw := "שם פריט אוטומטי,company,מדינה\n\"Wine A\",Acme,ישראל\n\"Wine A\",Acme,ישראל\n"

	records := Parse(raw, ParseOptions{})
	if len(records) != 2 {
		t.Fatalf("attendu 2 enregistrements, obtenu %d", len(records))
	}

	for i, r := range records {
		if r.Name != "Wine A" {
			t.Errorf("enregistrement %d: nom = %q", i, r.Name)
		}
		if r.Company != "Acme" {
			t.Errorf("enregistrement %d: société = %q", i, r.Company)
		}
		if r.Country != "ישראל" {
			t.Errorf("enregistrement %d: pays = %q", i, r.Country)
		}
	}

	groups := BuildGroups(records)
	if len(groups) != 1 {
		t.Fatalf("attendu 1 groupe, obtenu %d", len(groups))
	}
	for _, g := range groups {
		if len(g.Variants) != 1 {
			t.Errorf("attendu 1 variante, obtenu %d", len(g.Variants))
		}
	}
}

func TestParseVirgulesEntreGuillemets(t *testing.T) {
	raw := "name,price\n\"Wine, Grande Reserve\",50\n"

	records := Parse(raw, ParseOptions{})
	if len(records) != 1 {
		t.Fatalf("attendu 1 enregistrement, obtenu %d", len(records))
	}
	if records[0].Name != "Wine, Grande Reserve" {
		t.Errorf("nom = %q", records[0].Name)
	}
	if records[0].Price != "50" {
		t.Errorf("prix = %q", records[0].Price)
	}
}

func TestParseLignesCourtesEtLongues(t *testing.T) {
	// ligne courte : champs manquants vides ; ligne longue : surplus ignoré
	raw := "name,company,country\nShort\nLong,Acme,ישראל,extra,extra2\n"

	records := Parse(raw, ParseOptions{})
	if len(records) != 2 {
		t.Fatalf("attendu 2 enregistrements, obtenu %d", len(records))
	}

	if records[0].Company != "" || records[0].Country != "" {
		t.Errorf("champs manquants non vides: %+v", records[0])
	}
	if len(records[1].Fields) != 3 {
		t.Errorf("le surplus de colonnes devrait être ignoré: %+v", records[1].Fields)
	}
}

func TestParseLignesVidesEtCRLF(t *testing.T) {
	raw := "name,company\r\n\r\nWine A,Acme\r\n\r\nWine B,Bravo\r\n"

	records := Parse(raw, ParseOptions{})
	if len(records) != 2 {
		t.Fatalf("attendu 2 enregistrements, obtenu %d", len(records))
	}
	if records[1].Name != "Wine B" {
		t.Errorf("nom = %q", records[1].Name)
	}
}

func TestParseRogneEtRetireLesGuillemets(t *testing.T) {
	raw := "name,company\n  \"Wine\"  , Acme \n"

	records := Parse(raw, ParseOptions{})
	if len(records) != 1 {
		t.Fatalf("attendu 1 enregistrement, obtenu %d", len(records))
	}
	if records[0].Name != "Wine" {
		t.Errorf("nom = %q", records[0].Name)
	}
	if records[0].Company != "Acme" {
		t.Errorf("société = %q", records[0].Company)
	}
}

func TestParseGuillemetOrphelin(t *testing.T) {
	// un guillemet non refermé ne corrompt que sa propre ligne
	raw := "name,company\n\"Bad,Acme\nGood,Bravo\n"

	records := Parse(raw, ParseOptions{})
	if len(records) != 2 {
		t.Fatalf("attendu 2 enregistrements, obtenu %d", len(records))
	}
	if records[0].Name != "Bad,Acme" || records[0].Company != "" {
		t.Errorf("ligne corrompue inattendue: %+v", records[0])
	}
	if records[1].Name != "Good" || records[1].Company != "Bravo" {
		t.Errorf("la ligne suivante devrait être intacte: %+v", records[1])
	}
}

func TestParseNewOnly(t *testing.T) {
	raw := "name,חדש\nOld Wine,\nNew Wine,TRUE\nOther,false\n"

	records := Parse(raw, ParseOptions{NewOnly: true})
	if len(records) != 1 {
		t.Fatalf("attendu 1 enregistrement, obtenu %d", len(records))
	}
	if records[0].Name != "New Wine" {
		t.Errorf("nom = %q", records[0].Name)
	}
}

// Parser une re-sérialisation (en-têtes + valeurs jointes par des virgules)
// d'un parse redonne les mêmes enregistrements.
func TestParseIdempotentSurEntreePropre(t *testing.T) {
	headers := []string{"name", "company", "country"}
	raw := "name,company,country\nWine A,Acme,ישראל\nBeer B,Bravo,בלגיה\n"

	first := Parse(raw, ParseOptions{})

	var sb strings.Builder
	sb.WriteString(strings.Join(headers, ","))
	sb.WriteString("\n")
	for _, r := range first {
		values := make([]string, len(headers))
		for i, h := range headers {
			values[i] = r.Fields[h]
		}
		sb.WriteString(strings.Join(values, ","))
		sb.WriteString("\n")
	}

	second := Parse(sb.String(), ParseOptions{})
	if len(second) != len(first) {
		t.Fatalf("tailles différentes: %d vs %d", len(first), len(second))
	}
	for i := range first {
		for _, h := range headers {
			if first[i].Fields[h] != second[i].Fields[h] {
				t.Errorf("ligne %d, champ %s: %q vs %q", i, h, first[i].Fields[h], second[i].Fields[h])
			}
		}
	}
}
