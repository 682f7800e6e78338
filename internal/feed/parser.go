package feed

import (
	"strings"

	"catalog_back_end/internal/models"
)

// ParseOptions contrôle le parsing d'un flux.
type ParseOptions struct {
	// NewOnly ne garde que les lignes dont le champ "nouveau" vaut "true"
	// (le flux nouveautés combine parse et filtre).
	NewOnly bool
}

// Parse transforme le texte brut d'un export de feuille de calcul en
// enregistrements produit. Format attendu : lignes CRLF/LF, première ligne =
// en-têtes, valeurs éventuellement entourées de guillemets doubles pour
// contenir des virgules. Les guillemets sont retirés des valeurs (pas de
// dé-échappement RFC 4180, c'est le format réel des exports). Un guillemet
// orphelin ne corrompt que sa propre ligne.
func Parse(raw string, opts ParseOptions) []models.ProductRecord {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil
	}

	headers := splitRow(lines[0])
	for i, h := range headers {
		headers[i] = strings.ToLower(h)
	}

	records := make([]models.ProductRecord, 0, len(lines)-1)
	for row, line := range lines[1:] {
		values := splitRow(line)

		fields := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				fields[h] = values[i]
			} else {
				// ligne plus courte que l'en-tête → champ vide
				fields[h] = ""
			}
		}
		// les valeurs au-delà du nombre d'en-têtes sont ignorées

		record := resolveRecord(fields, row)
		if opts.NewOnly && !strings.EqualFold(record.IsNew, "true") {
			continue
		}
		records = append(records, record)
	}
	return records
}

// splitLines découpe le texte en lignes non vides (CRLF ou LF).
func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitRow découpe une ligne sur les virgules hors guillemets. L'état
// "dans les guillemets" bascule à chaque `"` ; les guillemets sont retirés
// du résultat et chaque valeur est rognée.
func splitRow(line string) []string {
	var (
		values  []string
		current strings.Builder
		quoted  bool
	)
	for _, c := range line {
		switch {
		case c == '"':
			quoted = !quoted
		case c == ',' && !quoted:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	values = append(values, strings.TrimSpace(current.String()))
	return values
}
