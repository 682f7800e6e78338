package catalog

// Table finie pays → code drapeau (ISO 3166-1 alpha-2). Clé = nom exact tel
// qu'il apparaît dans les flux. Pays absent → pas de drapeau, le texte du
// pays reste affiché.
var countryFlags = map[string]string{
	"ישראל":       "il",
	"איטליה":      "it",
	"צרפת":        "fr",
	"ספרד":        "es",
	"גרמניה":      "de",
	"בלגיה":       "be",
	"הולנד":       "nl",
	"אנגליה":      "gb",
	"סקוטלנד":     "gb-sct",
	"אירלנד":      "ie",
	"ארה\"ב":      "us",
	"צ'כיה":       "cz",
	"יוון":        "gr",
	"גאורגיה":     "ge",
	"מקסיקו":      "mx",
	"יפן":         "jp",
	"צ'ילה":       "cl",
	"ארגנטינה":    "ar",
	"פורטוגל":     "pt",
	"אוסטרליה":    "au",
	"דרום אפריקה": "za",
}

// FlagCode renvoie le code drapeau d'un pays, ou "" si inconnu.
func FlagCode(country string) string {
	return countryFlags[country]
}
