package models

// FilterState porte les valeurs courantes des filtres.
// Une valeur vide = prédicat toujours vrai.
type FilterState struct {
	Country  string `form:"country" json:"country"`
	Category string `form:"category" json:"category"`
	Brand    string `form:"brand" json:"brand"`
	Kosher   string `form:"kosher" json:"kosher"` // "", "true" ou "false"
	Search   string `form:"q" json:"q"`
	Tab      string `form:"tab" json:"tab"`
	NewOnly  bool   `form:"new_only" json:"new_only"`

	// Liste de marques autorisées du client connecté (vide = pas de restriction).
	AllowedBrands []string `form:"-" json:"-"`
}
