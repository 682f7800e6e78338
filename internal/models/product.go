package models

// ProductRecord est une ligne du flux CSV après résolution des alias de colonnes.
// Les champs logiques sont résolus une seule fois à l'ingestion ; Fields garde
// toutes les colonnes brutes pour la vue détail.
type ProductRecord struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Country     string `json:"country"`
	Category    string `json:"category"`
	Barcode     string `json:"barcode"`
	Price       string `json:"price"`
	PriceList   string `json:"price_list"`
	Volume      string `json:"volume"`
	Kosher      string `json:"kosher"`
	IsNew       string `json:"is_new"`
	Description string `json:"description"`

	Fields map[string]string `json:"fields"`
	Row    int               `json:"row"`
}

// ProductGroup regroupe un enregistrement principal et ses variantes
// (même clé de regroupement : nom normalisé + marque normalisée).
type ProductGroup struct {
	Key      string          `json:"key"`
	Main     ProductRecord   `json:"main"`
	Variants []ProductRecord `json:"variants"`
}
