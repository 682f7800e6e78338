package models

import "time"

// CartItem est un article du panier. Nom, prix et image sont copiés au moment
// de l'ajout (snapshot, pas une référence vive vers le catalogue).
type CartItem struct {
	Barcode  string    `bson:"barcode" json:"barcode"`
	Name     string    `bson:"name" json:"name"`
	Price    string    `bson:"price" json:"price"` // déjà suffixé avec la devise
	Quantity int       `bson:"quantity" json:"quantity"`
	Image    string    `bson:"image" json:"image"`
	AddedAt  time.Time `bson:"added_at" json:"added_at"`
}
