// Package account porte la logique pure panier/commande, sans accès base.
// La couche store applique ces fonctions sur le document de compte MongoDB.
package account

import (
	"errors"
	"time"

	"catalog_back_end/internal/models"
)

var (
	ErrItemNotFound = errors.New("article absent du panier")
	ErrEmptyCart    = errors.New("panier vide")
)

// AddItem ajoute un article au panier. Si un article porte déjà le même
// code-barres, sa quantité s'incrémente ; sinon l'article est ajouté avec
// ses champs d'affichage copiés au moment de l'ajout. Renvoie un nouveau
// slice, l'entrée n'est pas modifiée.
func AddItem(cart []models.CartItem, item models.CartItem, quantity int) []models.CartItem {
	if quantity <= 0 {
		quantity = 1
	}

	out := Snapshot(cart)
	for i := range out {
		if out[i].Barcode == item.Barcode {
			out[i].Quantity += quantity
			return out
		}
	}

	item.Quantity = quantity
	item.AddedAt = time.Now()
	return append(out, item)
}

// UpdateQuantity écrase la quantité d'un article. Une quantité ≤ 0 retire
// l'article. Échoue si le code-barres est absent.
func UpdateQuantity(cart []models.CartItem, barcode string, quantity int) ([]models.CartItem, error) {
	found := false
	out := make([]models.CartItem, 0, len(cart))
	for _, it := range cart {
		if it.Barcode == barcode {
			found = true
			if quantity <= 0 {
				continue
			}
			it.Quantity = quantity
		}
		out = append(out, it)
	}
	if !found {
		return nil, ErrItemNotFound
	}
	return out, nil
}

// RemoveItem filtre l'article hors du panier. Absent = succès (no-op).
func RemoveItem(cart []models.CartItem, barcode string) []models.CartItem {
	out := make([]models.CartItem, 0, len(cart))
	for _, it := range cart {
		if it.Barcode != barcode {
			out = append(out, it)
		}
	}
	return out
}

// Snapshot copie profondément le panier. Le slice renvoyé est indépendant :
// les mutations ultérieures du panier d'origine ne le touchent pas.
func Snapshot(cart []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(cart))
	copy(out, cart)
	return out
}
