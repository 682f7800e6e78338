package account

import (
	"errors"
	"testing"

	"catalog_back_end/internal/models"
)

func TestAddItemCumuleLesQuantites(t *testing.T) {
	item := models.CartItem{Barcode: "111", Name: "Wine A", Price: "32 ₪"}

	cart := AddItem(nil, item, 2)
	cart = AddItem(cart, item, 3)

	if len(cart) != 1 {
		t.Fatalf("attendu une seule entrée, obtenu %d", len(cart))
	}
	if cart[0].Quantity != 5 {
		t.Errorf("quantité = %d, attendu 5", cart[0].Quantity)
	}
}

func TestAddItemQuantiteInvalide(t *testing.T) {
	cart := AddItem(nil, models.CartItem{Barcode: "111"}, 0)
	if len(cart) != 1 || cart[0].Quantity != 1 {
		t.Errorf("quantité nulle devrait valoir 1: %+v", cart)
	}
	if cart[0].AddedAt.IsZero() {
		t.Error("date d'ajout non renseignée")
	}
}

func TestAddItemNeModifiePasLEntree(t *testing.T) {
	original := []models.CartItem{{Barcode: "111", Quantity: 2}}
	_ = AddItem(original, models.CartItem{Barcode: "111"}, 3)
	if original[0].Quantity != 2 {
		t.Errorf("le panier d'origine a été modifié: %+v", original)
	}
}

func TestUpdateQuantity(t *testing.T) {
	cart := []models.CartItem{
		{Barcode: "111", Quantity: 2},
		{Barcode: "222", Quantity: 1},
	}

	out, err := UpdateQuantity(cart, "111", 7)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Quantity != 7 || out[1].Quantity != 1 {
		t.Errorf("panier inattendu: %+v", out)
	}
}

func TestUpdateQuantityZeroRetire(t *testing.T) {
	cart := []models.CartItem{
		{Barcode: "111", Quantity: 2},
		{Barcode: "222", Quantity: 1},
	}

	out, err := UpdateQuantity(cart, "111", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Barcode != "222" {
		t.Errorf("l'article n'a pas été retiré: %+v", out)
	}
}

func TestUpdateQuantityAbsent(t *testing.T) {
	_, err := UpdateQuantity([]models.CartItem{{Barcode: "111"}}, "999", 1)
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("attendu ErrItemNotFound, obtenu %v", err)
	}
}

func TestRemoveItemAbsentEstUnSucces(t *testing.T) {
	cart := []models.CartItem{{Barcode: "111", Quantity: 2}}
	out := RemoveItem(cart, "999")
	if len(out) != 1 {
		t.Errorf("retrait d'un absent a modifié le panier: %+v", out)
	}
}

func TestSnapshotEstIndependant(t *testing.T) {
	cart := []models.CartItem{{Barcode: "111", Quantity: 2}}
	snap := Snapshot(cart)

	cart[0].Quantity = 99
	if snap[0].Quantity != 2 {
		t.Errorf("l'instantané suit le panier d'origine: %+v", snap)
	}
}
