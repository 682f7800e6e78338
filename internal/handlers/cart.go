package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog_back_end/internal/account"
	"catalog_back_end/internal/catalog"
	"catalog_back_end/internal/models"
	"catalog_back_end/internal/store"
)

// GET /api/cart
func GetCart(c *gin.Context) {
	user, err := store.GetUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	items := user.Cart
	if items == nil {
		items = []models.CartItem{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

//
// 🟢 POST /api/cart/add
//
func (cc *CatalogController) AddToCart(c *gin.Context) {
	var input struct {
		Barcode  string `json:"barcode" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	record, ok := cc.Catalog.FindByBarcode(input.Barcode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	// Snapshot des champs d'affichage au moment de l'ajout
	card := catalog.BuildCard(record, cc.Images)
	image := ""
	if len(card.Images) > 0 {
		image = card.Images[0]
	}
	item := models.CartItem{
		Barcode: record.Barcode,
		Name:    record.Name,
		Price:   card.PriceLabel,
		Image:   image,
	}

	items, err := store.AddToCart(c.Request.Context(), c.GetString("user_id"), item, input.Quantity)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"items":   items,
	})
}

//
// 🔁 PUT /api/cart/:barcode
//
func UpdateCartQuantity(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	items, err := store.UpdateQuantity(c.Request.Context(), c.GetString("user_id"), c.Param("barcode"), input.Quantity)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier mis à jour",
		"items":   items,
	})
}

//
// ❌ DELETE /api/cart/:barcode
//
func RemoveFromCart(c *gin.Context) {
	items, err := store.RemoveFromCart(c.Request.Context(), c.GetString("user_id"), c.Param("barcode"))
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"items":   items,
	})
}

// respondStoreError traduit les sentinelles de la couche store en réponses
// HTTP localisées.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNoIdentity):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
	case errors.Is(err, store.ErrNoAccount):
		c.JSON(http.StatusNotFound, gin.H{"error": "Compte introuvable"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Introuvable"})
	case errors.Is(err, account.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Article absent du panier"})
	case errors.Is(err, account.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflit d'écriture, réessayez"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne"})
	}
}
