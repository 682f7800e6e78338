package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog_back_end/internal/store"
)

//
// 🧾 POST /api/orders — soumission du panier en commande
//
func SubmitOrder(c *gin.Context) {
	var input struct {
		Notes string `json:"notes"`
	}
	// corps optionnel : notes vides acceptées
	_ = c.ShouldBindJSON(&input)

	orderID, err := store.SubmitOrder(c.Request.Context(), c.GetString("user_id"), input.Notes)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Commande créée",
		"order_id": orderID,
	})
}

// ✅ GET /api/orders — commandes du compte, plus récentes d'abord
func GetMyOrders(c *gin.Context) {
	orders, err := store.GetOrders(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ✅ GET /api/orders/:id
func GetOrderByID(c *gin.Context) {
	order, err := store.GetOrderByID(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
