package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog_back_end/internal/store"
)

// GET /api/likes
func GetLikes(c *gin.Context) {
	user, err := store.GetUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	likes := user.Likes
	if likes == nil {
		likes = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// ⭐ POST /api/likes/toggle
func ToggleLike(c *gin.Context) {
	var input struct {
		Barcode string `json:"barcode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	liked, err := store.ToggleLike(c.Request.Context(), c.GetString("user_id"), input.Barcode)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barcode": input.Barcode,
		"liked":   liked,
	})
}
