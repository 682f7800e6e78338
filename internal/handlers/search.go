package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"catalog_back_end/internal/services"
)

// GET /api/search/advanced — recherche plein texte via Elasticsearch
func (cc *CatalogController) SearchAdvanced(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre 'q' requis"})
		return
	}

	results, err := services.SearchProducts(query)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Recherche avancée indisponible"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GET /api/search/suggest — autocomplétion sur les noms du catalogue
func (cc *CatalogController) Suggest(c *gin.Context) {
	prefix := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "8"))
	if limit < 1 || limit > 50 {
		limit = 8
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": services.SuggestCompletions(cc.Catalog.Products(), prefix, limit),
	})
}
