package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog_back_end/internal/catalog"
	"catalog_back_end/internal/feed"
	"catalog_back_end/internal/models"
	"catalog_back_end/internal/services"
	"catalog_back_end/internal/store"
)

// CatalogController possède l'état catalogue : il le charge au démarrage et
// le remplace en bloc à chaque rechargement. Les handlers ne font que lire.
type CatalogController struct {
	Catalog *catalog.Catalog
	Loader  *feed.Loader
	Images  *services.ImageResolver
}

func NewCatalogController(cat *catalog.Catalog, loader *feed.Loader, images *services.ImageResolver) *CatalogController {
	return &CatalogController{Catalog: cat, Loader: loader, Images: images}
}

// Reload télécharge tous les flux, échange le catalogue et réindexe.
// Renvoie le nombre de produits chargés.
func (cc *CatalogController) Reload(ctx context.Context) int {
	products := cc.Loader.Load(ctx)
	cc.Catalog.Replace(products)
	services.IndexCatalog(products)
	log.Printf("🔄 Catalogue rechargé: %d produits", len(products))
	return len(products)
}

// GET /api/products — cartes filtrées et dédupliquées
func (cc *CatalogController) GetProducts(c *gin.Context) {
	var state models.FilterState
	if err := c.ShouldBindQuery(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Filtres invalides"})
		return
	}

	// Restriction marques du client connecté (anonyme = pas de restriction)
	if userID := c.GetString("user_id"); userID != "" {
		if user, err := store.GetUser(c.Request.Context(), userID); err == nil {
			state.AllowedBrands = user.AllowedBrands
		}
	}

	filtered := catalog.Filter(cc.Catalog.Products(), state)
	cards := catalog.BuildCards(catalog.Deduplicate(filtered), cc.Images)

	c.JSON(http.StatusOK, gin.H{
		"cards":   cards,
		"matched": len(filtered),
	})
}

// GET /api/products/:barcode — vue détail avec variantes
func (cc *CatalogController) GetProductDetail(c *gin.Context) {
	barcode := c.Param("barcode")

	record, ok := cc.Catalog.FindByBarcode(barcode)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	detail := catalog.BuildDetail(record, cc.Catalog.Group(record), cc.Images)
	c.JSON(http.StatusOK, detail)
}

// GET /api/filters/meta — valeurs distinctes pour les listes déroulantes
func (cc *CatalogController) GetFilterMeta(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.BuildFilterMeta(cc.Catalog.Products()))
}

// POST /api/feed/reload — rechargement des flux (admin)
func (cc *CatalogController) ReloadFeeds(c *gin.Context) {
	count := cc.Reload(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"message":  "Catalogue rechargé",
		"products": count,
	})
}
