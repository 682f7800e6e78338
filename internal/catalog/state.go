package catalog

import (
	"sync"

	"catalog_back_end/internal/feed"
	"catalog_back_end/internal/models"
)

// Catalog est l'état applicatif : la liste à plat des produits et l'index
// groupé. Remplacé en bloc à chaque rechargement de flux, jamais muté en
// place. Le verrou protège les lectures concurrentes des handlers.
type Catalog struct {
	mu       sync.RWMutex
	products []models.ProductRecord
	groups   map[string]*models.ProductGroup
}

func New() *Catalog {
	return &Catalog{groups: make(map[string]*models.ProductGroup)}
}

// Replace échange l'état complet du catalogue.
func (c *Catalog) Replace(products []models.ProductRecord) {
	groups := feed.BuildGroups(products)

	c.mu.Lock()
	c.products = products
	c.groups = groups
	c.mu.Unlock()
}

// Products renvoie la liste à plat courante.
func (c *Catalog) Products() []models.ProductRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.products
}

// Group renvoie le groupe d'un enregistrement, s'il en a un.
func (c *Catalog) Group(r models.ProductRecord) *models.ProductGroup {
	key := feed.GroupKey(r)
	if key == "" {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.groups[key]
}

// FindByBarcode renvoie le premier enregistrement portant ce code-barres.
func (c *Catalog) FindByBarcode(barcode string) (models.ProductRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.products {
		if r.Barcode == barcode {
			return r, true
		}
	}
	return models.ProductRecord{}, false
}

// Size renvoie le nombre d'enregistrements chargés.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
