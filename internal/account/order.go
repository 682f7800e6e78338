package account

import (
	"time"

	"github.com/google/uuid"

	"catalog_back_end/internal/models"
)

// BuildOrder fige le panier d'un compte en commande. Le panier vide est un
// échec avant toute écriture ; les articles sont copiés en profondeur, la
// commande est immuable une fois créée (seules les transitions de statut,
// faites ailleurs, la touchent encore).
func BuildOrder(user models.User, notes string) (models.Order, error) {
	if len(user.Cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	return models.Order{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		ClientName: user.Name,
		AgentID:    user.AgentID,
		Items:      Snapshot(user.Cart),
		Notes:      notes,
		Status:     models.OrderStatusPending,
		CreatedAt:  time.Now(),
	}, nil
}
