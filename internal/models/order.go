package models

import "time"

// Statuts possibles d'une commande. Les transitions après "pending"
// sont faites par les agents/admins, pas par ce serveur.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order est un snapshot immuable du panier au moment de la soumission.
type Order struct {
	ID         string     `bson:"_id" json:"id"`
	UserID     string     `bson:"user_id" json:"user_id"`
	ClientName string     `bson:"client_name" json:"client_name"`
	AgentID    string     `bson:"agent_id,omitempty" json:"agent_id,omitempty"`
	Items      []CartItem `bson:"items" json:"items"`
	Notes      string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Status     string     `bson:"status" json:"status"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
}
