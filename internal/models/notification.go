package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification : retombée d'une soumission de commande, un document par
// destinataire (agent assigné + chaque admin). Créée ici, lue/fermée ailleurs.
type Notification struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type        string             `bson:"type" json:"type"`
	OrderID     string             `bson:"order_id" json:"order_id"`
	RecipientID string             `bson:"recipient_id" json:"recipient_id"`
	SenderID    string             `bson:"sender_id" json:"sender_id"`
	SenderName  string             `bson:"sender_name" json:"sender_name"`
	Read        bool               `bson:"read" json:"read"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

const NotificationTypeNewOrder = "new_order"
