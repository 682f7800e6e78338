package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog_back_end/internal/database"
	"catalog_back_end/internal/models"
)

func notificationsCol() *mongo.Collection { return database.MongoDB.Collection("notifications") }

// FanOutOrderNotifications crée une notification par destinataire : l'agent
// assigné (s'il y en a un) puis chaque admin, en une écriture batch. Tout
// échec ici est loggé et avalé — il ne doit ni annuler ni bloquer la
// commande déjà créée.
func FanOutOrderNotifications(ctx context.Context, order models.Order) {
	recipients := make(map[string]bool)
	if order.AgentID != "" {
		recipients[order.AgentID] = true
	}

	admins, err := FindAdmins(ctx)
	if err != nil {
		log.Printf("⚠️ Admins introuvables pour le fan-out de %s: %v", order.ID, err)
	}
	for _, a := range admins {
		if a.ID != order.UserID {
			recipients[a.ID] = true
		}
	}
	if len(recipients) == 0 {
		return
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(recipients))
	for recipient := range recipients {
		docs = append(docs, models.Notification{
			Type:        models.NotificationTypeNewOrder,
			OrderID:     order.ID,
			RecipientID: recipient,
			SenderID:    order.UserID,
			SenderName:  order.ClientName,
			CreatedAt:   now,
		})
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// ordered=false : un document en échec n'arrête pas les autres
	_, err = notificationsCol().InsertMany(opCtx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		log.Printf("⚠️ Fan-out notifications en échec pour la commande %s: %v", order.ID, err)
		return
	}

	// Réveille les WebSockets des destinataires connectés
	for recipient := range recipients {
		if err := database.Redis.Publish(opCtx, "notifications:"+recipient, order.ID).Err(); err != nil {
			log.Printf("⚠️ Publish Redis en échec pour %s: %v", recipient, err)
		}
	}

	log.Printf("🔔 %d notification(s) créée(s) pour la commande %s", len(docs), order.ID)
}

// GetNotifications renvoie les notifications d'un destinataire, les plus
// récentes d'abord.
func GetNotifications(ctx context.Context, recipientID string) ([]models.Notification, error) {
	if recipientID == "" {
		return nil, ErrNoIdentity
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := notificationsCol().Find(ctx, bson.M{"recipient_id": recipientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marque une notification comme lue, si elle appartient
// bien au destinataire.
func MarkNotificationRead(ctx context.Context, recipientID, notificationID string) error {
	oid, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := notificationsCol().UpdateOne(ctx,
		bson.M{"_id": oid, "recipient_id": recipientID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
