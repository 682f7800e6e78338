package store

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog_back_end/internal/account"
	"catalog_back_end/internal/database"
	"catalog_back_end/internal/models"
	"catalog_back_end/internal/utils"
)

func ordersCol() *mongo.Collection { return database.MongoDB.Collection("orders") }

// SubmitOrder fige le panier en commande. Ordre des effets :
//  1. la commande est insérée (statut pending) — c'est l'opération primaire ;
//  2. les notifications partent en best-effort, jamais bloquantes ;
//  3. le panier est vidé et le pointeur dernière commande estampillé.
//
// Renvoie l'identifiant de la nouvelle commande.
func SubmitOrder(ctx context.Context, userID, notes string) (string, error) {
	user, err := GetUser(ctx, userID)
	if err != nil {
		return "", err
	}

	order, err := account.BuildOrder(user, notes)
	if err != nil {
		return "", err
	}

	opCtx, cancel := context.WithTimeout(ctx, opTimeout)
	_, err = ordersCol().InsertOne(opCtx, order)
	cancel()
	if err != nil {
		return "", err
	}

	// Retombées best-effort : échecs loggés, jamais propagés, la commande
	// est déjà créée et le reste.
	FanOutOrderNotifications(ctx, order)
	notifyAgentByEmail(ctx, order)

	// Vider le panier + estampiller la dernière commande
	opCtx, cancel = context.WithTimeout(ctx, opTimeout)
	_, err = usersCol().UpdateOne(opCtx,
		bson.M{"_id": userID},
		bson.M{
			"$set": bson.M{"cart": []models.CartItem{}, "last_order_id": order.ID},
			"$inc": bson.M{"cart_rev": 1},
		},
	)
	cancel()
	if err != nil {
		log.Printf("⚠️ Panier non vidé après la commande %s: %v", order.ID, err)
	}

	log.Printf("🧾 Commande %s créée pour %s (%d articles)", order.ID, userID, len(order.Items))
	return order.ID, nil
}

// GetOrders renvoie les commandes d'un compte, les plus récentes d'abord.
func GetOrders(ctx context.Context, userID string) ([]models.Order, error) {
	if userID == "" {
		return nil, ErrNoIdentity
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := ordersCol().Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderByID renvoie une commande si elle appartient bien au compte.
func GetOrderByID(ctx context.Context, userID, orderID string) (models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var order models.Order
	err := ordersCol().FindOne(ctx, bson.M{"_id": orderID, "user_id": userID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	return order, err
}

// notifyAgentByEmail envoie la confirmation (avec QR de suivi) à l'agent
// assigné. Best-effort.
func notifyAgentByEmail(ctx context.Context, order models.Order) {
	if order.AgentID == "" {
		return
	}
	agent, err := GetUser(ctx, order.AgentID)
	if err != nil || agent.Email == "" {
		return
	}

	qr, err := utils.GenerateOrderQR(order.ID)
	if err != nil {
		log.Printf("⚠️ QR non généré pour la commande %s: %v", order.ID, err)
	}
	if err := utils.SendOrderEmail(agent.Email, order, qr); err != nil {
		log.Printf("⚠️ Email agent non envoyé pour la commande %s: %v", order.ID, err)
	}
}
