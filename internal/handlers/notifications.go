package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"catalog_back_end/internal/database"
	"catalog_back_end/internal/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// 🔔 GET /api/notifications
func GetNotifications(c *gin.Context) {
	notifications, err := store.GetNotifications(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// POST /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	err := store.MarkNotificationRead(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification lue"})
}

// NotificationsWebSocket pousse les notifications en temps réel : le canal
// Redis du destinataire réveille la connexion, qui relit la liste et
// l'envoie au client.
func NotificationsWebSocket(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "non authentifié"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	pubsub := database.Redis.Subscribe(ctx, "notifications:"+userID)
	defer pubsub.Close()
	ch := pubsub.Channel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Notifications en temps réel activées",
	})

	for msg := range ch {
		notifications, err := store.GetNotifications(ctx, userID)
		if err != nil {
			log.Printf("⚠️ Lecture notifications en échec pour %s: %v", userID, err)
			continue
		}

		unread := 0
		for _, n := range notifications {
			if !n.Read {
				unread++
			}
		}

		err = conn.WriteJSON(map[string]interface{}{
			"type":          "notification",
			"order_id":      msg.Payload,
			"notifications": notifications,
			"unread":        unread,
		})
		if err != nil {
			log.Printf("🔌 WebSocket fermé pour %s: %v", userID, err)
			return
		}
	}
}
