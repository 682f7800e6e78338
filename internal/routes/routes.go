package routes

import (
	"github.com/gin-gonic/gin"

	"catalog_back_end/internal/handlers"
	"catalog_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, cc *handlers.CatalogController) {
	api := r.Group("/api")

	// Auth
	api.POST("/auth/register", handlers.Register)
	api.POST("/auth/login", handlers.Login)

	// Catalogue public (la restriction marques s'applique aux connectés)
	api.GET("/products", middleware.AuthOptional(), cc.GetProducts)
	api.GET("/products/:barcode", cc.GetProductDetail)
	api.GET("/filters/meta", cc.GetFilterMeta)
	api.GET("/search/advanced", cc.SearchAdvanced)
	api.GET("/search/suggest", cc.Suggest)

	// Opérations authentifiées
	auth := api.Group("", middleware.AuthRequired())
	{
		auth.GET("/cart", handlers.GetCart)
		auth.POST("/cart/add", cc.AddToCart)
		auth.PUT("/cart/:barcode", handlers.UpdateCartQuantity)
		auth.DELETE("/cart/:barcode", handlers.RemoveFromCart)

		auth.GET("/likes", handlers.GetLikes)
		auth.POST("/likes/toggle", handlers.ToggleLike)

		auth.POST("/orders", handlers.SubmitOrder)
		auth.GET("/orders", handlers.GetMyOrders)
		auth.GET("/orders/:id", handlers.GetOrderByID)

		auth.GET("/notifications", handlers.GetNotifications)
		auth.POST("/notifications/:id/read", handlers.MarkNotificationRead)
		auth.GET("/ws/notifications", handlers.NotificationsWebSocket)

		auth.POST("/feed/reload", middleware.AdminRequired(), cc.ReloadFeeds)
	}
}
