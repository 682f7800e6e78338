package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"catalog_back_end/internal/catalog"
	"catalog_back_end/internal/config"
	"catalog_back_end/internal/database"
	"catalog_back_end/internal/feed"
	"catalog_back_end/internal/handlers"
	"catalog_back_end/internal/routes"
	"catalog_back_end/internal/services"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseMongo()

	sources := config.FeedSources()
	if len(sources) == 0 {
		log.Println("⚠️ CATALOG_FEEDS vide — démarrage avec un catalogue vide")
	}

	cc := handlers.NewCatalogController(
		catalog.New(),
		feed.NewLoader(sources),
		services.NewImageResolver(),
	)

	// Chargement initial des flux (succès partiel accepté)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	count := cc.Reload(ctx)
	cancel()
	log.Printf("🍷 Catalogue initial: %d produits", count)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	routes.RegisterRoutes(r, cc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur catalogue lancé sur le port", port)
	r.Run(":" + port)
}
