package main

import (
	"context"
	"log"
	"time"

	"food-ordering-backend/config"
	"food-ordering-backend/controllers"
	"food-ordering-backend/database"
	"food-ordering-backend/helpers"
	"food-ordering-backend/middleware"
	"food-ordering-backend/routes"
	"food-ordering-backend/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("error disconnecting from MongoDB:", err)
		}
	}()

	userCollection := database.OpenCollection(client, cfg, "user")
	restaurantCollection := database.OpenCollection(client, cfg, "restaurant")
	orderCollection := database.OpenCollection(client, cfg, "order")

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(indexCtx, userCollection); err != nil {
		cancelIndex()
		log.Fatal("failed to create indexes: ", err)
	}
	cancelIndex()

	tokens := helpers.NewTokenHelper(cfg.JWTSecret, cfg.TokenExpiry)
	auth := middleware.NewAuthMiddleware(tokens, userCollection)
	hub := ws.NewHub()

	userController := controllers.NewUserController(userCollection, tokens)
	restaurantController := controllers.NewRestaurantController(restaurantCollection)
	menuController := controllers.NewMenuController(restaurantCollection)
	orderController := controllers.NewOrderController(orderCollection, restaurantCollection, hub)
	adminController := controllers.NewAdminController(client, userCollection, restaurantCollection)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.UserRoutes(router, userController, auth)
	routes.RestaurantRoutes(router, restaurantController, menuController, auth)
	routes.OrderRoutes(router, orderController, auth)
	routes.AdminRoutes(router, adminController, auth)
	router.GET("/ws", hub.Handle())

	log.Printf("server listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
