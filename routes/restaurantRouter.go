package routes

import (
	controller "food-ordering-backend/controllers"
	"food-ordering-backend/middleware"
	"food-ordering-backend/models"

	"github.com/gin-gonic/gin"
)

func RestaurantRoutes(incomingRoutes *gin.Engine, rc *controller.RestaurantController, mc *controller.MenuController, auth *middleware.AuthMiddleware) {
	// public reads
	incomingRoutes.GET("/restaurants", rc.GetRestaurants())
	incomingRoutes.GET("/restaurants/search", rc.SearchRestaurants())
	incomingRoutes.GET("/restaurants/:restaurant_id", rc.GetRestaurant())
	incomingRoutes.GET("/restaurants/:restaurant_id/menu", mc.GetMenu())

	// admin provisioning
	incomingRoutes.POST("/restaurants", auth.Authentication(), middleware.RequireRole(models.RoleAdmin), rc.CreateRestaurant())

	// owner-scoped mutations; ownership of the target restaurant is checked
	// in the handlers against the freshly fetched caller
	incomingRoutes.PATCH("/restaurants/:restaurant_id/status", auth.Authentication(), middleware.RequireRole(models.RoleRestaurant), rc.ToggleOpenStatus())
	incomingRoutes.PATCH("/restaurants/:restaurant_id/opening-time", auth.Authentication(), middleware.RequireRole(models.RoleRestaurant), rc.SetOpeningTime())
	incomingRoutes.POST("/restaurants/:restaurant_id/menu", auth.Authentication(), middleware.RequireRole(models.RoleRestaurant), mc.AddMenuItem())
	incomingRoutes.PATCH("/restaurants/:restaurant_id/menu/:item_id", auth.Authentication(), middleware.RequireRole(models.RoleRestaurant), mc.EditMenuItem())
	incomingRoutes.DELETE("/restaurants/:restaurant_id/menu/:item_id", auth.Authentication(), middleware.RequireRole(models.RoleRestaurant), mc.DeleteMenuItem())
}
