package routes

import (
	controller "food-ordering-backend/controllers"
	"food-ordering-backend/middleware"
	"food-ordering-backend/models"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(incomingRoutes *gin.Engine, ac *controller.AdminController, auth *middleware.AuthMiddleware) {
	admin := incomingRoutes.Group("/admin", auth.Authentication(), middleware.RequireRole(models.RoleAdmin))
	admin.POST("/users/:user_id/assign-role", ac.AssignRole())
	admin.GET("/users", ac.GetAllUsers())
	admin.GET("/restaurants", ac.GetAllRestaurants())
}
