package routes

import (
	controller "food-ordering-backend/controllers"
	"food-ordering-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine, uc *controller.UserController, auth *middleware.AuthMiddleware) {
	incomingRoutes.POST("/users/register", uc.SignUp())
	incomingRoutes.POST("/users/login", uc.Login())
	incomingRoutes.POST("/users/logout", uc.Logout())
	incomingRoutes.GET("/users/me", auth.Authentication(), uc.GetMe())
	incomingRoutes.PUT("/users/profile", auth.Authentication(), uc.UpdateProfile())
}
