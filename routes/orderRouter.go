package routes

import (
	controller "food-ordering-backend/controllers"
	"food-ordering-backend/middleware"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine, oc *controller.OrderController, auth *middleware.AuthMiddleware) {
	incomingRoutes.POST("/orders", auth.Authentication(), oc.PlaceOrder())
	incomingRoutes.GET("/orders", auth.Authentication(), oc.GetOrders())
	incomingRoutes.GET("/orders/:order_id", auth.Authentication(), oc.GetOrder())
	incomingRoutes.PATCH("/orders/:order_id/status", auth.Authentication(), oc.UpdateOrderStatus())
}
