package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"food-ordering-backend/helpers"
	"food-ordering-backend/middleware"
	"food-ordering-backend/models"
	"food-ordering-backend/statemachine"
	"food-ordering-backend/ws"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderController struct {
	orders      *mongo.Collection
	restaurants *mongo.Collection
	hub         *ws.Hub
}

func NewOrderController(orders, restaurants *mongo.Collection, hub *ws.Hub) *OrderController {
	return &OrderController{orders: orders, restaurants: restaurants, hub: hub}
}

// BuildOrderItems resolves requested items against the restaurant's current
// menu and prices the order. Name and unit price are snapshotted so later menu
// edits never change what this order records. The total is always computed
// here, never taken from the caller.
func BuildOrderItems(restaurant *models.Restaurant, requested []models.PlaceOrderItem) ([]models.OrderItem, float64, *helpers.AppError) {
	if len(requested) == 0 {
		return nil, 0, helpers.BadRequest("order items are required")
	}

	items := make([]models.OrderItem, 0, len(requested))
	var total float64
	for _, req := range requested {
		if req.Quantity < 1 {
			return nil, 0, helpers.BadRequest("item quantity must be at least 1")
		}
		if req.MenuItem == nil || req.Size == nil {
			return nil, 0, helpers.BadRequest("each item needs a menu_item and a size")
		}
		itemID, err := primitive.ObjectIDFromHex(*req.MenuItem)
		if err != nil {
			return nil, 0, helpers.BadRequest("invalid menu item id: " + *req.MenuItem)
		}
		menuItem := restaurant.FindMenuItem(itemID)
		if menuItem == nil {
			return nil, 0, helpers.BadRequest("menu item " + *req.MenuItem + " not found in this restaurant")
		}
		price, ok := menuItem.PriceFor(*req.Size)
		if !ok {
			return nil, 0, helpers.BadRequest(fmt.Sprintf("size '%s' is not available for item '%s'", *req.Size, *menuItem.Name))
		}
		items = append(items, models.OrderItem{
			MenuItem:  menuItem.ID,
			Name:      *menuItem.Name,
			Size:      *req.Size,
			Quantity:  req.Quantity,
			UnitPrice: price,
		})
		total += price * float64(req.Quantity)
	}
	return items, total, nil
}

// PlaceOrder creates a new order for the authenticated caller.
func (oc *OrderController) PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		caller, ok := middleware.CurrentUser(c)
		if !ok {
			helpers.RespondError(c, helpers.Unauthorized("no authorization token provided"))
			return
		}

		var req models.PlaceOrderRequest
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}
		if err := validate.Struct(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}

		restaurantID, err := primitive.ObjectIDFromHex(*req.Restaurant)
		if err != nil {
			helpers.RespondError(c, helpers.BadRequest("invalid restaurant id"))
			return
		}
		var restaurant models.Restaurant
		if err := oc.restaurants.FindOne(ctx, bson.M{"_id": restaurantID}).Decode(&restaurant); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				helpers.RespondError(c, helpers.NotFound("restaurant not found"))
				return
			}
			helpers.RespondError(c, err)
			return
		}

		items, total, appErr := BuildOrderItems(&restaurant, req.Items)
		if appErr != nil {
			helpers.RespondError(c, appErr)
			return
		}

		address := req.Address
		if address == "" {
			address = caller.Address
		}
		if address == "" {
			helpers.RespondError(c, helpers.BadRequest("address required"))
			return
		}

		now := time.Now().UTC()
		order := models.Order{
			ID:          primitive.NewObjectID(),
			Customer:    caller.ID,
			Restaurant:  restaurant.ID,
			Items:       items,
			TotalAmount: total,
			Address:     address,
			OrderStatus: models.StatusPlaced,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := oc.orders.InsertOne(ctx, order); err != nil {
			helpers.RespondError(c, err)
			return
		}

		oc.hub.NotifyOrderPlaced(order)
		c.JSON(http.StatusCreated, gin.H{"message": "order placed successfully", "order": order})
	}
}

// GetOrders lists orders scoped by the caller's role: a customer sees their
// own, a restaurant owner sees their restaurant's (optionally filtered by
// ?status=), an admin sees everything. Newest first.
func (oc *OrderController) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		caller, ok := middleware.CurrentUser(c)
		if !ok {
			helpers.RespondError(c, helpers.Unauthorized("no authorization token provided"))
			return
		}

		filter := bson.M{}
		switch caller.Role {
		case models.RoleAdmin:
			// unfiltered
		case models.RoleRestaurant:
			if caller.Restaurant == nil {
				helpers.RespondError(c, helpers.NotFound("no restaurant associated with this user"))
				return
			}
			filter["restaurant"] = *caller.Restaurant
			if raw := c.Query("status"); raw != "" {
				status, valid := statemachine.ParseStatus(raw)
				if !valid {
					helpers.RespondError(c, helpers.BadRequest("unrecognized status: "+raw))
					return
				}
				filter["order_status"] = status
			}
		default:
			filter["customer"] = caller.ID
		}

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
		cursor, err := oc.orders.Find(ctx, filter, opts)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		orders := []models.Order{}
		if err := cursor.All(ctx, &orders); err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GetOrder returns one order, visible to its customer, the owner of its
// restaurant, or an admin.
func (oc *OrderController) GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		caller, ok := middleware.CurrentUser(c)
		if !ok {
			helpers.RespondError(c, helpers.Unauthorized("no authorization token provided"))
			return
		}

		orderID, err := primitive.ObjectIDFromHex(c.Param("order_id"))
		if err != nil {
			helpers.RespondError(c, helpers.BadRequest("invalid order id"))
			return
		}
		var order models.Order
		if err := oc.orders.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				helpers.RespondError(c, helpers.NotFound("order not found"))
				return
			}
			helpers.RespondError(c, err)
			return
		}

		allowed := caller.Role == models.RoleAdmin ||
			order.Customer == caller.ID ||
			caller.OwnsRestaurant(order.Restaurant)
		if !allowed {
			helpers.RespondError(c, helpers.Forbidden("order does not belong to this user"))
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatus advances (or cancels) an order through the lifecycle.
// Only the owner of the order's restaurant or an admin may do this; customers
// create orders but never change their status.
func (oc *OrderController) UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		caller, ok := middleware.CurrentUser(c)
		if !ok {
			helpers.RespondError(c, helpers.Unauthorized("no authorization token provided"))
			return
		}

		orderID, err := primitive.ObjectIDFromHex(c.Param("order_id"))
		if err != nil {
			helpers.RespondError(c, helpers.BadRequest("invalid order id"))
			return
		}

		var req models.UpdateOrderStatusRequest
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}
		if req.Status == nil {
			helpers.RespondError(c, helpers.BadRequest("status is required"))
			return
		}
		target, valid := statemachine.ParseStatus(*req.Status)
		if !valid {
			helpers.RespondError(c, helpers.BadRequest("unrecognized status: "+*req.Status))
			return
		}

		var order models.Order
		if err := oc.orders.FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				helpers.RespondError(c, helpers.NotFound("order not found"))
				return
			}
			helpers.RespondError(c, err)
			return
		}

		if caller.Role != models.RoleAdmin && !caller.OwnsRestaurant(order.Restaurant) {
			helpers.RespondError(c, helpers.Forbidden("order does not belong to this restaurant"))
			return
		}

		if statemachine.IsTerminal(order.OrderStatus) {
			helpers.RespondError(c, helpers.Forbidden(fmt.Sprintf("order is already %s", order.OrderStatus)))
			return
		}
		if !statemachine.CanTransition(order.OrderStatus, target) {
			helpers.RespondError(c, helpers.BadRequest(fmt.Sprintf(
				"cannot move order from %s to %s; valid next statuses: %v",
				order.OrderStatus, target, statemachine.NextStatuses(order.OrderStatus))))
			return
		}

		// Filter on the current status so a concurrent transition loses
		// cleanly instead of double-applying.
		result := oc.orders.FindOneAndUpdate(
			ctx,
			bson.M{"_id": order.ID, "order_status": order.OrderStatus},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "order_status", Value: target},
				{Key: "updated_at", Value: time.Now().UTC()},
			}}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		)
		var updated models.Order
		if err := result.Decode(&updated); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				helpers.RespondError(c, helpers.Conflict("order status changed concurrently, retry"))
				return
			}
			helpers.RespondError(c, err)
			return
		}

		oc.hub.NotifyOrderStatus(updated)
		c.JSON(http.StatusOK, updated)
	}
}
