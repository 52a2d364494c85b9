package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "Placed"
	StatusAccepted  OrderStatus = "Accepted"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// OrderItem is a snapshot taken at order time: name and unit price are copied
// from the menu so later menu edits never change what a past order shows.
type OrderItem struct {
	MenuItem  primitive.ObjectID `bson:"menu_item" json:"menu_item"`
	Name      string             `bson:"name" json:"name"`
	Size      string             `bson:"size" json:"size"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	UnitPrice float64            `bson:"unit_price" json:"unit_price"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Customer    primitive.ObjectID `bson:"customer" json:"customer"`
	Restaurant  primitive.ObjectID `bson:"restaurant" json:"restaurant"`
	Items       []OrderItem        `bson:"items" json:"items"`
	TotalAmount float64            `bson:"total_amount" json:"total_amount"`
	Address     string             `bson:"address" json:"address"`
	OrderStatus OrderStatus        `bson:"order_status" json:"order_status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type PlaceOrderItem struct {
	MenuItem *string `json:"menu_item" validate:"required"`
	Size     *string `json:"size" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
}

type PlaceOrderRequest struct {
	Restaurant *string          `json:"restaurant" validate:"required"`
	Items      []PlaceOrderItem `json:"items" validate:"required,min=1"`
	Address    string           `json:"address"`
}

type UpdateOrderStatusRequest struct {
	Status *string `json:"status" validate:"required"`
}
