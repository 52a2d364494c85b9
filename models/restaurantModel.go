package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Street     *string `bson:"street" json:"street" validate:"required"`
	City       *string `bson:"city" json:"city" validate:"required"`
	State      *string `bson:"state" json:"state" validate:"required"`
	PostalCode *string `bson:"postal_code" json:"postal_code" validate:"required"`
	Country    string  `bson:"country" json:"country"`
}

// MenuItem is embedded in its restaurant document; identity is scoped to that
// restaurant. Sizes maps an arbitrary size label to a positive price, which
// covers both single-size and multi-size items.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     *string            `bson:"name" json:"name" validate:"required,min=1,max=100"`
	Category string             `bson:"category" json:"category"`
	Sizes    map[string]float64 `bson:"sizes" json:"sizes"`
}

// ValidateSizes rejects empty size sets and non-positive prices.
func ValidateSizes(sizes map[string]float64) error {
	if len(sizes) == 0 {
		return errors.New("at least one size with a price is required")
	}
	for label, price := range sizes {
		if label == "" {
			return errors.New("size label must not be empty")
		}
		if price <= 0 {
			return errors.New("price for size '" + label + "' must be greater than zero")
		}
	}
	return nil
}

// PriceFor looks up the unit price of the item for a size label.
func (m *MenuItem) PriceFor(size string) (float64, bool) {
	price, ok := m.Sizes[size]
	return price, ok
}

type Restaurant struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Name    *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Address *Address           `bson:"address" json:"address" validate:"required"`
	Phone   string             `bson:"phone" json:"phone"`
	Cuisine string             `bson:"cuisine" json:"cuisine"`
	// Owner is nil for an unowned restaurant. Kept consistent with the owning
	// user's Restaurant field by the role-assignment transaction only.
	Owner       *primitive.ObjectID `bson:"owner,omitempty" json:"owner,omitempty"`
	IsActive    bool                `bson:"is_active" json:"is_active"`
	OpeningTime *time.Time          `bson:"opening_time,omitempty" json:"opening_time,omitempty"`
	Menu        []MenuItem          `bson:"menu" json:"menu"`
	CreatedAt   time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at" json:"updated_at"`
}

// FindMenuItem returns the menu item with the given id, or nil.
func (r *Restaurant) FindMenuItem(itemID primitive.ObjectID) *MenuItem {
	for i := range r.Menu {
		if r.Menu[i].ID == itemID {
			return &r.Menu[i]
		}
	}
	return nil
}

type RestaurantSpec struct {
	Name    *string  `json:"name" validate:"required,min=2,max=100"`
	Address *Address `json:"address" validate:"required"`
	Phone   string   `json:"phone"`
	Cuisine string   `json:"cuisine"`
}

type MenuItemRequest struct {
	Name     *string            `json:"name,omitempty"`
	Category *string            `json:"category,omitempty"`
	Sizes    map[string]float64 `json:"sizes,omitempty"`
}

type OpeningTimeRequest struct {
	OpeningTime *time.Time `json:"opening_time" validate:"required"`
}
