package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	assert "gopkg.in/go-playground/assert.v1"
)

func TestValidateSizes(t *testing.T) {
	assert.Equal(t, ValidateSizes(map[string]float64{"Small": 50, "Medium": 100, "Large": 150}), nil)
	assert.Equal(t, ValidateSizes(map[string]float64{"Regular": 99.5}), nil)

	assert.NotEqual(t, ValidateSizes(nil), nil)
	assert.NotEqual(t, ValidateSizes(map[string]float64{}), nil)
	assert.NotEqual(t, ValidateSizes(map[string]float64{"Small": 0}), nil)
	assert.NotEqual(t, ValidateSizes(map[string]float64{"Small": -10}), nil)
	assert.NotEqual(t, ValidateSizes(map[string]float64{"": 10}), nil)
}

func TestFindMenuItemAndPriceFor(t *testing.T) {
	name := "Margherita"
	item := MenuItem{
		ID:    primitive.NewObjectID(),
		Name:  &name,
		Sizes: map[string]float64{"Medium": 100, "Large": 160},
	}
	restaurant := Restaurant{ID: primitive.NewObjectID(), Menu: []MenuItem{item}}

	found := restaurant.FindMenuItem(item.ID)
	assert.NotEqual(t, found, nil)
	assert.Equal(t, *found.Name, "Margherita")

	assert.Equal(t, restaurant.FindMenuItem(primitive.NewObjectID()), (*MenuItem)(nil))

	price, ok := found.PriceFor("Medium")
	assert.Equal(t, ok, true)
	assert.Equal(t, price, 100.0)

	_, ok = found.PriceFor("Snack")
	assert.Equal(t, ok, false)
}

func TestOwnsRestaurant(t *testing.T) {
	restaurantID := primitive.NewObjectID()
	owner := User{ID: primitive.NewObjectID(), Role: RoleRestaurant, Restaurant: &restaurantID}
	assert.Equal(t, owner.OwnsRestaurant(restaurantID), true)
	assert.Equal(t, owner.OwnsRestaurant(primitive.NewObjectID()), false)

	// the role must match too: a demoted user keeps owning nothing even if a
	// stale restaurant pointer were present
	demoted := User{ID: primitive.NewObjectID(), Role: RoleUser, Restaurant: &restaurantID}
	assert.Equal(t, demoted.OwnsRestaurant(restaurantID), false)

	plain := User{ID: primitive.NewObjectID(), Role: RoleRestaurant}
	assert.Equal(t, plain.OwnsRestaurant(restaurantID), false)
}

func TestValidRole(t *testing.T) {
	assert.Equal(t, ValidRole("admin"), true)
	assert.Equal(t, ValidRole("restaurant"), true)
	assert.Equal(t, ValidRole("user"), true)
	assert.Equal(t, ValidRole("driver"), false)
	assert.Equal(t, ValidRole(""), false)
}
