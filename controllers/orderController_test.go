package controllers

import (
	"testing"

	"food-ordering-backend/helpers"
	"food-ordering-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	assert "gopkg.in/go-playground/assert.v1"
)

func testRestaurant() *models.Restaurant {
	pizza := "Margherita"
	burger := "Veg Burger"
	return &models.Restaurant{
		ID: primitive.NewObjectID(),
		Menu: []models.MenuItem{
			{
				ID:    primitive.NewObjectID(),
				Name:  &pizza,
				Sizes: map[string]float64{"Small": 60, "Medium": 100, "Large": 150},
			},
			{
				ID:    primitive.NewObjectID(),
				Name:  &burger,
				Sizes: map[string]float64{"Regular": 80},
			},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestBuildOrderItemsComputesTotal(t *testing.T) {
	restaurant := testRestaurant()
	requested := []models.PlaceOrderItem{
		{MenuItem: strPtr(restaurant.Menu[0].ID.Hex()), Size: strPtr("Medium"), Quantity: 2},
	}

	items, total, appErr := BuildOrderItems(restaurant, requested)
	assert.Equal(t, appErr, nil)
	assert.Equal(t, total, 200.0)
	assert.Equal(t, len(items), 1)
	assert.Equal(t, items[0].Name, "Margherita")
	assert.Equal(t, items[0].Size, "Medium")
	assert.Equal(t, items[0].Quantity, 2)
	assert.Equal(t, items[0].UnitPrice, 100.0)
	assert.Equal(t, items[0].MenuItem, restaurant.Menu[0].ID)
}

func TestBuildOrderItemsMixedItems(t *testing.T) {
	restaurant := testRestaurant()
	requested := []models.PlaceOrderItem{
		{MenuItem: strPtr(restaurant.Menu[0].ID.Hex()), Size: strPtr("Large"), Quantity: 1},
		{MenuItem: strPtr(restaurant.Menu[1].ID.Hex()), Size: strPtr("Regular"), Quantity: 3},
	}

	items, total, appErr := BuildOrderItems(restaurant, requested)
	assert.Equal(t, appErr, nil)
	assert.Equal(t, len(items), 2)
	assert.Equal(t, total, 150.0+3*80.0)
}

func TestBuildOrderItemsEmpty(t *testing.T) {
	_, _, appErr := BuildOrderItems(testRestaurant(), nil)
	assert.NotEqual(t, appErr, nil)
	assert.Equal(t, appErr.Kind, helpers.KindBadRequest)
}

func TestBuildOrderItemsBadQuantity(t *testing.T) {
	restaurant := testRestaurant()
	requested := []models.PlaceOrderItem{
		{MenuItem: strPtr(restaurant.Menu[0].ID.Hex()), Size: strPtr("Medium"), Quantity: 0},
	}
	_, _, appErr := BuildOrderItems(restaurant, requested)
	assert.NotEqual(t, appErr, nil)
	assert.Equal(t, appErr.Kind, helpers.KindBadRequest)
}

func TestBuildOrderItemsUnknownSize(t *testing.T) {
	restaurant := testRestaurant()
	requested := []models.PlaceOrderItem{
		{MenuItem: strPtr(restaurant.Menu[1].ID.Hex()), Size: strPtr("Large"), Quantity: 1},
	}
	_, _, appErr := BuildOrderItems(restaurant, requested)
	assert.NotEqual(t, appErr, nil)
	assert.Equal(t, appErr.Kind, helpers.KindBadRequest)
}

func TestBuildOrderItemsForeignMenuItem(t *testing.T) {
	restaurant := testRestaurant()
	requested := []models.PlaceOrderItem{
		{MenuItem: strPtr(primitive.NewObjectID().Hex()), Size: strPtr("Medium"), Quantity: 1},
	}
	_, _, appErr := BuildOrderItems(restaurant, requested)
	assert.NotEqual(t, appErr, nil)
	assert.Equal(t, appErr.Kind, helpers.KindBadRequest)
}

func TestBuildOrderItemsSnapshotIndependentOfMenuEdits(t *testing.T) {
	restaurant := testRestaurant()
	requested := []models.PlaceOrderItem{
		{MenuItem: strPtr(restaurant.Menu[0].ID.Hex()), Size: strPtr("Medium"), Quantity: 2},
	}
	items, total, appErr := BuildOrderItems(restaurant, requested)
	assert.Equal(t, appErr, nil)

	// a later price edit must not affect the snapshot already taken
	restaurant.Menu[0].Sizes["Medium"] = 500
	assert.Equal(t, items[0].UnitPrice, 100.0)
	assert.Equal(t, total, 200.0)
}
