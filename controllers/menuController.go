package controllers

import (
	"net/http"
	"time"

	"food-ordering-backend/helpers"
	"food-ordering-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuController struct {
	restaurants *mongo.Collection
}

func NewMenuController(restaurants *mongo.Collection) *MenuController {
	return &MenuController{restaurants: restaurants}
}

// GetMenu returns a restaurant's menu; public.
func (mc *MenuController) GetMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		restaurant, err := fetchRestaurant(ctx, c, mc.restaurants)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurant.Menu)
	}
}

// AddMenuItem appends a new item to the caller's restaurant menu.
func (mc *MenuController) AddMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		restaurant, err := fetchOwnedRestaurant(ctx, c, mc.restaurants)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}

		var req models.MenuItemRequest
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}
		if req.Name == nil || *req.Name == "" {
			helpers.RespondError(c, helpers.BadRequest("menu item name is required"))
			return
		}
		if err := models.ValidateSizes(req.Sizes); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}

		item := models.MenuItem{
			ID:    primitive.NewObjectID(),
			Name:  req.Name,
			Sizes: req.Sizes,
		}
		if req.Category != nil {
			item.Category = *req.Category
		}

		_, err = mc.restaurants.UpdateOne(
			ctx,
			bson.M{"_id": restaurant.ID},
			bson.D{
				{Key: "$push", Value: bson.D{{Key: "menu", Value: item}}},
				{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
			},
		)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// EditMenuItem updates the named fields of one item in the caller's menu.
func (mc *MenuController) EditMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		restaurant, err := fetchOwnedRestaurant(ctx, c, mc.restaurants)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}

		itemID, err := primitive.ObjectIDFromHex(c.Param("item_id"))
		if err != nil {
			helpers.RespondError(c, helpers.BadRequest("invalid menu item id"))
			return
		}
		if restaurant.FindMenuItem(itemID) == nil {
			helpers.RespondError(c, helpers.NotFound("menu item not found"))
			return
		}

		var req models.MenuItemRequest
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}
		if req.Name == nil && req.Category == nil && req.Sizes == nil {
			helpers.RespondError(c, helpers.BadRequest("no fields to update provided"))
			return
		}

		var updateObj primitive.D
		if req.Name != nil {
			if *req.Name == "" {
				helpers.RespondError(c, helpers.BadRequest("menu item name must not be empty"))
				return
			}
			updateObj = append(updateObj, bson.E{Key: "menu.$.name", Value: *req.Name})
		}
		if req.Category != nil {
			updateObj = append(updateObj, bson.E{Key: "menu.$.category", Value: *req.Category})
		}
		if req.Sizes != nil {
			if err := models.ValidateSizes(req.Sizes); err != nil {
				helpers.RespondError(c, helpers.BadRequest(err.Error()))
				return
			}
			updateObj = append(updateObj, bson.E{Key: "menu.$.sizes", Value: req.Sizes})
		}
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now().UTC()})

		result := mc.restaurants.FindOneAndUpdate(
			ctx,
			bson.M{"_id": restaurant.ID, "menu._id": itemID},
			bson.D{{Key: "$set", Value: updateObj}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		)
		var updated models.Restaurant
		if err := result.Decode(&updated); err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated.FindMenuItem(itemID))
	}
}

// DeleteMenuItem removes one item from the caller's menu. Past orders keep
// their snapshots; only the live menu changes.
func (mc *MenuController) DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		restaurant, err := fetchOwnedRestaurant(ctx, c, mc.restaurants)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}

		itemID, err := primitive.ObjectIDFromHex(c.Param("item_id"))
		if err != nil {
			helpers.RespondError(c, helpers.BadRequest("invalid menu item id"))
			return
		}
		if restaurant.FindMenuItem(itemID) == nil {
			helpers.RespondError(c, helpers.NotFound("menu item not found"))
			return
		}

		_, err = mc.restaurants.UpdateOne(
			ctx,
			bson.M{"_id": restaurant.ID},
			bson.D{
				{Key: "$pull", Value: bson.D{{Key: "menu", Value: bson.D{{Key: "_id", Value: itemID}}}}},
				{Key: "$set", Value: bson.D{{Key: "updated_at", Value: time.Now().UTC()}}},
			},
		)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "menu item deleted"})
	}
}
