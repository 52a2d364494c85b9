package controllers

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"time"

	"food-ordering-backend/helpers"
	"food-ordering-backend/middleware"
	"food-ordering-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RestaurantController struct {
	restaurants *mongo.Collection
}

func NewRestaurantController(restaurants *mongo.Collection) *RestaurantController {
	return &RestaurantController{restaurants: restaurants}
}

// fetchRestaurant loads a restaurant by its path parameter.
func fetchRestaurant(ctx context.Context, c *gin.Context, restaurants *mongo.Collection) (*models.Restaurant, error) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("restaurant_id"))
	if err != nil {
		return nil, helpers.BadRequest("invalid restaurant id")
	}
	var restaurant models.Restaurant
	if err := restaurants.FindOne(ctx, bson.M{"_id": restaurantID}).Decode(&restaurant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, helpers.NotFound("restaurant not found")
		}
		return nil, err
	}
	return &restaurant, nil
}

// fetchOwnedRestaurant loads the restaurant and requires the caller to be its
// owner. Wrong ownership is Forbidden, not Unauthorized: the caller is known,
// just not permitted.
func fetchOwnedRestaurant(ctx context.Context, c *gin.Context, restaurants *mongo.Collection) (*models.Restaurant, error) {
	restaurant, err := fetchRestaurant(ctx, c, restaurants)
	if err != nil {
		return nil, err
	}
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, helpers.Unauthorized("no authorization token provided")
	}
	if restaurant.Owner == nil || *restaurant.Owner != caller.ID {
		return nil, helpers.Forbidden("restaurant does not belong to this user")
	}
	return restaurant, nil
}

// GetRestaurants lists all restaurants; public.
func (rc *RestaurantController) GetRestaurants() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		cursor, err := rc.restaurants.Find(ctx, bson.M{})
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		restaurants := []models.Restaurant{}
		if err := cursor.All(ctx, &restaurants); err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurants)
	}
}

// GetRestaurant returns one restaurant by id; public.
func (rc *RestaurantController) GetRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		restaurant, err := fetchRestaurant(ctx, c, rc.restaurants)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurant)
	}
}

// SearchRestaurants does a case-insensitive substring match on the name.
func (rc *RestaurantController) SearchRestaurants() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		q := c.Query("q")
		if q == "" {
			helpers.RespondError(c, helpers.BadRequest("query parameter (q) is required"))
			return
		}

		filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}}
		cursor, err := rc.restaurants.Find(ctx, filter)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		restaurants := []models.Restaurant{}
		if err := cursor.All(ctx, &restaurants); err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, restaurants)
	}
}

// CreateRestaurant provisions an unowned restaurant; admin only. Ownership is
// attached later through the role-assignment workflow.
func (rc *RestaurantController) CreateRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var spec models.RestaurantSpec
		if err := c.BindJSON(&spec); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}
		if err := validate.Struct(&spec); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}

		restaurant := NewRestaurantFromSpec(&spec, nil)
		if _, err := rc.restaurants.InsertOne(ctx, restaurant); err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, restaurant)
	}
}

// ToggleOpenStatus flips the restaurant's operating flag; owner only.
func (rc *RestaurantController) ToggleOpenStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		restaurant, err := fetchOwnedRestaurant(ctx, c, rc.restaurants)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}

		result := rc.restaurants.FindOneAndUpdate(
			ctx,
			bson.M{"_id": restaurant.ID},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "is_active", Value: !restaurant.IsActive},
				{Key: "updated_at", Value: time.Now().UTC()},
			}}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		)
		var updated models.Restaurant
		if err := result.Decode(&updated); err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// SetOpeningTime records an advisory reopening timestamp; owner only. It is
// not enforced against order placement. A reopening time in the past is
// meaningless, so those are rejected.
func (rc *RestaurantController) SetOpeningTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req models.OpeningTimeRequest
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}
		if req.OpeningTime == nil {
			helpers.RespondError(c, helpers.BadRequest("opening_time is required"))
			return
		}
		if !req.OpeningTime.After(time.Now()) {
			helpers.RespondError(c, helpers.BadRequest("opening_time must be in the future"))
			return
		}

		restaurant, err := fetchOwnedRestaurant(ctx, c, rc.restaurants)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}

		result := rc.restaurants.FindOneAndUpdate(
			ctx,
			bson.M{"_id": restaurant.ID},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "opening_time", Value: *req.OpeningTime},
				{Key: "updated_at", Value: time.Now().UTC()},
			}}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		)
		var updated models.Restaurant
		if err := result.Decode(&updated); err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// NewRestaurantFromSpec builds a restaurant document from a validated spec.
// The menu starts empty and the restaurant open.
func NewRestaurantFromSpec(spec *models.RestaurantSpec, owner *primitive.ObjectID) models.Restaurant {
	now := time.Now().UTC()
	address := spec.Address
	if address != nil && address.Country == "" {
		address.Country = "INDIA"
	}
	return models.Restaurant{
		ID:        primitive.NewObjectID(),
		Name:      spec.Name,
		Address:   address,
		Phone:     spec.Phone,
		Cuisine:   spec.Cuisine,
		Owner:     owner,
		IsActive:  true,
		Menu:      []models.MenuItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
