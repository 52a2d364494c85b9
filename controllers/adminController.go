package controllers

import (
	"errors"
	"net/http"
	"time"

	"food-ordering-backend/helpers"
	"food-ordering-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminController struct {
	client      *mongo.Client
	users       *mongo.Collection
	restaurants *mongo.Collection
}

func NewAdminController(client *mongo.Client, users, restaurants *mongo.Collection) *AdminController {
	return &AdminController{client: client, users: users, restaurants: restaurants}
}

// ValidateAssignRoleRequest checks the payload before any write is attempted.
func ValidateAssignRoleRequest(req *models.AssignRoleRequest) *helpers.AppError {
	if req.Role == nil || *req.Role == "" {
		return helpers.BadRequest("role is required")
	}
	if !models.ValidRole(*req.Role) {
		return helpers.BadRequest("unknown role: " + *req.Role)
	}
	if *req.Role != models.RoleRestaurant {
		return nil
	}
	hasExisting := req.RestaurantID != nil && *req.RestaurantID != ""
	hasNew := req.NewRestaurant != nil
	if hasExisting == hasNew {
		return helpers.BadRequest("exactly one of restaurant_id or new_restaurant is required for the restaurant role")
	}
	if hasExisting {
		if _, err := primitive.ObjectIDFromHex(*req.RestaurantID); err != nil {
			return helpers.BadRequest("invalid restaurant id")
		}
	}
	if hasNew {
		if err := validate.Struct(req.NewRestaurant); err != nil {
			return helpers.BadRequest(err.Error())
		}
		if err := validate.Struct(req.NewRestaurant.Address); err != nil {
			return helpers.BadRequest(err.Error())
		}
	}
	return nil
}

// AssignRole is the one multi-document write in the system: it links or
// unlinks a user and a restaurant when an admin changes the user's role. The
// whole read-check-write sequence runs inside one Mongo transaction so the
// owner / owned-restaurant pair can never be observed half-updated, and the
// ownership check is re-evaluated inside the transaction so two concurrent
// assignments of the same restaurant end with exactly one winner.
func (ac *AdminController) AssignRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		targetID, err := primitive.ObjectIDFromHex(c.Param("user_id"))
		if err != nil {
			helpers.RespondError(c, helpers.BadRequest("invalid user id"))
			return
		}

		var req models.AssignRoleRequest
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}
		if appErr := ValidateAssignRoleRequest(&req); appErr != nil {
			helpers.RespondError(c, appErr)
			return
		}

		session, err := ac.client.StartSession()
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		defer session.EndSession(ctx)

		result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
			return ac.assignRoleTxn(sc, targetID, &req)
		})
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// assignRoleTxn runs inside an open transaction. Returning an error aborts it
// and rolls every staged write back.
func (ac *AdminController) assignRoleTxn(sc mongo.SessionContext, targetID primitive.ObjectID, req *models.AssignRoleRequest) (interface{}, error) {
	var user models.User
	if err := ac.users.FindOne(sc, bson.M{"_id": targetID}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, helpers.NotFound("user not found")
		}
		return nil, err
	}

	now := time.Now().UTC()
	newRole := *req.Role

	if newRole != models.RoleRestaurant {
		// Demotion: detach any owned restaurant, then clear the user's side.
		if user.Restaurant != nil {
			if err := ac.detachOwner(sc, *user.Restaurant, targetID, now); err != nil {
				return nil, err
			}
		}
		update := bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "role", Value: newRole},
				{Key: "updated_at", Value: now},
			}},
			{Key: "$unset", Value: bson.D{{Key: "restaurant", Value: ""}}},
		}
		if _, err := ac.users.UpdateOne(sc, bson.M{"_id": targetID}, update); err != nil {
			return nil, err
		}
		user.Role = newRole
		user.Restaurant = nil
		user.UpdatedAt = now
		return gin.H{"message": "role assigned successfully", "user": user}, nil
	}

	var restaurant models.Restaurant
	if req.RestaurantID != nil && *req.RestaurantID != "" {
		restaurantID, _ := primitive.ObjectIDFromHex(*req.RestaurantID)
		if err := ac.restaurants.FindOne(sc, bson.M{"_id": restaurantID}).Decode(&restaurant); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, helpers.NotFound("restaurant not found")
			}
			return nil, err
		}
		// The ownership check happens here, inside the transaction, so a
		// concurrent assignment of the same restaurant to another user
		// surfaces as a Conflict for exactly one of the two admins.
		if restaurant.Owner != nil && *restaurant.Owner != targetID {
			return nil, helpers.Conflict("restaurant already has an owner")
		}
	} else {
		restaurant = NewRestaurantFromSpec(req.NewRestaurant, &targetID)
		if _, err := ac.restaurants.InsertOne(sc, restaurant); err != nil {
			return nil, err
		}
	}

	// A user owns at most one restaurant: detach the previously owned one if
	// it differs from the new assignment.
	if user.Restaurant != nil && *user.Restaurant != restaurant.ID {
		if err := ac.detachOwner(sc, *user.Restaurant, targetID, now); err != nil {
			return nil, err
		}
	}

	if _, err := ac.restaurants.UpdateOne(
		sc,
		bson.M{"_id": restaurant.ID},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "owner", Value: targetID},
			{Key: "updated_at", Value: now},
		}}},
	); err != nil {
		return nil, err
	}

	if _, err := ac.users.UpdateOne(
		sc,
		bson.M{"_id": targetID},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "role", Value: models.RoleRestaurant},
			{Key: "restaurant", Value: restaurant.ID},
			{Key: "updated_at", Value: now},
		}}},
	); err != nil {
		return nil, err
	}

	user.Role = models.RoleRestaurant
	user.Restaurant = &restaurant.ID
	user.UpdatedAt = now
	restaurant.Owner = &targetID
	restaurant.UpdatedAt = now
	return gin.H{"message": "role assigned successfully", "user": user, "restaurant": restaurant}, nil
}

// detachOwner clears a restaurant's owner, but only if it still points at the
// expected user.
func (ac *AdminController) detachOwner(sc mongo.SessionContext, restaurantID, ownerID primitive.ObjectID, now time.Time) error {
	_, err := ac.restaurants.UpdateOne(
		sc,
		bson.M{"_id": restaurantID, "owner": ownerID},
		bson.D{
			{Key: "$unset", Value: bson.D{{Key: "owner", Value: ""}}},
			{Key: "$set", Value: bson.D{{Key: "updated_at", Value: now}}},
		},
	)
	return err
}

// GetAllUsers lists every user with their resolved restaurant; admin only.
func (ac *AdminController) GetAllUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		pipeline := mongo.Pipeline{
			{{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: "restaurant"},
				{Key: "localField", Value: "restaurant"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "owned_restaurant"},
			}}},
			{{Key: "$project", Value: bson.D{{Key: "password", Value: 0}}}},
		}
		cursor, err := ac.users.Aggregate(ctx, pipeline)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		users := []bson.M{}
		if err := cursor.All(ctx, &users); err != nil {
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GetAllRestaurants lists every restaurant; admin only.
func (ac *AdminController) GetAllRestaurants() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		cursor, err := ac.restaurants.Find(ctx, bson.M{})
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
