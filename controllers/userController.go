package controllers

import (
	"errors"
	"net/http"
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

type UserController struct {
	users  *mongo.Collection
	tokens *helpers.TokenHelper
}

func NewUserController(users *mongo.Collection, tokens *helpers.TokenHelper) *UserController {
	return &UserController{users: users, tokens: tokens}
}

// SignUp registers a new account. Every self-registered account starts with
// the "user" role; only the admin role-assignment workflow changes it later.
func (uc *UserController) SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req models.SignUpRequest
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}
		if err := validate.Struct(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}

		count, err := uc.users.CountDocuments(ctx, bson.M{"mobile_number": *req.MobileNumber})
		if err != nil {
			helpers.RespondError(c, err)
			return
		}
		if count > 0 {
			helpers.RespondError(c, helpers.Conflict("a user with this mobile number already exists"))
			return
		}

		hashed, err := helpers.HashPassword(*req.Password)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}

		now := time.Now().UTC()
		user := models.User{
			ID:           primitive.NewObjectID(),
			Username:     req.Username,
			MobileNumber: req.MobileNumber,
			Password:     &hashed,
			Role:         models.RoleUser,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := uc.users.InsertOne(ctx, user); err != nil {
			// Two concurrent sign-ups can both pass the count above; the
			// unique index on mobile_number rejects the loser here.
			if mongo.IsDuplicateKeyError(err) {
				helpers.RespondError(c, helpers.Conflict("a user with this mobile number already exists"))
				return
			}
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "user registered successfully", "user": user})
	}
}

// Login authenticates by mobile number and password and issues a signed,
// time-limited token.
func (uc *UserController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		var req models.LoginRequest
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}
		if err := validate.Struct(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}

		var user models.User
		err := uc.users.FindOne(ctx, bson.M{"mobile_number": *req.MobileNumber}).Decode(&user)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				helpers.RespondError(c, helpers.NotFound("user not found with this mobile number"))
				return
			}
			helpers.RespondError(c, err)
			return
		}

		if !helpers.VerifyPassword(*req.Password, *user.Password) {
			helpers.RespondError(c, helpers.Unauthorized("invalid credentials"))
			return
		}

		token, err := uc.tokens.GenerateToken(user.ID, *user.Username, user.Role)
		if err != nil {
			helpers.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":   token,
			"user":    user,
			"message": "login successful",
		})
	}
}

// Logout exists for API parity with the frontend; tokens are stateless, so
// the client simply discards its copy.
func (uc *UserController) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
	}
}

// GetMe returns the authenticated caller's fresh profile.
func (uc *UserController) GetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			helpers.RespondError(c, helpers.Unauthorized("no authorization token provided"))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfile lets a user edit their own name, address and password. Role
// and restaurant ownership are never touched here.
func (uc *UserController) UpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		user, ok := middleware.CurrentUser(c)
		if !ok {
			helpers.RespondError(c, helpers.Unauthorized("no authorization token provided"))
			return
		}

		var req models.UpdateProfileRequest
		if err := c.BindJSON(&req); err != nil {
			helpers.RespondError(c, helpers.BadRequest(err.Error()))
			return
		}

		var updateObj primitive.D
		if req.Username != nil {
			if len(*req.Username) < 2 {
				helpers.RespondError(c, helpers.BadRequest("username must be at least 2 characters"))
				return
			}
			updateObj = append(updateObj, bson.E{Key: "username", Value: *req.Username})
		}
		if req.Address != nil {
			updateObj = append(updateObj, bson.E{Key: "address", Value: *req.Address})
		}

		if req.NewPassword != nil || req.OldPassword != nil {
			if req.NewPassword == nil || req.OldPassword == nil {
				helpers.RespondError(c, helpers.BadRequest("both old_password and new_password are required to change the password"))
				return
			}
			if !helpers.VerifyPassword(*req.OldPassword, *user.Password) {
				helpers.RespondError(c, helpers.BadRequest("incorrect old password"))
				return
			}
			if appErr := helpers.CheckPasswordStrength(*req.NewPassword); appErr != nil {
				helpers.RespondError(c, appErr)
				return
			}
			hashed, err := helpers.HashPassword(*req.NewPassword)
			if err != nil {
				helpers.RespondError(c, err)
				return
			}
			updateObj = append(updateObj, bson.E{Key: "password", Value: hashed})
		}

		if len(updateObj) == 0 {
			helpers.RespondError(c, helpers.BadRequest("no fields to update provided"))
			return
		}
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now().UTC()})

		result := uc.users.FindOneAndUpdate(
			ctx,
			bson.M{"_id": user.ID},
			bson.D{{Key: "$set", Value: updateObj}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		)
		var updated models.User
		if err := result.Decode(&updated); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				helpers.RespondError(c, helpers.NotFound("user not found"))
				return
			}
			helpers.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully", "user": updated})
	}
}
