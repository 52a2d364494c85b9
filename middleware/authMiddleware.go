package middleware

import (
	"context"
	"errors"
	"strings"
	"time"

	"food-ordering-backend/helpers"
	"food-ordering-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const userContextKey = "currentUser"

type AuthMiddleware struct {
	tokens *helpers.TokenHelper
	users  *mongo.Collection
}

func NewAuthMiddleware(tokens *helpers.TokenHelper, users *mongo.Collection) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// ExtractBearerToken pulls the raw token out of an Authorization header.
func ExtractBearerToken(header string) (string, *helpers.AppError) {
	if header == "" {
		return "", helpers.Unauthorized("no authorization token provided")
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", helpers.Unauthorized("authorization header must use the Bearer scheme")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", helpers.Unauthorized("no authorization token provided")
	}
	return token, nil
}

// Authentication verifies the bearer token and re-fetches the user it names.
// The freshly loaded document, not the token snapshot, is what later role and
// ownership checks see, so a role change applies before the token expires.
func (a *AuthMiddleware) Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken, appErr := ExtractBearerToken(c.GetHeader("Authorization"))
		if appErr != nil {
			helpers.RespondError(c, appErr)
			c.Abort()
			return
		}

		claims, appErr := a.tokens.ValidateToken(clientToken)
		if appErr != nil {
			helpers.RespondError(c, appErr)
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.Uid)
		if err != nil {
			helpers.RespondError(c, helpers.Unauthorized("invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var user models.User
		if err := a.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				helpers.RespondError(c, helpers.Unauthorized("user not found"))
			} else {
				helpers.RespondError(c, err)
			}
			c.Abort()
			return
		}

		c.Set(userContextKey, &user)
		c.Next()
	}
}

// RequireRole gates a route to the listed roles, compared against the user
// fetched by Authentication.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			helpers.RespondError(c, helpers.Unauthorized("no authorization token provided"))
			c.Abort()
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		helpers.RespondError(c, helpers.Forbidden("insufficient role for this action"))
		c.Abort()
	}
}

// CurrentUser returns the authenticated user set by Authentication.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
