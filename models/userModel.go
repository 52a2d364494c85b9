package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin      = "admin"
	RoleRestaurant = "restaurant"
	RoleUser       = "user"
)

// ValidRole reports whether role is one of the three platform roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleRestaurant || role == RoleUser
}

type User struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Username     *string            `bson:"username" json:"username" validate:"required,min=2,max=100"`
	MobileNumber *string            `bson:"mobile_number" json:"mobile_number" validate:"required,min=7,max=15"`
	Password     *string            `bson:"password" json:"-" validate:"required,min=6"`
	Role         string             `bson:"role" json:"role"`
	// Restaurant is set iff Role == "restaurant" and that restaurant's owner
	// points back at this user. Written only by the role-assignment transaction.
	Restaurant *primitive.ObjectID `bson:"restaurant,omitempty" json:"restaurant,omitempty"`
	Address    string              `bson:"address" json:"address"`
	CreatedAt  time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time           `bson:"updated_at" json:"updated_at"`
}

// OwnsRestaurant reports whether the user currently owns the given restaurant.
func (u *User) OwnsRestaurant(restaurantID primitive.ObjectID) bool {
	return u.Role == RoleRestaurant && u.Restaurant != nil && *u.Restaurant == restaurantID
}

type SignUpRequest struct {
	Username     *string `json:"username" validate:"required,min=2,max=100"`
	MobileNumber *string `json:"mobile_number" validate:"required,min=7,max=15"`
	Password     *string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	MobileNumber *string `json:"mobile_number" validate:"required"`
	Password     *string `json:"password" validate:"required"`
}

// AssignRoleRequest is the admin payload for the role-assignment workflow.
// For the restaurant role exactly one of RestaurantID or NewRestaurant must be
// set.
type AssignRoleRequest struct {
	Role          *string         `json:"role" validate:"required"`
	RestaurantID  *string         `json:"restaurant_id,omitempty"`
	NewRestaurant *RestaurantSpec `json:"new_restaurant,omitempty"`
}

type UpdateProfileRequest struct {
	Username    *string `json:"username,omitempty"`
	Address     *string `json:"address,omitempty"`
	OldPassword *string `json:"old_password,omitempty"`
	NewPassword *string `json:"new_password,omitempty"`
}
