package controllers

import (
	"testing"

	"food-ordering-backend/helpers"
	"food-ordering-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	assert "gopkg.in/go-playground/assert.v1"
)

func validSpec() *models.RestaurantSpec {
	name := "Test"
	street := "1 Main St"
	city := "Bengaluru"
	state := "KA"
	postal := "560001"
	return &models.RestaurantSpec{
		Name: &name,
		Address: &models.Address{
			Street:     &street,
			City:       &city,
			State:      &state,
			PostalCode: &postal,
		},
	}
}

func TestValidateAssignRoleMissingRole(t *testing.T) {
	appErr := ValidateAssignRoleRequest(&models.AssignRoleRequest{})
	assert.NotEqual(t, appErr, nil)
	assert.Equal(t, appErr.Kind, helpers.KindBadRequest)
}

func TestValidateAssignRoleUnknownRole(t *testing.T) {
	role := "driver"
	appErr := ValidateAssignRoleRequest(&models.AssignRoleRequest{Role: &role})
	assert.NotEqual(t, appErr, nil)
	assert.Equal(t, appErr.Kind, helpers.KindBadRequest)
}

func TestValidateAssignRoleDemotionNeedsNoRestaurant(t *testing.T) {
	for _, role := range []string{models.RoleUser, models.RoleAdmin} {
		r := role
		assert.Equal(t, ValidateAssignRoleRequest(&models.AssignRoleRequest{Role: &r}), nil)
	}
}

func TestValidateAssignRoleRestaurantNeedsExactlyOne(t *testing.T) {
	role := models.RoleRestaurant

	// neither provided
	appErr := ValidateAssignRoleRequest(&models.AssignRoleRequest{Role: &role})
	assert.NotEqual(t, appErr, nil)

	// both provided
	id := primitive.NewObjectID().Hex()
	appErr = ValidateAssignRoleRequest(&models.AssignRoleRequest{
		Role:          &role,
		RestaurantID:  &id,
		NewRestaurant: validSpec(),
	})
	assert.NotEqual(t, appErr, nil)
}

func TestValidateAssignRoleExistingRestaurant(t *testing.T) {
	role := models.RoleRestaurant
	id := primitive.NewObjectID().Hex()
	assert.Equal(t, ValidateAssignRoleRequest(&models.AssignRoleRequest{Role: &role, RestaurantID: &id}), nil)

	bad := "not-an-object-id"
	appErr := ValidateAssignRoleRequest(&models.AssignRoleRequest{Role: &role, RestaurantID: &bad})
	assert.NotEqual(t, appErr, nil)
}

func TestValidateAssignRoleNewRestaurantSpec(t *testing.T) {
	role := models.RoleRestaurant
	assert.Equal(t, ValidateAssignRoleRequest(&models.AssignRoleRequest{Role: &role, NewRestaurant: validSpec()}), nil)

	// missing address fields
	incomplete := validSpec()
	incomplete.Address.City = nil
	appErr := ValidateAssignRoleRequest(&models.AssignRoleRequest{Role: &role, NewRestaurant: incomplete})
	assert.NotEqual(t, appErr, nil)
	assert.Equal(t, appErr.Kind, helpers.KindBadRequest)

	// missing name
	unnamed := validSpec()
	unnamed.Name = nil
	assert.NotEqual(t, ValidateAssignRoleRequest(&models.AssignRoleRequest{Role: &role, NewRestaurant: unnamed}), nil)
}

func TestNewRestaurantFromSpec(t *testing.T) {
	ownerID := primitive.NewObjectID()
	restaurant := NewRestaurantFromSpec(validSpec(), &ownerID)

	assert.Equal(t, *restaurant.Name, "Test")
	assert.Equal(t, *restaurant.Owner, ownerID)
	assert.Equal(t, restaurant.IsActive, true)
	assert.Equal(t, len(restaurant.Menu), 0)
	assert.Equal(t, restaurant.Address.Country, "INDIA")

	unowned := NewRestaurantFromSpec(validSpec(), nil)
	assert.Equal(t, unowned.Owner, (*primitive.ObjectID)(nil))
}
