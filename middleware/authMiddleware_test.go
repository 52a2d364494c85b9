package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"food-ordering-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	assert "gopkg.in/go-playground/assert.v1"
)

func TestExtractBearerToken(t *testing.T) {
	token, appErr := ExtractBearerToken("Bearer abc.def.ghi")
	assert.Equal(t, appErr, nil)
	assert.Equal(t, token, "abc.def.ghi")

	_, appErr = ExtractBearerToken("")
	assert.NotEqual(t, appErr, nil)

	_, appErr = ExtractBearerToken("abc.def.ghi")
	assert.NotEqual(t, appErr, nil)

	_, appErr = ExtractBearerToken("Bearer ")
	assert.NotEqual(t, appErr, nil)
}

func testContextWithUser(role string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	username := "test"
	c.Set(userContextKey, &models.User{
		ID:       primitive.NewObjectID(),
		Username: &username,
		Role:     role,
	})
	return c, w
}

func TestRequireRoleAllows(t *testing.T) {
	c, w := testContextWithUser(models.RoleAdmin)
	RequireRole(models.RoleAdmin)(c)
	assert.Equal(t, c.IsAborted(), false)
	assert.Equal(t, w.Code, http.StatusOK)
}

func TestRequireRoleMultiple(t *testing.T) {
	c, _ := testContextWithUser(models.RoleRestaurant)
	RequireRole(models.RoleAdmin, models.RoleRestaurant)(c)
	assert.Equal(t, c.IsAborted(), false)
}

func TestRequireRoleForbidden(t *testing.T) {
	c, w := testContextWithUser(models.RoleUser)
	RequireRole(models.RoleAdmin)(c)
	assert.Equal(t, c.IsAborted(), true)
	assert.Equal(t, w.Code, http.StatusForbidden)
}

func TestRequireRoleUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RequireRole(models.RoleAdmin)(c)
	assert.Equal(t, c.IsAborted(), true)
	assert.Equal(t, w.Code, http.StatusUnauthorized)
}

func TestCurrentUser(t *testing.T) {
	c, _ := testContextWithUser(models.RoleUser)
	user, ok := CurrentUser(c)
	assert.Equal(t, ok, true)
	assert.Equal(t, user.Role, models.RoleUser)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	empty, _ := gin.CreateTestContext(w)
	_, ok = CurrentUser(empty)
	assert.Equal(t, ok, false)
}
