package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	assert "gopkg.in/go-playground/assert.v1"
)

func TestKindHTTPStatus(t *testing.T) {
	assert.Equal(t, KindBadRequest.HTTPStatus(), http.StatusBadRequest)
	assert.Equal(t, KindUnauthorized.HTTPStatus(), http.StatusUnauthorized)
	assert.Equal(t, KindForbidden.HTTPStatus(), http.StatusForbidden)
	assert.Equal(t, KindNotFound.HTTPStatus(), http.StatusNotFound)
	assert.Equal(t, KindConflict.HTTPStatus(), http.StatusConflict)
	assert.Equal(t, KindUnavailable.HTTPStatus(), http.StatusServiceUnavailable)
}

func respond(err error) (*httptest.ResponseRecorder, map[string]string) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)

	body := map[string]string{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestRespondAppError(t *testing.T) {
	w, body := respond(Conflict("restaurant already has an owner"))
	assert.Equal(t, w.Code, http.StatusConflict)
	assert.Equal(t, body["error"], "conflict")
	assert.Equal(t, body["message"], "restaurant already has an owner")
}

func TestRespondNoDocuments(t *testing.T) {
	w, body := respond(mongo.ErrNoDocuments)
	assert.Equal(t, w.Code, http.StatusNotFound)
	assert.Equal(t, body["error"], "not_found")
}

func TestRespondUnknownError(t *testing.T) {
	w, body := respond(errors.New("boom"))
	assert.Equal(t, w.Code, http.StatusInternalServerError)
	// internal details never leak to the client
	assert.Equal(t, body["message"], "internal server error")
}
