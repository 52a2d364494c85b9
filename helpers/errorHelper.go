package helpers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrorKind is the machine-readable error category returned to clients.
type ErrorKind string

const (
	KindBadRequest   ErrorKind = "bad_request"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindUnavailable  ErrorKind = "unavailable"
)

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(kind ErrorKind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func BadRequest(message string) *AppError   { return NewAppError(KindBadRequest, message) }
func Unauthorized(message string) *AppError { return NewAppError(KindUnauthorized, message) }
func Forbidden(message string) *AppError    { return NewAppError(KindForbidden, message) }
func NotFound(message string) *AppError     { return NewAppError(KindNotFound, message) }
func Conflict(message string) *AppError     { return NewAppError(KindConflict, message) }
func Unavailable(message string) *AppError  { return NewAppError(KindUnavailable, message) }

// HTTPStatus maps an error kind to its HTTP status code.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the JSON error body for err. AppErrors keep their kind;
// storage-layer failures are translated so handlers can pass Mongo errors
// through unchanged.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Kind.HTTPStatus(), gin.H{"error": string(appErr.Kind), "message": appErr.Message})
		return
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": string(KindNotFound), "message": "resource not found"})
		return
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": string(KindUnavailable), "message": "storage unavailable"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal", "message": "internal server error"})
}
