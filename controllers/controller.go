package controllers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	validator "github.com/go-playground/validator"
)

var validate = validator.New()

const requestTimeout = 10 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}
