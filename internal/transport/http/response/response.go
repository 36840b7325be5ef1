package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform body every endpoint returns; StatusCode mirrors the
// HTTP status of the response.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Result     any    `json:"result,omitempty"`
}

func New(code int, msg string, result any) Envelope {
	return Envelope{StatusCode: code, Message: msg, Result: result}
}

// OK writes a 200 envelope.
func OK(c *gin.Context, msg string, result any) {
	c.JSON(http.StatusOK, New(http.StatusOK, msg, result))
}

// Created writes a 201 envelope.
func Created(c *gin.Context, msg string, result any) {
	c.JSON(http.StatusCreated, New(http.StatusCreated, msg, result))
}

// Error writes an error envelope with a nil result.
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, New(code, msg, nil))
}

// AbortError is Error for middleware, stopping the chain.
func AbortError(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, New(code, msg, nil))
}
