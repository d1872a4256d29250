package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success returns a 200 response with the given payload.
func Success(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Created returns a 201 response with the given payload.
func Created(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// Message returns a 200 response wrapping a human-readable message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ErrorResponse returns an error body with the given status code.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// BadRequest returns a generic 400 error.
func BadRequest(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, "Bad request.")
}

// AuthFailed returns a generic 401 error.
func AuthFailed(c *gin.Context) {
	ErrorResponse(c, http.StatusUnauthorized, "Auth failed.")
}

// Forbidden returns a 403 error for ownership violations.
func Forbidden(c *gin.Context) {
	ErrorResponse(c, http.StatusForbidden, "Insufficient permissions")
}

// NotFound returns a generic 404 error.
func NotFound(c *gin.Context) {
	ErrorResponse(c, http.StatusNotFound, "Not found.")
}

// UnknownEndpoint returns the 404 body served for unroutable paths.
func UnknownEndpoint(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "unknown endpoint"})
}
