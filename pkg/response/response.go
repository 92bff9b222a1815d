package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
)

// The desktop shell and the browser pages consume the legacy wire contract:
// success payloads are returned bare, failures carry a {message} body.

// JSON sends a success payload.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Message responds with a plain {message} body.
func Message(c *gin.Context, status int, message string) {
	JSON(c, status, gin.H{"message": message})
}

// Error converts any error to the appropriate HTTP status and {message} body.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"message": appErr.Message})
}
