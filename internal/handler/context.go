package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sjmp-dev/parish-admin-api/internal/lifecycle"
	"github.com/sjmp-dev/parish-admin-api/internal/middleware"
	"github.com/sjmp-dev/parish-admin-api/internal/models"
)

// actorFromContext resolves the acting staff member for activity entries.
// Requests without a token fall back to the shared office identity.
func actorFromContext(c *gin.Context) string {
	raw, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		return lifecycle.DefaultActor
	}
	claims, ok := raw.(*models.JWTClaims)
	if !ok || claims.Username == "" {
		return lifecycle.DefaultActor
	}
	return claims.Username
}
