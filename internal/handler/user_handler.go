package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmp-dev/parish-admin-api/internal/service"
	"github.com/sjmp-dev/parish-admin-api/pkg/response"
)

// UserHandler lists and removes parishioner accounts.
type UserHandler struct {
	service *service.ParishionerService
}

// NewUserHandler creates a new handler.
func NewUserHandler(svc *service.ParishionerService) *UserHandler {
	return &UserHandler{service: svc}
}

// List godoc
// @Summary List parishioners
// @Tags Users
// @Produce json
// @Success 200 {array} models.Parishioner
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	parishioners, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, parishioners)
}

// Delete godoc
// @Summary Delete a parishioner account
// @Tags Users
// @Produce json
// @Param id path string true "Parishioner ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), actorFromContext(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "user deleted successfully")
}
