package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmp-dev/parish-admin-api/internal/service"
	"github.com/sjmp-dev/parish-admin-api/pkg/response"
)

// ScheduleHandler serves the per-sacrament calendar pages.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler creates a new handler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// ListByType godoc
// @Summary Calendar entries for one request type
// @Tags Schedules
// @Produce json
// @Param type path string true "Request type"
// @Success 200 {array} dto.ScheduleEntry
// @Failure 404 {object} map[string]string
// @Router /schedules/{type} [get]
func (h *ScheduleHandler) ListByType(c *gin.Context) {
	entries, err := h.service.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}
