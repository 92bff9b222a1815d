package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sjmp-dev/parish-admin-api/internal/service"
	"github.com/sjmp-dev/parish-admin-api/pkg/response"
)

// DashboardHandler serves the landing page counters and charts.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// TotalByType returns a gin handler for one request type's counter card.
// Mounted per registry entry as /dashboard/total-{type}.
func (h *DashboardHandler) TotalByType(requestType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := h.service.TotalByType(c.Request.Context(), requestType)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, result)
	}
}

// MonthlyByType returns a gin handler for one request type's chart series.
// Mounted per registry entry as /dashboard/monthly-{type}.
func (h *DashboardHandler) MonthlyByType(requestType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := h.service.MonthlyByType(c.Request.Context(), requestType)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, result)
	}
}

// TotalUsers godoc
// @Summary Registered parishioner counter
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Router /dashboard/total-users [get]
func (h *DashboardHandler) TotalUsers(c *gin.Context) {
	result, err := h.service.TotalUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// MonthlyUsers godoc
// @Summary Parishioner registrations per month
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.MonthlyResponse
// @Router /dashboard/monthly-users [get]
func (h *DashboardHandler) MonthlyUsers(c *gin.Context) {
	result, err := h.service.MonthlyUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// RecentActivity godoc
// @Summary Recent activity feed
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Max entries" default(10)
// @Success 200 {array} models.ActivityLog
// @Router /dashboard/recent-activity [get]
func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	entries, err := h.service.RecentActivity(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}
