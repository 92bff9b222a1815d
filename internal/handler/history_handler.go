package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmp-dev/parish-admin-api/internal/service"
	"github.com/sjmp-dev/parish-admin-api/pkg/response"
)

// HistoryHandler serves the parishioner submission history page.
type HistoryHandler struct {
	service *service.HistoryService
}

// NewHistoryHandler creates a new handler.
func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: svc}
}

// ByEmail godoc
// @Summary Submission history for one email
// @Tags History
// @Produce json
// @Param email query string true "Submitter email"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} map[string]string
// @Router /history [get]
func (h *HistoryHandler) ByEmail(c *gin.Context) {
	history, err := h.service.ByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, history)
}
