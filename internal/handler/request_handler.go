package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmp-dev/parish-admin-api/internal/service"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
	"github.com/sjmp-dev/parish-admin-api/pkg/response"
)

// RequestHandler serves the shared CRUD surface for one request type. One
// instance is mounted per registry entry; the bound service carries the
// type-specific behavior.
type RequestHandler struct {
	service *service.RequestService
	metrics *service.MetricsService
}

// NewRequestHandler creates a new handler. metrics may be nil.
func NewRequestHandler(svc *service.RequestService, metrics *service.MetricsService) *RequestHandler {
	return &RequestHandler{service: svc, metrics: metrics}
}

// Create godoc
// @Summary Submit a request
// @Description Validates the intake payload and files a new pending request
// @Tags Requests
// @Accept json
// @Produce json
// @Param payload body map[string]interface{} true "Intake payload"
// @Success 201 {object} models.SacramentRequest
// @Failure 400 {object} map[string]string
// @Router /{requestType} [post]
func (h *RequestHandler) Create(c *gin.Context) {
	payload := map[string]interface{}{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid request payload"))
		return
	}

	req, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.ObserveIntake(req.RequestType)
	response.Created(c, req)
}

// List godoc
// @Summary List requests
// @Description Returns every request of this type, newest first
// @Tags Requests
// @Produce json
// @Success 200 {array} models.SacramentRequest
// @Router /{requestType} [get]
func (h *RequestHandler) List(c *gin.Context) {
	requests, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

// Get godoc
// @Summary Get one request
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} models.SacramentRequest
// @Failure 404 {object} map[string]string
// @Router /{requestType}/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	req, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, req)
}

// Update godoc
// @Summary Update a request
// @Description Applies a partial edit; status changes go through the lifecycle rules
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body map[string]interface{} true "Fields to update"
// @Success 200 {object} models.SacramentRequest
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /{requestType}/{id} [put]
func (h *RequestHandler) Update(c *gin.Context) {
	payload := map[string]interface{}{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid request payload"))
		return
	}

	req, err := h.service.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, req)
}

// UpdatePayment godoc
// @Summary Record a payment
// @Tags Requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param payload body map[string]interface{} true "Payment fields"
// @Success 200 {object} models.SacramentRequest
// @Failure 404 {object} map[string]string
// @Router /{requestType}/{id}/payment [put]
func (h *RequestHandler) UpdatePayment(c *gin.Context) {
	payload := map[string]interface{}{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payment payload"))
		return
	}

	req, err := h.service.UpdatePayment(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, req)
}

// Delete godoc
// @Summary Delete a request
// @Tags Requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /{requestType}/{id} [delete]
func (h *RequestHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), actorFromContext(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "request deleted successfully")
}
