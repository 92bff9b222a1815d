package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sjmp-dev/parish-admin-api/internal/service"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
	"github.com/sjmp-dev/parish-admin-api/pkg/response"
)

// AccountHandler serves the staff account settings pages.
type AccountHandler struct {
	service *service.AccountService
}

// NewAccountHandler creates a new handler.
func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{service: svc}
}

// List godoc
// @Summary List staff accounts
// @Tags Staff
// @Produce json
// @Success 200 {array} models.StaffAccount
// @Router /staff [get]
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, accounts)
}

// Get godoc
// @Summary Get one staff account
// @Tags Staff
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} models.StaffAccount
// @Failure 404 {object} map[string]string
// @Router /staff/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	account, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, account)
}

// Update godoc
// @Summary Update a staff account
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param payload body service.AccountUpdateInput true "Fields to update"
// @Success 200 {object} models.StaffAccount
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /staff/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	var input service.AccountUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid account payload"))
		return
	}

	account, err := h.service.Update(c.Request.Context(), c.Param("id"), input, actorFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, account)
}

// SetStatus godoc
// @Summary Activate or deactivate a staff account
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param payload body object true "{isActive}"
// @Success 200 {object} models.StaffAccount
// @Failure 404 {object} map[string]string
// @Router /staff/{id}/status [put]
func (h *AccountHandler) SetStatus(c *gin.Context) {
	var payload struct {
		IsActive *bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsActive == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "isActive is required"))
		return
	}

	account, err := h.service.SetActive(c.Request.Context(), c.Param("id"), *payload.IsActive, actorFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, account)
}

// Delete godoc
// @Summary Delete a staff account
// @Tags Staff
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), actorFromContext(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "account deleted successfully")
}
