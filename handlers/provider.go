package handlers

import (
	"net/http"

	"homeconnect/models"
	"homeconnect/services/provider"
	"homeconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler exposes provider lifecycle endpoints.
type ProviderHandler struct {
	Service provider.ProviderService
	Logger  *zap.Logger
}

func NewProviderHandler(svc provider.ProviderService, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Service: svc, Logger: logger}
}

// RegisterProviderHandler handles POST /api/providers/register.
func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	var reg models.ProviderRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid registration payload", err.Error())
		return
	}

	prov, err := h.Service.RegisterProvider(reg)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "failed to register provider", err.Error())
		return
	}
	c.JSON(http.StatusCreated, prov)
}

// AuthenticateProviderHandler handles POST /api/providers/login.
func (h *ProviderHandler) AuthenticateProviderHandler(c *gin.Context) {
	var creds struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid credentials payload", err.Error())
		return
	}

	result, err := h.Service.AuthenticateProvider(creds.Email, creds.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProviderByIDHandler handles GET /api/providers/id/:id.
func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	id := c.Param("id")
	prov, err := h.Service.GetProviderByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "provider not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, prov)
}

// UpdateProviderHandler handles PATCH /api/providers/update/:id.
func (h *ProviderHandler) UpdateProviderHandler(c *gin.Context) {
	id := c.Param("id")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid update payload", err.Error())
		return
	}

	prov, err := h.Service.UpdateProvider(id, updates)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, prov)
}

// DeleteProviderHandler handles DELETE /api/providers/delete/:id.
func (h *ProviderHandler) DeleteProviderHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteProvider(id); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to delete provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
