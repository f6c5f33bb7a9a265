package handlers

import (
	"net/http"

	"homeconnect/models"
	"homeconnect/services/matching"
	"homeconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MatchingHandler exposes the provider recommendation endpoint.
type MatchingHandler struct {
	Service matching.Service
	Logger  *zap.Logger
}

func NewMatchingHandler(svc matching.Service, logger *zap.Logger) *MatchingHandler {
	return &MatchingHandler{Service: svc, Logger: logger}
}

// RecommendProviders handles POST /api/matching/recommend.
func (h *MatchingHandler) RecommendProviders(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resp, err := h.Service.RecommendProviders(c.Request.Context(), req)
	if err != nil {
		status, message := matchErrorStatus(err)
		utils.JSONError(c, status, message, err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// matchErrorStatus maps typed matching errors onto HTTP statuses. Internal
// causes are logged upstream and never echoed verbatim.
func matchErrorStatus(err error) (int, string) {
	switch matching.CodeOf(err) {
	case matching.CodeInvalidArgument:
		return http.StatusBadRequest, "invalid request"
	case matching.CodeUnauthenticated:
		return http.StatusUnauthorized, "authentication required"
	default:
		return http.StatusInternalServerError, "failed to retrieve service providers data"
	}
}
