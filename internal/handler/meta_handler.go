package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/routemark/service-routes/internal/application"
	"github.com/routemark/service-routes/internal/domain"
	"github.com/routemark/service-routes/internal/response"
)

// MetaHandler serves the maps-key proxy and the anonymous identifier issuer.
type MetaHandler struct {
	identity *application.IdentityService
	mapsKey  string
}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler(identity *application.IdentityService, mapsKey string) *MetaHandler {
	return &MetaHandler{identity: identity, mapsKey: mapsKey}
}

// RegisterRoutes registers the meta routes.
func (h *MetaHandler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/google-key", h.GoogleKey)
		api.GET("/user-id", h.UserID)
	}
}

// GoogleKey handles GET /api/google-key. The key is handed to the browser so
// it can load the maps SDK; the server never calls the maps API itself.
func (h *MetaHandler) GoogleKey(c *gin.Context) {
	if h.mapsKey == "" {
		response.Error(c, domain.NewConfigurationError("maps API key is not configured"))
		return
	}
	response.Success(c, gin.H{"key": h.mapsKey})
}

// UserID handles GET /api/user-id.
func (h *MetaHandler) UserID(c *gin.Context) {
	response.Success(c, gin.H{"userId": h.identity.Issue()})
}

// NotFound is the catch-all for unmatched routes.
func NotFound(c *gin.Context) {
	response.NotFound(c, "not found")
}
