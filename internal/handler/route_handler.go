package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/routemark/service-routes/internal/application"
	"github.com/routemark/service-routes/internal/response"
)

// RouteHandler handles HTTP requests for saved-route operations.
type RouteHandler struct {
	service *application.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service *application.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// RegisterRoutes registers all saved-route routes. Paths match what the map
// client calls, so no /api/v1 prefix here.
func (h *RouteHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/save-route", h.SaveRoute)
	r.GET("/routes", h.ListRoutes)
	r.DELETE("/delete-route/:id", h.DeleteRoute)
}

// SaveRoute handles POST /save-route.
func (h *RouteHandler) SaveRoute(c *gin.Context) {
	var req application.SaveRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.SaveRoute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListRoutes handles GET /routes?userId=.
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	result, err := h.service.ListRoutes(c.Request.Context(), c.Query("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteRoute handles DELETE /delete-route/:id?userId=.
func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid route ID")
		return
	}

	if err := h.service.DeleteRoute(c.Request.Context(), routeID, c.Query("userId")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"msg": "route deleted", "id": routeID})
}
