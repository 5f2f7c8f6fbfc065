package booking

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts booking routes on an authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/export", h.Export)
	rg.PATCH("/bookings/:id", h.UpdateStatus)
}
