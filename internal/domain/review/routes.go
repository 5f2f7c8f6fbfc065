package review

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	// Public routes (no auth required)
	if public != nil {
		public.GET("/reviews", h.List)
	}

	// Protected routes (auth required)
	if protected != nil {
		protected.POST("/reviews", h.Create)
		protected.DELETE("/reviews/:id", h.Delete)
		protected.POST("/reviews/:id/helpful", h.ToggleHelpful)
		protected.POST("/reviews/:id/report", h.Report)
	}
}
