package catalog

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	gyms := r.Group("/gyms")
	{
		gyms.GET("", h.ListGyms)          // GET /api/gyms?type=...&priceRange=...&sort=...
		gyms.GET("/featured", h.Featured) // GET /api/gyms/featured
		gyms.GET("/compare", h.Compare)   // GET /api/gyms/compare?slugs=a,b,c
		gyms.GET("/:slug", h.GetGym)      // GET /api/gyms/:slug
	}

	r.GET("/meta", h.Meta)
}
