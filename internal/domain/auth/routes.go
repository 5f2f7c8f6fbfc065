package auth

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the auth endpoints. extra runs before each handler (rate limiting).
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, extra ...gin.HandlerFunc) {
	authGroup := rg.Group("/auth", extra...)
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
	}
}
