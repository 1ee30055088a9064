package generation

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	generationGroup := router.Group("/generation")
	{
		generationGroup.POST("/grounding", h.Grounding)
		generationGroup.POST("/structured", h.Structured)
	}
}
