package playground

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	playgroundGroup := router.Group("/playground")
	{
		playgroundGroup.GET("/session", h.GetSession)
		playgroundGroup.POST("/import", h.Import)
		playgroundGroup.POST("/run", h.Run)
		playgroundGroup.POST("/publish", h.Publish)
	}
}
