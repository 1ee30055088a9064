package showcase

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	showcaseGroup := router.Group("/showcase")
	{
		showcaseGroup.GET("/draft", h.GetDraft)
		showcaseGroup.GET("/projects", h.ListProjects)
		showcaseGroup.POST("/projects", h.CreateProject)
		showcaseGroup.GET("/projects/:id", h.GetProject)
		showcaseGroup.POST("/projects/:id/comments", h.AddComment)
	}
}
