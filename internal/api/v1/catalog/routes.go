package catalog

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	catalogGroup := router.Group("/catalog")
	{
		catalogGroup.GET("/models", GetModels)
		catalogGroup.GET("/sections", GetSections)
	}
}
