package catalog

import (
	"aistudio-academy/internal/models"
	"aistudio-academy/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetModels godoc
// @Summary List selectable models
// @Description Models offered by the playground and the showcase form; the first one is the default
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.ModelOption}
// @Router /catalog/models [get]
func GetModels(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Models retrieved successfully", models.ModelOptions))
}

// GetSections godoc
// @Summary List tutorial sections
// @Description Navigable sections of the academy with their front-end routes
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.Response{data=[]models.TutorialSection}
// @Router /catalog/sections [get]
func GetSections(c *gin.Context) {
	sections := make([]models.TutorialSection, len(models.TutorialSections))
	for i, s := range models.TutorialSections {
		s.Route = models.SectionRoute(s.ID)
		sections[i] = s
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Sections retrieved successfully", sections))
}
