package showcase

import (
	"aistudio-academy/internal/middleware"
	"aistudio-academy/internal/models"
	"aistudio-academy/internal/services"
	showcasestore "aistudio-academy/internal/showcase"
	"aistudio-academy/internal/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *services.ShowcaseService
}

func NewHandler(svc *services.ShowcaseService) *Handler {
	return &Handler{svc: svc}
}

// GetDraft godoc
// @Summary Open the showcase creation form
// @Description Consumes the draft published from the playground. With a draft the form is open and pre-filled.
// @Tags showcase
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Success 200 {object} utils.Response{data=services.ShowcaseForm}
// @Failure 500 {object} utils.Response
// @Router /showcase/draft [get]
func (h *Handler) GetDraft(c *gin.Context) {
	form, err := h.svc.OpenForm(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to read draft"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Form retrieved successfully", form))
}

// ListProjects godoc
// @Summary List showcase projects
// @Description Newest first. Optional case-insensitive tag filter.
// @Tags showcase
// @Produce json
// @Param tag query string false "Tag"
// @Success 200 {object} utils.Response{data=[]models.Project}
// @Failure 500 {object} utils.Response
// @Router /showcase/projects [get]
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context(), c.Query("tag"))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load projects"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Projects retrieved successfully", projects))
}

// GetProject godoc
// @Summary Get a project
// @Description Project with its comments and the prompt and output rendered from markdown
// @Tags showcase
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} utils.Response{data=services.ProjectDetail}
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /showcase/projects/{id} [get]
func (h *Handler) GetProject(c *gin.Context) {
	detail, err := h.svc.Detail(c.Request.Context(), c.Param("id"))
	if errors.Is(err, showcasestore.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Project not found"))
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load project"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Project retrieved successfully", detail))
}

// CreateProject godoc
// @Summary Publish a project
// @Description Adds the project at the top of the showcase
// @Tags showcase
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "Create Project Request"
// @Success 201 {object} utils.Response{data=models.Project}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /showcase/projects [post]
func (h *Handler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	project, err := h.svc.Create(c.Request.Context(), models.NewProject{
		Title:             req.Title,
		Author:            req.Author,
		Description:       req.Description,
		Model:             req.Model,
		Config:            req.Config,
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.Prompt,
		Output:            req.Output,
		Tags:              req.Tags,
	})
	if errors.Is(err, showcasestore.ErrInvalidProject) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save project"))
		return
	}
	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Project created successfully", project))
}

// AddComment godoc
// @Summary Comment on a project
// @Description Appends a comment. A blank author becomes "Аноним". An unknown project is ignored and data is null.
// @Tags showcase
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body AddCommentRequest true "Add Comment Request"
// @Success 200 {object} utils.Response{data=models.Comment}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /showcase/projects/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	comment, err := h.svc.Comment(c.Request.Context(), c.Param("id"), req.Text, req.Author)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save comment"))
		return
	}
	if comment == nil {
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Project not found, comment ignored", nil))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Comment added successfully", comment))
}
