package playground

import (
	"aistudio-academy/internal/middleware"
	"aistudio-academy/internal/models"
	"aistudio-academy/internal/services"
	"aistudio-academy/internal/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *services.PlaygroundService
}

func NewHandler(svc *services.PlaygroundService) *Handler {
	return &Handler{svc: svc}
}

// GetSession godoc
// @Summary Open the playground
// @Description Returns the pending imported draft for this session and clears it, or the built-in defaults
// @Tags playground
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Success 200 {object} utils.Response{data=services.PlaygroundState}
// @Failure 500 {object} utils.Response
// @Router /playground/session [get]
func (h *Handler) GetSession(c *gin.Context) {
	state, err := h.svc.Open(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to read draft"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Playground state retrieved successfully", state))
}

// Import godoc
// @Summary Send a prompt to the playground
// @Description Stores a "try this" record that the next playground open consumes. Replaces any unread record.
// @Tags playground
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param request body ImportRequest true "Import Request"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response{data=utils.ValidationErrorData}
// @Failure 500 {object} utils.Response
// @Router /playground/import [post]
func (h *Handler) Import(c *gin.Context) {
	var req ImportRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	err := h.svc.Import(c.Request.Context(), middleware.SessionID(c), models.PlaygroundImport{
		Model:       req.Model,
		System:      req.System,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store draft"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Draft stored successfully", nil))
}

// Run godoc
// @Summary Run a prompt
// @Description Sends the prompt to the model. One run per session at a time.
// @Tags playground
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param request body RunRequest true "Run Request"
// @Success 200 {object} utils.Response{data=services.RunResult}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /playground/run [post]
func (h *Handler) Run(c *gin.Context) {
	var req RunRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result, err := h.svc.Run(c.Request.Context(), middleware.SessionID(c), services.RunInput{
		Model:     req.Model,
		System:    req.System,
		Prompt:    req.Prompt,
		Overrides: req.GenerationOverrides,
	})
	switch {
	case errors.Is(err, services.ErrEmptyPrompt):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	case errors.Is(err, services.ErrRunInFlight):
		c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, err.Error()))
		return
	case err != nil:
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, utils.ProviderErrorMessage(err)))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt completed successfully", result))
}

// Publish godoc
// @Summary Publish a result to the showcase
// @Description Stores a draft that pre-fills the showcase creation form on its next open
// @Tags playground
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browser session id"
// @Param request body PublishRequest true "Publish Request"
// @Success 200 {object} utils.Response{data=models.ShowcaseDraft}
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /playground/publish [post]
func (h *Handler) Publish(c *gin.Context) {
	var req PublishRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	draft, err := h.svc.Publish(c.Request.Context(), middleware.SessionID(c), services.PublishInput{
		Title:       req.Title,
		Model:       req.Model,
		System:      req.System,
		Prompt:      req.Prompt,
		Output:      req.Output,
		Temperature: req.Temperature,
		TopP:        req.TopP,
		TopK:        req.TopK,
	})
	if errors.Is(err, services.ErrNothingToPublish) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to store draft"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Draft published successfully", draft))
}
