package generation

import (
	"aistudio-academy/internal/genai"
	"aistudio-academy/internal/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the tutorial demos that call the model with a fixed preset.
type Handler struct {
	client *genai.Client
}

func NewHandler(client *genai.Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) providerError(c *gin.Context, err error) {
	if errors.Is(err, genai.ErrUnsupported) {
		c.JSON(http.StatusNotImplemented, utils.NewErrorResponse(http.StatusNotImplemented, err.Error()))
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, utils.ProviderErrorMessage(err)))
}

// Grounding godoc
// @Summary Answer with search grounding
// @Description Runs the prompt with the search tool enabled and returns the answer with its web sources
// @Tags generation
// @Accept json
// @Produce json
// @Param request body GroundingRequest true "Grounding Request"
// @Success 200 {object} utils.Response{data=genai.Response}
// @Failure 400 {object} utils.Response
// @Failure 501 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /generation/grounding [post]
func (h *Handler) Grounding(c *gin.Context) {
	var req GroundingRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	resp, err := h.client.RunGroundingSearch(c.Request.Context(), req.Prompt)
	if err != nil {
		h.providerError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Grounded answer generated successfully", resp))
}

// Structured godoc
// @Summary Answer as schema-typed JSON
// @Description Asks for JSON matching the schema and reports whether the answer validates
// @Tags generation
// @Accept json
// @Produce json
// @Param request body StructuredRequest true "Structured Request"
// @Success 200 {object} utils.Response{data=genai.StructuredResult}
// @Failure 400 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /generation/structured [post]
func (h *Handler) Structured(c *gin.Context) {
	var req StructuredRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result, err := h.client.RunStructuredOutput(c.Request.Context(), req.Prompt, req.Schema)
	if err != nil {
		h.providerError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Structured answer generated successfully", result))
}
