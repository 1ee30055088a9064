package generation

type GroundingRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type StructuredRequest struct {
	Prompt string         `json:"prompt" binding:"required"`
	Schema map[string]any `json:"schema" binding:"required"`
}
