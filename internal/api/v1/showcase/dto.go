package showcase

import "aistudio-academy/internal/models"

// CreateProjectRequest is the creation form. Tags is comma-separated text and
// config values left out fall back to the showcase defaults.
type CreateProjectRequest struct {
	Title             string                     `json:"title" binding:"required"`
	Author            string                     `json:"author" binding:"required"`
	Description       string                     `json:"description" binding:"required"`
	Model             string                     `json:"model" binding:"required"`
	Config            models.GenerationOverrides `json:"config"`
	SystemInstruction string                     `json:"systemInstruction"`
	Prompt            string                     `json:"prompt" binding:"required"`
	Output            string                     `json:"output" binding:"required"`
	Tags              string                     `json:"tags"`
}

type AddCommentRequest struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author"`
}
