package playground

import "aistudio-academy/internal/models"

// ImportRequest is a "try this" record. The temperature key is "temp".
type ImportRequest struct {
	Model       string  `json:"model" binding:"required"`
	System      string  `json:"system"`
	Prompt      string  `json:"prompt" binding:"required"`
	Temperature float64 `json:"temp" binding:"gte=0,lte=2"`
}

type RunRequest struct {
	Model  string `json:"model"`
	System string `json:"system"`
	Prompt string `json:"prompt" binding:"required"`
	models.GenerationOverrides
}

type PublishRequest struct {
	Title       string   `json:"title"`
	Model       string   `json:"model"`
	System      string   `json:"system"`
	Prompt      string   `json:"prompt" binding:"required"`
	Output      string   `json:"output" binding:"required"`
	Temperature *float64 `json:"temperature" binding:"omitempty,gte=0,lte=2"`
	TopP        *float64 `json:"topP" binding:"omitempty,gte=0,lte=1"`
	TopK        *int     `json:"topK" binding:"omitempty,gt=0"`
}
