package genai

import (
	"aistudio-academy/config"
	"aistudio-academy/internal/utils"
	"aistudio-academy/pkg/logger"
	"fmt"
)

// NewBackend builds the backend named by cfg.GenAIProvider.
func NewBackend(cfg *config.Config) (Backend, error) {
	httpClient := utils.NewHTTPClient(cfg.GenAITimeout, logger.Named("genai.http"))

	switch cfg.GenAIProvider {
	case "", "gemini":
		baseURL := cfg.GeminiBaseURL
		if baseURL == "" {
			baseURL = "https://generativelanguage.googleapis.com"
		}
		return NewGeminiBackend(baseURL, cfg.APIKey, httpClient), nil
	case "openai":
		return NewOpenAIBackend(cfg.OpenAIBaseURL, cfg.APIKey, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown genai provider %q", cfg.GenAIProvider)
	}
}
