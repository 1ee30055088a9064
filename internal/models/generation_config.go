package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// GenerationConfig holds the sampling parameters sent with every generation request.
type GenerationConfig struct {
	Temperature float64 `json:"temperature" yaml:"temperature" validate:"gte=0,lte=2"`
	TopP        float64 `json:"topP" yaml:"topP" validate:"gte=0,lte=1"`
	TopK        int     `json:"topK" yaml:"topK" validate:"gt=0"`
}

// DirectCallDefaults are the provider baselines applied to playground and API calls.
func DirectCallDefaults() GenerationConfig {
	return GenerationConfig{Temperature: 1, TopP: 0.95, TopK: 40}
}

// ShowcaseDefaults seed the showcase creation form and drafts published from the playground.
// They intentionally differ from DirectCallDefaults.
func ShowcaseDefaults() GenerationConfig {
	return GenerationConfig{Temperature: 0.7, TopP: 0.9, TopK: 40}
}

var configValidator = validator.New()

// Validate checks the sampling ranges: temperature [0,2], topP [0,1], topK > 0.
func (g GenerationConfig) Validate() error {
	if err := configValidator.Struct(g); err != nil {
		return fmt.Errorf("invalid generation config: %w", err)
	}
	return nil
}

// GenerationOverrides is a partial GenerationConfig. Nil fields fall back to
// whichever default policy the caller merges against.
type GenerationOverrides struct {
	Temperature     *float64 `json:"temperature,omitempty" binding:"omitempty,gte=0,lte=2"`
	TopP            *float64 `json:"topP,omitempty" binding:"omitempty,gte=0,lte=1"`
	TopK            *int     `json:"topK,omitempty" binding:"omitempty,gt=0"`
	MaxOutputTokens *int     `json:"maxOutputTokens,omitempty" binding:"omitempty,gt=0"`
	StopSequences   []string `json:"stopSequences,omitempty"`
}

// Merge returns defaults with every explicitly set override applied.
func Merge(defaults GenerationConfig, o *GenerationOverrides) GenerationConfig {
	merged := defaults
	if o == nil {
		return merged
	}
	if o.Temperature != nil {
		merged.Temperature = *o.Temperature
	}
	if o.TopP != nil {
		merged.TopP = *o.TopP
	}
	if o.TopK != nil {
		merged.TopK = *o.TopK
	}
	return merged
}

// Float64 and Int are small helpers for building overrides.
func Float64(v float64) *float64 { return &v }

func Int(v int) *int { return &v }
