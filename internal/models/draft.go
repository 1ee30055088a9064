package models

// PlaygroundImport is the "try this" record handed to the playground.
// JSON keys match the slot format {model, system, prompt, temp}.
type PlaygroundImport struct {
	Model       string  `json:"model"`
	System      string  `json:"system,omitempty"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temp"`
}

// ShowcaseDraft is the record the playground's publish action hands to the showcase.
type ShowcaseDraft struct {
	Title             string           `json:"title"`
	Model             string           `json:"model"`
	SystemInstruction string           `json:"systemInstruction,omitempty"`
	Prompt            string           `json:"prompt"`
	Output            string           `json:"output"`
	Config            GenerationConfig `json:"config"`
}
