package services

import (
	"aistudio-academy/internal/genai"
	"aistudio-academy/internal/handoff"
	"aistudio-academy/internal/models"
	"aistudio-academy/pkg/logger"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

const (
	DefaultPlaygroundSystem      = "Ты — эксперт по ИИ. Твои ответы должны быть краткими и технически точными."
	DefaultPlaygroundTemperature = 0.7

	// EmptyAnswerText replaces a successful but empty model answer.
	EmptyAnswerText = "Ответ от модели не получен."
	// DraftTitlePlaceholder titles drafts published from the playground.
	DraftTitlePlaceholder = "Мой эксперимент из песочницы"
)

var (
	ErrEmptyPrompt      = errors.New("prompt is empty")
	ErrRunInFlight      = errors.New("a run is already in progress for this session")
	ErrNothingToPublish = errors.New("nothing to publish: prompt and output are required")
)

// PlaygroundState is what the playground shows when it opens.
type PlaygroundState struct {
	Model       string  `json:"model"`
	System      string  `json:"system"`
	Prompt      string  `json:"prompt"`
	Temperature float64 `json:"temperature"`
	Imported    bool    `json:"imported"`
}

type RunInput struct {
	Model     string
	System    string
	Prompt    string
	Overrides models.GenerationOverrides
}

type RunResult struct {
	Text   string                  `json:"text"`
	Model  string                  `json:"model"`
	Config models.GenerationConfig `json:"config"`
	Usage  genai.Usage             `json:"usage"`
}

type PublishInput struct {
	Title       string
	Model       string
	System      string
	Prompt      string
	Output      string
	Temperature *float64
	TopP        *float64
	TopK        *int
}

// PlaygroundService drives the playground: opening with an imported draft,
// running prompts and publishing results to the showcase.
type PlaygroundService struct {
	client   *genai.Client
	channels *handoff.Channels
	guard    *InflightGuard
	log      *zap.Logger
}

func NewPlaygroundService(client *genai.Client, channels *handoff.Channels) *PlaygroundService {
	return &PlaygroundService{
		client:   client,
		channels: channels,
		guard:    &InflightGuard{},
		log:      logger.Named("playground"),
	}
}

func defaultPlaygroundState() PlaygroundState {
	return PlaygroundState{
		Model:       models.DefaultModelID(),
		System:      DefaultPlaygroundSystem,
		Temperature: DefaultPlaygroundTemperature,
	}
}

// Open consumes a pending import for the session. Without one the built-in
// defaults are returned.
func (s *PlaygroundService) Open(ctx context.Context, session string) (PlaygroundState, error) {
	imp, ok, err := s.channels.PlaygroundImport.ReadAndClear(ctx, session)
	if err != nil {
		return PlaygroundState{}, err
	}
	if !ok {
		return defaultPlaygroundState(), nil
	}

	state := PlaygroundState{
		Model:       imp.Model,
		System:      imp.System,
		Prompt:      imp.Prompt,
		Temperature: imp.Temperature,
		Imported:    true,
	}
	if state.Model == "" {
		state.Model = models.DefaultModelID()
	}
	return state, nil
}

// Import stores a "try this" record for the session's next Open.
func (s *PlaygroundService) Import(ctx context.Context, session string, imp models.PlaygroundImport) error {
	return s.channels.PlaygroundImport.Write(ctx, session, imp)
}

// Run sends the prompt. A session runs one prompt at a time; a second call
// while the first is pending fails with ErrRunInFlight. Provider errors are
// returned unchanged.
func (s *PlaygroundService) Run(ctx context.Context, session string, in RunInput) (*RunResult, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	if in.Model == "" {
		in.Model = models.DefaultModelID()
	}

	if !s.guard.Acquire(session) {
		s.log.Warn("rejected concurrent run", zap.String("session", session))
		return nil, ErrRunInFlight
	}
	defer s.guard.Release(session)

	resp, err := s.client.RunPrompt(ctx, in.Model, in.Prompt, in.System, &in.Overrides)
	if err != nil {
		return nil, err
	}

	text := resp.Text
	if text == "" {
		text = EmptyAnswerText
	}
	return &RunResult{
		Text:   text,
		Model:  in.Model,
		Config: models.Merge(models.DirectCallDefaults(), &in.Overrides),
		Usage:  resp.Usage,
	}, nil
}

// Publish hands the playground result to the showcase form. Missing topP and
// topK come from the showcase defaults.
func (s *PlaygroundService) Publish(ctx context.Context, session string, in PublishInput) (models.ShowcaseDraft, error) {
	if strings.TrimSpace(in.Prompt) == "" || strings.TrimSpace(in.Output) == "" {
		return models.ShowcaseDraft{}, ErrNothingToPublish
	}

	title := in.Title
	if strings.TrimSpace(title) == "" {
		title = DraftTitlePlaceholder
	}
	model := in.Model
	if model == "" {
		model = models.DefaultModelID()
	}

	draft := models.ShowcaseDraft{
		Title:             title,
		Model:             model,
		SystemInstruction: in.System,
		Prompt:            in.Prompt,
		Output:            in.Output,
		Config: models.Merge(models.ShowcaseDefaults(), &models.GenerationOverrides{
			Temperature: in.Temperature,
			TopP:        in.TopP,
			TopK:        in.TopK,
		}),
	}
	if err := s.channels.ShowcaseDraft.Write(ctx, session, draft); err != nil {
		return models.ShowcaseDraft{}, err
	}
	return draft, nil
}
