package services

import (
	"aistudio-academy/internal/handoff"
	"aistudio-academy/internal/models"
	"aistudio-academy/internal/render"
	"aistudio-academy/internal/showcase"
	"context"
)

// ShowcaseForm is the state of the creation form when the showcase opens.
type ShowcaseForm struct {
	Open bool               `json:"open"`
	Form models.ProjectForm `json:"form"`
}

// ProjectDetail is a project with its prompt and output rendered as HTML.
type ProjectDetail struct {
	models.Project
	PromptHTML string `json:"promptHtml"`
	OutputHTML string `json:"outputHtml"`
}

type ShowcaseService struct {
	store  *showcase.Store
	drafts *handoff.Channel[models.ShowcaseDraft]
}

func NewShowcaseService(store *showcase.Store, channels *handoff.Channels) *ShowcaseService {
	return &ShowcaseService{store: store, drafts: channels.ShowcaseDraft}
}

func emptyShowcaseForm() models.ProjectForm {
	return models.ProjectForm{
		Model:  models.DefaultModelID(),
		Config: models.ShowcaseDefaults(),
	}
}

// OpenForm consumes the session's pending draft. With a draft the form opens
// pre-filled; without one it stays closed with defaults.
func (s *ShowcaseService) OpenForm(ctx context.Context, session string) (ShowcaseForm, error) {
	draft, ok, err := s.drafts.ReadAndClear(ctx, session)
	if err != nil {
		return ShowcaseForm{}, err
	}
	if !ok {
		return ShowcaseForm{Form: emptyShowcaseForm()}, nil
	}

	form := emptyShowcaseForm()
	form.Title = draft.Title
	form.SystemInstruction = draft.SystemInstruction
	form.Prompt = draft.Prompt
	form.Output = draft.Output
	if draft.Model != "" {
		form.Model = draft.Model
	}
	if draft.Config != (models.GenerationConfig{}) {
		form.Config = draft.Config
	}
	return ShowcaseForm{Open: true, Form: form}, nil
}

func (s *ShowcaseService) List(ctx context.Context, tag string) ([]models.Project, error) {
	return s.store.List(ctx, tag)
}

func (s *ShowcaseService) Detail(ctx context.Context, id string) (*ProjectDetail, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	promptHTML, err := render.MarkdownToHTML(p.Prompt)
	if err != nil {
		return nil, err
	}
	outputHTML, err := render.MarkdownToHTML(p.Output)
	if err != nil {
		return nil, err
	}
	return &ProjectDetail{Project: p, PromptHTML: promptHTML, OutputHTML: outputHTML}, nil
}

func (s *ShowcaseService) Create(ctx context.Context, in models.NewProject) (models.Project, error) {
	return s.store.AddProject(ctx, in)
}

// Comment returns nil without error when the project does not exist.
func (s *ShowcaseService) Comment(ctx context.Context, projectID, text, author string) (*models.Comment, error) {
	return s.store.AddComment(ctx, projectID, text, author)
}
