package showcase

import (
	"aistudio-academy/internal/idgen"
	"aistudio-academy/internal/metrics"
	"aistudio-academy/internal/models"
	"aistudio-academy/pkg/logger"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrInvalidProject  = errors.New("invalid project")
	ErrProjectNotFound = errors.New("project not found")
)

// Store implements the showcase operations on top of a Repository. Every
// mutation reads the current collection, changes a copy and writes it back.
// The mutex serializes that sequence within one process only; two processes
// sharing a backend still race and the last writer wins.
type Store struct {
	repo Repository
	ids  idgen.Generator
	now  func() time.Time
	loc  *time.Location
	log  *zap.Logger

	mu sync.Mutex
}

type Option func(*Store)

func WithIDGenerator(g idgen.Generator) Option {
	return func(s *Store) { s.ids = g }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the timezone comment dates are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

func NewStore(repo Repository, opts ...Option) *Store {
	s := &Store{
		repo: repo,
		ids:  idgen.Timestamp{},
		now:  time.Now,
		loc:  time.Local,
		log:  logger.Named("showcase"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the persisted collection, or the seed when nothing was saved
// yet. The seed is not written back.
func (s *Store) Load(ctx context.Context) ([]models.Project, error) {
	projects, persisted, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !persisted {
		return Seed()
	}
	return projects, nil
}

// Save replaces the whole persisted collection.
func (s *Store) Save(ctx context.Context, projects []models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, "replace", projects)
}

func (s *Store) save(ctx context.Context, kind string, projects []models.Project) error {
	if err := s.repo.Save(ctx, projects); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	metrics.ShowcaseWrites.WithLabelValues(kind).Inc()
	return nil
}

// AddProject validates the form, prepends the new project and persists the
// collection.
func (s *Store) AddProject(ctx context.Context, in models.NewProject) (models.Project, error) {
	if err := validateNewProject(in); err != nil {
		return models.Project{}, err
	}

	cfg := models.Merge(models.ShowcaseDefaults(), &in.Config)
	if err := cfg.Validate(); err != nil {
		return models.Project{}, fmt.Errorf("%w: %v", ErrInvalidProject, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.Load(ctx)
	if err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		ID:                s.ids.NewID(),
		Title:             in.Title,
		Author:            in.Author,
		Description:       in.Description,
		Model:             in.Model,
		Config:            cfg,
		SystemInstruction: in.SystemInstruction,
		Prompt:            in.Prompt,
		Output:            in.Output,
		Tags:              ParseTags(in.Tags),
		Comments:          []models.Comment{},
	}

	updated := make([]models.Project, 0, len(projects)+1)
	updated = append(updated, project)
	updated = append(updated, projects...)

	if err := s.save(ctx, "project", updated); err != nil {
		return models.Project{}, err
	}

	s.log.Info("project added", zap.String("project_id", project.ID), zap.Strings("tags", project.Tags))
	return project.Clone(), nil
}

// AddComment appends a comment to projectID. An unknown id returns (nil, nil)
// and nothing is written.
func (s *Store) AddComment(ctx context.Context, projectID, text, author string) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexOf(projects, projectID)
	if idx < 0 {
		s.log.Debug("comment for unknown project ignored", zap.String("project_id", projectID))
		return nil, nil
	}

	if strings.TrimSpace(author) == "" {
		author = models.AnonymousAuthor
	}
	comment := models.Comment{
		ID:     s.ids.NewID(),
		Author: author,
		Text:   text,
		Date:   s.now().In(s.loc).Format(models.CommentDateLayout),
	}

	updated := models.CloneProjects(projects)
	updated[idx].Comments = append(updated[idx].Comments, comment)

	if err := s.save(ctx, "comment", updated); err != nil {
		return nil, err
	}
	return &comment, nil
}

// Get returns the first project with id.
func (s *Store) Get(ctx context.Context, id string) (models.Project, error) {
	projects, err := s.Load(ctx)
	if err != nil {
		return models.Project{}, err
	}
	idx := indexOf(projects, id)
	if idx < 0 {
		return models.Project{}, ErrProjectNotFound
	}
	return projects[idx], nil
}

// List returns the collection in stored order, optionally only the projects
// carrying tag (case-insensitive).
func (s *Store) List(ctx context.Context, tag string) ([]models.Project, error) {
	projects, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	tag = strings.TrimSpace(tag)
	if tag == "" {
		return projects, nil
	}

	filtered := []models.Project{}
	for _, p := range projects {
		if hasTag(p, tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func indexOf(projects []models.Project, id string) int {
	for i := range projects {
		if projects[i].ID == id {
			return i
		}
	}
	return -1
}

func hasTag(p models.Project, tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

func validateNewProject(in models.NewProject) error {
	required := []struct{ name, value string }{
		{"title", in.Title},
		{"author", in.Author},
		{"description", in.Description},
		{"model", in.Model},
		{"prompt", in.Prompt},
		{"output", in.Output},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidProject, strings.Join(missing, ", "))
	}
	return nil
}
