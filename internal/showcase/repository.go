// Package showcase keeps the community project collection: newest project first,
// comments oldest first. The collection is always read and written as a whole.
package showcase

import (
	"aistudio-academy/internal/models"
	"context"
	"sync"
)

// CollectionKey names the persisted collection slot.
const CollectionKey = "ai_studio_projects"

// Repository persists the whole collection. Save replaces everything that was
// stored before. Load reports persisted=false when nothing was ever saved.
type Repository interface {
	Load(ctx context.Context) (projects []models.Project, persisted bool, err error)
	Save(ctx context.Context, projects []models.Project) error
}

// MemoryRepository keeps the collection in process memory.
type MemoryRepository struct {
	mu        sync.RWMutex
	projects  []models.Project
	persisted bool
	saves     int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(_ context.Context) ([]models.Project, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.persisted {
		return nil, false, nil
	}
	return models.CloneProjects(r.projects), true, nil
}

func (r *MemoryRepository) Save(_ context.Context, projects []models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.projects = models.CloneProjects(projects)
	r.persisted = true
	r.saves++
	return nil
}

// Saves counts Save calls.
func (r *MemoryRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}
