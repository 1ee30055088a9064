package showcase

import (
	"aistudio-academy/internal/idgen"
	"aistudio-academy/internal/models"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, NewGormRepository(db).Migrate())
	return db
}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

// repositories runs the same behaviour against every backend.
func repositories(t *testing.T) map[string]func(t *testing.T) Repository {
	return map[string]func(t *testing.T) Repository{
		"memory": func(t *testing.T) Repository { return NewMemoryRepository() },
		"redis": func(t *testing.T) Repository {
			_, client := setupTestRedis(t)
			return NewRedisRepository(client)
		},
		"gorm": func(t *testing.T) Repository { return NewGormRepository(setupTestDB(t)) },
	}
}

// sequence hands out "1", "2", ... so tests can predict ids.
type sequence struct{ n int }

func (s *sequence) NewID() string {
	s.n++
	return fmt.Sprint(s.n)
}

var _ idgen.Generator = (*sequence)(nil)

func validProject(title string) models.NewProject {
	return models.NewProject{
		Title:       title,
		Author:      "Иван",
		Description: "Описание",
		Model:       "gemini-3-flash-preview",
		Config:      models.GenerationOverrides{Temperature: models.Float64(0.5), TopP: models.Float64(0.9), TopK: models.Int(40)},
		Prompt:      "Промпт",
		Output:      "Ответ",
		Tags:        "AI, Code,  UI",
	}
}

func TestLoad_ReturnsSeedWithoutPersisting(t *testing.T) {
	ctx := context.Background()
	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			store := NewStore(repo)

			seed, err := Seed()
			require.NoError(t, err)

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, seed, got)

			_, persisted, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.False(t, persisted, "seed must not be written back by a read")

			// A later unrelated save persists exactly what it was given.
			single := []models.Project{{ID: "x", Title: "Only", Tags: []string{}, Comments: []models.Comment{}}}
			require.NoError(t, store.Save(ctx, single))

			got, err = store.Load(ctx)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "x", got[0].ID)
		})
	}
}

func TestSave_EmptyCollectionIsNotSeed(t *testing.T) {
	ctx := context.Background()
	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			store := NewStore(newRepo(t))
			require.NoError(t, store.Save(ctx, []models.Project{}))

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestAddProject_PrependsAndParsesTags(t *testing.T) {
	ctx := context.Background()
	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			store := NewStore(newRepo(t), WithIDGenerator(&sequence{}))
			require.NoError(t, store.Save(ctx, []models.Project{}))

			p1, err := store.AddProject(ctx, validProject("P1"))
			require.NoError(t, err)
			assert.Equal(t, []string{"AI", "Code", "UI"}, p1.Tags)
			assert.Empty(t, p1.Comments)
			assert.NotNil(t, p1.Comments)

			_, err = store.AddProject(ctx, validProject("P2"))
			require.NoError(t, err)

			got, err := store.Load(ctx)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "P2", got[0].Title)
			assert.Equal(t, "P1", got[1].Title)
			assert.Equal(t, []string{"AI", "Code", "UI"}, got[1].Tags)
			assert.Equal(t, models.GenerationConfig{Temperature: 0.5, TopP: 0.9, TopK: 40}, got[1].Config)
		})
	}
}

func TestAddProject_OnTopOfSeed(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryRepository(), WithIDGenerator(&sequence{n: 1000}))

	seed, err := Seed()
	require.NoError(t, err)

	_, err = store.AddProject(ctx, validProject("New"))
	require.NoError(t, err)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(seed)+1)
	assert.Equal(t, "New", got[0].Title)
	assert.Equal(t, seed, got[1:])
}

func TestAddProject_EmptyConfigUsesShowcaseDefaults(t *testing.T) {
	store := NewStore(NewMemoryRepository())
	in := validProject("P")
	in.Config = models.GenerationOverrides{}

	p, err := store.AddProject(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, models.ShowcaseDefaults(), p.Config)
}

func TestAddProject_PartialConfigFillsFromShowcaseDefaults(t *testing.T) {
	tests := []struct {
		name   string
		config models.GenerationOverrides
		want   models.GenerationConfig
	}{
		{"temperature only", models.GenerationOverrides{Temperature: models.Float64(0.3)},
			models.GenerationConfig{Temperature: 0.3, TopP: 0.9, TopK: 40}},
		{"explicit zero temperature", models.GenerationOverrides{Temperature: models.Float64(0)},
			models.GenerationConfig{Temperature: 0, TopP: 0.9, TopK: 40}},
		{"topK only", models.GenerationOverrides{TopK: models.Int(8)},
			models.GenerationConfig{Temperature: 0.7, TopP: 0.9, TopK: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(NewMemoryRepository())
			in := validProject("P")
			in.Config = tt.config

			p, err := store.AddProject(context.Background(), in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Config)
		})
	}
}

func TestAddProject_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*models.NewProject)
	}{
		{"missing title", func(p *models.NewProject) { p.Title = "" }},
		{"blank author", func(p *models.NewProject) { p.Author = "   " }},
		{"missing description", func(p *models.NewProject) { p.Description = "" }},
		{"missing model", func(p *models.NewProject) { p.Model = "" }},
		{"missing prompt", func(p *models.NewProject) { p.Prompt = "" }},
		{"missing output", func(p *models.NewProject) { p.Output = "" }},
		{"temperature out of range", func(p *models.NewProject) { p.Config.Temperature = models.Float64(2.5) }},
		{"topK not positive", func(p *models.NewProject) { p.Config.TopK = models.Int(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMemoryRepository()
			store := NewStore(repo)

			in := validProject("P")
			tt.modify(&in)

			_, err := store.AddProject(context.Background(), in)
			assert.True(t, errors.Is(err, ErrInvalidProject), "got %v", err)
			assert.Equal(t, 0, repo.Saves())
		})
	}
}

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"AI", "Code", "UI"}, ParseTags("AI, Code,  UI"))
	assert.Equal(t, []string{"AI", "Code"}, ParseTags("AI,,Code"))
	assert.Equal(t, []string{}, ParseTags(""))
	assert.Equal(t, []string{}, ParseTags(" , ,"))
}

func TestAddComment_AppendsInOrder(t *testing.T) {
	ctx := context.Background()
	moscow := time.FixedZone("MSK", 3*60*60)
	// 22:30 UTC is already the next day in Moscow.
	clock := func() time.Time { return time.Date(2025, 3, 8, 22, 30, 0, 0, time.UTC) }

	for name, newRepo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			store := NewStore(newRepo(t),
				WithIDGenerator(&sequence{}),
				WithClock(clock),
				WithLocation(moscow),
			)
			p, err := store.AddProject(ctx, validProject("P"))
			require.NoError(t, err)

			first, err := store.AddComment(ctx, p.ID, "первый", "Ольга")
			require.NoError(t, err)
			require.NotNil(t, first)
			assert.Equal(t, "Ольга", first.Author)
			assert.Equal(t, "09.03.2025", first.Date)

			second, err := store.AddComment(ctx, p.ID, "hi", "")
			require.NoError(t, err)
			require.NotNil(t, second)
			assert.Equal(t, models.AnonymousAuthor, second.Author)
			assert.NotEqual(t, first.ID, second.ID)

			got, err := store.Get(ctx, p.ID)
			require.NoError(t, err)
			require.Len(t, got.Comments, 2)
			assert.Equal(t, "первый", got.Comments[0].Text)
			assert.Equal(t, "hi", got.Comments[1].Text)
			assert.Equal(t, *second, got.Comments[1])
		})
	}
}

func TestAddComment_UnknownProjectWritesNothing(t *testing.T) {
	ctx := context.Background()

	t.Run("redis blob unchanged", func(t *testing.T) {
		mr, client := setupTestRedis(t)
		store := NewStore(NewRedisRepository(client))

		_, err := store.AddProject(ctx, validProject("P"))
		require.NoError(t, err)
		before, err := mr.Get(CollectionKey)
		require.NoError(t, err)

		c, err := store.AddComment(ctx, "does-not-exist", "hi", "")
		require.NoError(t, err)
		assert.Nil(t, c)

		after, err := mr.Get(CollectionKey)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("seed stays unpersisted", func(t *testing.T) {
		repo := NewMemoryRepository()
		store := NewStore(repo)

		c, err := store.AddComment(ctx, "does-not-exist", "hi", "")
		require.NoError(t, err)
		assert.Nil(t, c)
		assert.Equal(t, 0, repo.Saves())
	})
}

func TestGet_NotFound(t *testing.T) {
	store := NewStore(NewMemoryRepository())
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestList_FiltersByTag(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryRepository(), WithIDGenerator(&sequence{}))
	require.NoError(t, store.Save(ctx, []models.Project{}))

	a := validProject("A")
	a.Tags = "Go, Code"
	b := validProject("B")
	b.Tags = "Creative"
	c := validProject("C")
	c.Tags = "code"
	for _, in := range []models.NewProject{a, b, c} {
		_, err := store.AddProject(ctx, in)
		require.NoError(t, err)
	}

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	coded, err := store.List(ctx, "CODE")
	require.NoError(t, err)
	require.Len(t, coded, 2)
	assert.Equal(t, "C", coded[0].Title)
	assert.Equal(t, "A", coded[1].Title)

	none, err := store.List(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTimestampIDs(t *testing.T) {
	at := time.UnixMilli(1714557600123)
	store := NewStore(NewMemoryRepository(), WithIDGenerator(idgen.Timestamp{Now: func() time.Time { return at }}))

	p, err := store.AddProject(context.Background(), validProject("P"))
	require.NoError(t, err)
	assert.Equal(t, "1714557600123", p.ID)
}

func TestRedisRepository_BlobFormat(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := NewRedisRepository(client)

	require.NoError(t, repo.Save(context.Background(), []models.Project{{
		ID: "1", Title: "T", Tags: []string{"a"}, Comments: []models.Comment{},
		Config: models.GenerationConfig{Temperature: 0.7, TopP: 0.9, TopK: 40},
	}}))

	raw, err := mr.Get(CollectionKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"id":"1","title":"T","author":"","description":"","model":"",
		"config":{"temperature":0.7,"topP":0.9,"topK":40},
		"prompt":"","output":"","tags":["a"],"comments":[]
	}]`, raw)
}
