package showcase_test

import (
	showcaseapi "aistudio-academy/internal/api/v1/showcase"
	"aistudio-academy/internal/handoff"
	"aistudio-academy/internal/middleware"
	"aistudio-academy/internal/models"
	"aistudio-academy/internal/services"
	"aistudio-academy/internal/showcase"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router   *gin.Engine
	repo     *showcase.MemoryRepository
	channels *handoff.Channels
}

func setup(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := showcase.NewMemoryRepository()
	require.NoError(t, repo.Save(context.Background(), []models.Project{{
		ID: "p1", Title: "Первый", Author: "Анна", Description: "d", Model: "m",
		Config: models.ShowcaseDefaults(), Prompt: "Объясни *Go*", Output: "**Go** — язык",
		Tags: []string{"Go", "Код"}, Comments: []models.Comment{},
	}}))

	channels := handoff.NewChannels(handoff.NewMemoryMailbox(0))
	svc := services.NewShowcaseService(showcase.NewStore(repo), channels)

	r := gin.New()
	r.Use(middleware.Session())
	showcaseapi.RegisterRoutes(r.Group("/api/v1"), showcaseapi.NewHandler(svc))
	return fixture{router: r, repo: repo, channels: channels}
}

func (f fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, "s1")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestListProjects(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/api/v1/showcase/projects?tag=go", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "p1", resp.Data[0].ID)

	w = f.do(http.MethodGet, "/api/v1/showcase/projects?tag=python", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func TestGetProject(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/api/v1/showcase/projects/p1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "p1", resp.Data["id"])
	assert.Contains(t, resp.Data["promptHtml"], "<em>Go</em>")
	assert.Contains(t, resp.Data["outputHtml"], "<strong>Go</strong>")

	w = f.do(http.MethodGet, "/api/v1/showcase/projects/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProject(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/api/v1/showcase/projects", map[string]any{
		"title": "Новый", "author": "Пётр", "description": "d", "model": "gemini-3-flash-preview",
		"config": map[string]any{"temperature": 0.3, "topP": 0.8, "topK": 20},
		"prompt": "p", "output": "o", "tags": "AI,,Code",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"AI", "Code"}, resp.Data.Tags)

	projects, _, err := f.repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Новый", projects[0].Title)
	assert.Equal(t, "p1", projects[1].ID)
}

func TestCreateProject_PartialConfig(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/api/v1/showcase/projects", map[string]any{
		"title": "t", "author": "a", "description": "d", "model": "m", "prompt": "p", "output": "o",
		"config": map[string]any{"temperature": 0.3},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.GenerationConfig{Temperature: 0.3, TopP: 0.9, TopK: 40}, resp.Data.Config)
}

func TestCreateProject_Validation(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/api/v1/showcase/projects", map[string]any{"title": "only title"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, "/api/v1/showcase/projects", map[string]any{
		"title": "t", "author": "a", "description": "d", "model": "m", "prompt": "p", "output": "o",
		"config": map[string]any{"temperature": 5, "topP": 0.9, "topK": 40},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, f.repo.Saves())
}

func TestAddComment(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/api/v1/showcase/projects/p1/comments", map[string]any{"text": "hi"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Comment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.AnonymousAuthor, resp.Data.Author)
	assert.Equal(t, "hi", resp.Data.Text)
}

func TestAddComment_UnknownProject(t *testing.T) {
	f := setup(t)
	savesBefore := f.repo.Saves()

	w := f.do(http.MethodPost, "/api/v1/showcase/projects/ghost/comments", map[string]any{"text": "hi", "author": "x"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data *models.Comment `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data)
	assert.Equal(t, savesBefore, f.repo.Saves())
}

func TestGetDraft(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.channels.ShowcaseDraft.Write(context.Background(), "s1", models.ShowcaseDraft{
		Title: "Черновик", Model: "gemini-3-pro-preview", Prompt: "Hi", Output: "Hello",
		Config: models.GenerationConfig{Temperature: 0.7, TopP: 0.9, TopK: 40},
	}))

	w := f.do(http.MethodGet, "/api/v1/showcase/draft", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data services.ShowcaseForm `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Open)
	assert.Equal(t, "Черновик", resp.Data.Form.Title)
	assert.Equal(t, "gemini-3-pro-preview", resp.Data.Form.Model)

	w = f.do(http.MethodGet, "/api/v1/showcase/draft", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Open)
}
