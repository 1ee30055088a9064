package generation_test

import (
	"aistudio-academy/internal/api/v1/generation"
	"aistudio-academy/internal/genai"
	"aistudio-academy/internal/utils"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	resp *genai.Response
	err  error
	last genai.Request
}

func (s *stubBackend) Generate(_ context.Context, req genai.Request) (*genai.Response, error) {
	s.last = req
	return s.resp, s.err
}

func setupRouter(backend genai.Backend) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	generation.RegisterRoutes(r.Group("/api/v1"), generation.NewHandler(genai.NewClient(backend)))
	return r
}

func post(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGrounding(t *testing.T) {
	backend := &stubBackend{resp: &genai.Response{
		Text:    "Ответ",
		Sources: []genai.Source{{URI: "https://example.com", Title: "Example"}},
	}}
	r := setupRouter(backend)

	w := post(r, "/api/v1/generation/grounding", map[string]any{"prompt": "Новости Go"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, backend.last.Grounding)
	assert.Equal(t, genai.FixedDemoModel, backend.last.Model)

	var resp struct {
		Data genai.Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ответ", resp.Data.Text)
	assert.Len(t, resp.Data.Sources, 1)
}

func TestGrounding_Unsupported(t *testing.T) {
	r := setupRouter(&stubBackend{err: genai.ErrUnsupported})

	w := post(r, "/api/v1/generation/grounding", map[string]any{"prompt": "q"})
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestStructured(t *testing.T) {
	backend := &stubBackend{resp: &genai.Response{Text: `{"name":"Борщ"}`}}
	r := setupRouter(backend)

	w := post(r, "/api/v1/generation/structured", map[string]any{
		"prompt": "Рецепт",
		"schema": map[string]any{
			"type":       "OBJECT",
			"properties": map[string]any{"name": map[string]any{"type": "STRING"}},
			"required":   []string{"name"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", backend.last.ResponseMIMEType)

	var resp struct {
		Data genai.StructuredResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Valid)
}

func TestStructured_ProviderError(t *testing.T) {
	r := setupRouter(&stubBackend{err: errors.New("model overloaded")})

	w := post(r, "/api/v1/generation/structured", map[string]any{
		"prompt": "Рецепт", "schema": map[string]any{"type": "OBJECT"},
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "model overloaded", resp.Message)
}

func TestStructured_MissingSchema(t *testing.T) {
	r := setupRouter(&stubBackend{})

	w := post(r, "/api/v1/generation/structured", map[string]any{"prompt": "Рецепт"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
