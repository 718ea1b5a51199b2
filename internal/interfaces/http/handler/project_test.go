package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appproject "github.com/devtrack/backend/internal/application/project"
	"github.com/devtrack/backend/internal/domain/project"
	"github.com/devtrack/backend/internal/domain/shared"
	"github.com/devtrack/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProjectRepository backs handler tests with a single in-memory project
type stubProjectRepository struct {
	stored    *project.Project
	lastDelta map[string]any
}

func (r *stubProjectRepository) FindByID(_ context.Context, id uuid.UUID) (*project.Project, error) {
	if r.stored == nil || r.stored.ID != id {
		return nil, shared.ErrNotFound
	}
	copied := *r.stored
	return &copied, nil
}

func (r *stubProjectRepository) FindAll(_ context.Context, _ shared.Filter) ([]project.Project, error) {
	if r.stored == nil {
		return nil, nil
	}
	return []project.Project{*r.stored}, nil
}

func (r *stubProjectRepository) Count(_ context.Context, _ shared.Filter) (int64, error) {
	if r.stored == nil {
		return 0, nil
	}
	return 1, nil
}

func (r *stubProjectRepository) Create(_ context.Context, p *project.Project) error {
	r.stored = p
	return nil
}

func (r *stubProjectRepository) UpdateFields(_ context.Context, id uuid.UUID, delta map[string]any) error {
	if r.stored == nil || r.stored.ID != id {
		return shared.ErrNotFound
	}
	r.lastDelta = delta
	return nil
}

func (r *stubProjectRepository) Touch(_ context.Context, id uuid.UUID, at time.Time) error {
	if r.stored == nil || r.stored.ID != id {
		return shared.ErrNotFound
	}
	r.stored.LastUpdatedAt = at
	return nil
}

func newSectionTestRouter(t *testing.T) (*gin.Engine, *stubProjectRepository, uuid.UUID) {
	t.Helper()

	p, err := project.NewProject("Hanger Lane Tower", "HLT-001", "", "Ealing", "W5 1HG")
	require.NoError(t, err)
	p.LastUpdatedAt = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	repo := &stubProjectRepository{stored: p}
	clock := &shared.FixedClock{Instant: time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)}

	projectService := appproject.NewProjectService(repo, nil, nil, clock, 0)
	sectionService := appproject.NewSectionUpdateService(repo, clock)

	router := gin.New()
	api := router.Group("/api/v1")
	NewProjectHandler(projectService, sectionService).RegisterRoutes(api)

	return router, repo, p.ID
}

func TestProjectHandler_UpdateSection(t *testing.T) {
	t.Run("commits recognised fields and reports them", func(t *testing.T) {
		router, repo, projectID := newSectionTestRouter(t)

		body := `{"landlord_name": "Crown Estates", "probability": 60, "ignored_key": true}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/projects/"+projectID.String()+"/sections/commercial", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Section       string   `json:"section"`
				UpdatedFields []string `json:"updated_fields"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "commercial", resp.Data.Section)
		assert.ElementsMatch(t, []string{"landlord_name", "probability"}, resp.Data.UpdatedFields)

		require.NotNil(t, repo.lastDelta)
		assert.Contains(t, repo.lastDelta, "last_updated_at")
	})

	t.Run("validation failures return 400 with every field message", func(t *testing.T) {
		router, repo, projectID := newSectionTestRouter(t)

		body := `{"probability": 150, "offer_agreed_date": "not-a-date"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/projects/"+projectID.String()+"/sections/commercial", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Len(t, resp.Error.Fields, 2)
		assert.Nil(t, repo.lastDelta)
	})

	t.Run("unknown section returns 404", func(t *testing.T) {
		router, _, projectID := newSectionTestRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/projects/"+projectID.String()+"/sections/finance", strings.NewReader(`{"x": 1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "UNKNOWN_SECTION", resp.Error.Code)
	})

	t.Run("missing project returns 404 before payload problems", func(t *testing.T) {
		router, _, _ := newSectionTestRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/api/v1/projects/"+uuid.NewString()+"/sections/commercial", strings.NewReader(`{"probability": 150}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})
}

func TestProjectHandler_GetStage(t *testing.T) {
	router, repo, projectID := newSectionTestRouter(t)
	repo.stored.DesignSignedOff = project.SignOffYes

	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/stage", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Stage string `json:"stage"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "design", resp.Data.Stage)
}

func TestProjectHandler_Create(t *testing.T) {
	router, _, _ := newSectionTestRouter(t)

	t.Run("creates a project in the survey stage", func(t *testing.T) {
		body := `{"name": "A40 Gable End", "site_code": "A40-001", "town": "Acton"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Data struct {
				Name  string `json:"name"`
				Stage string `json:"stage"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "A40 Gable End", resp.Data.Name)
		assert.Equal(t, "survey", resp.Data.Stage)
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", strings.NewReader(`{"town": "Acton"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
