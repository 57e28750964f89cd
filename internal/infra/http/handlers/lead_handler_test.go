package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leadqual/internal/entity"
	"github.com/xavierca1/leadqual/internal/infra/database"
	"github.com/xavierca1/leadqual/internal/usecase"
)

func leadRouter(repo entity.LeadRepositoryInterface) *chi.Mux {
	handler := NewLeadHandler(repo, usecase.NewSaveLeadUseCase(repo, nil))

	router := chi.NewRouter()
	router.Get("/api/leads", handler.List)
	router.Post("/api/leads", handler.Create)
	router.Get("/api/leads/{id}", handler.Get)
	router.Delete("/api/leads/{id}", handler.Delete)
	return router
}

func TestCreateLeadReturnsScoredLead(t *testing.T) {
	router := leadRouter(database.NewMemoryLeadRepository())

	body := []byte(`{"name":"Jordan Lee","email":"jordan@fintech.co","company":"FinTech Solutions","budget":"$25,000","score":1}`)
	req := httptest.NewRequest("POST", "/api/leads", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response struct {
		Lead entity.Lead `json:"lead"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Lead.ID)
	// Score comes from the server, not the request body.
	assert.Equal(t, 90, response.Lead.Score)
	assert.Equal(t, entity.LabelHot, response.Lead.ScoreLabel)
}

func TestCreateLeadInvalidJSON(t *testing.T) {
	router := leadRouter(database.NewMemoryLeadRepository())

	req := httptest.NewRequest("POST", "/api/leads", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON")
}

func TestGetLeadNotFound(t *testing.T) {
	router := leadRouter(database.NewMemoryLeadRepository())

	req := httptest.NewRequest("GET", "/api/leads/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lead not found")
}

func TestGetLead(t *testing.T) {
	repo := database.NewMemoryLeadRepository()
	lead := &entity.Lead{Name: "Alice", Email: "alice@acme.com"}
	assert.NoError(t, repo.Upsert(context.Background(), lead))

	router := leadRouter(repo)

	req := httptest.NewRequest("GET", "/api/leads/"+lead.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Lead entity.Lead `json:"lead"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "alice@acme.com", response.Lead.Email)
}

func TestDeleteLead(t *testing.T) {
	repo := database.NewMemoryLeadRepository()
	lead := &entity.Lead{Email: "a@b.com"}
	assert.NoError(t, repo.Upsert(context.Background(), lead))

	router := leadRouter(repo)

	req := httptest.NewRequest("DELETE", "/api/leads/"+lead.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	_, err := repo.FindByID(context.Background(), lead.ID)
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestDeleteLeadNotFound(t *testing.T) {
	router := leadRouter(database.NewMemoryLeadRepository())

	req := httptest.NewRequest("DELETE", "/api/leads/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListLeadsWithFilters(t *testing.T) {
	repo := database.NewMemoryLeadRepository()
	ctx := context.Background()
	now := time.Now().UTC()

	assert.NoError(t, repo.Upsert(ctx, &entity.Lead{
		ID: "l1", Name: "Sarah Johnson", ScoreLabel: entity.LabelHot, CreatedAt: now,
	}))
	assert.NoError(t, repo.Upsert(ctx, &entity.Lead{
		ID: "l2", Name: "Mike Chen", ScoreLabel: entity.LabelWarm, CreatedAt: now.AddDate(0, 0, -10),
	}))

	router := leadRouter(repo)

	tests := map[string]struct {
		query   string
		wantIDs []string
	}{
		"no filter":     {"", []string{"l1", "l2"}},
		"score all":     {"?score=all", []string{"l1", "l2"}},
		"score hot":     {"?score=hot", []string{"l1"}},
		"search":        {"?search=mike", []string{"l2"}},
		"date from":     {"?dateFrom=" + now.AddDate(0, 0, -5).Format("2006-01-02"), []string{"l1"}},
		"date to today": {"?dateTo=" + now.Format("2006-01-02"), []string{"l1", "l2"}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/leads"+tc.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)

			var response listLeadsResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, len(tc.wantIDs), response.Total)

			ids := make([]string, 0, len(response.Leads))
			for _, lead := range response.Leads {
				ids = append(ids, lead.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestListLeadsInvalidScoreFilter(t *testing.T) {
	router := leadRouter(database.NewMemoryLeadRepository())

	req := httptest.NewRequest("GET", "/api/leads?score=blazing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListLeadsInvalidDate(t *testing.T) {
	router := leadRouter(database.NewMemoryLeadRepository())

	req := httptest.NewRequest("GET", "/api/leads?dateFrom=last-tuesday", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
