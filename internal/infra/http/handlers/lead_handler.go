package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leadqual/internal/entity"
	"github.com/xavierca1/leadqual/internal/infra/http/middleware"
	"github.com/xavierca1/leadqual/internal/usecase"
)

type LeadHandler struct {
	repo   entity.LeadRepositoryInterface
	saveUC *usecase.SaveLeadUseCase
}

func NewLeadHandler(repo entity.LeadRepositoryInterface, saveUC *usecase.SaveLeadUseCase) *LeadHandler {
	return &LeadHandler{repo: repo, saveUC: saveUC}
}

type listLeadsResponse struct {
	Leads []*entity.Lead `json:"leads"`
	Total int            `json:"total"`
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	leads, err := h.repo.List(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list leads")
		return
	}

	respondJSON(w, http.StatusOK, listLeadsResponse{Leads: leads, Total: len(leads)})
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.saveUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordLeadScored(string(lead.ScoreLabel))
	respondJSON(w, http.StatusCreated, map[string]*entity.Lead{"lead": lead})
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.repo.FindByID(r.Context(), id)
	if errors.Is(err, entity.ErrLeadNotFound) {
		respondError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load lead")
		return
	}

	respondJSON(w, http.StatusOK, map[string]*entity.Lead{"lead": lead})
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.repo.Delete(r.Context(), id)
	if errors.Is(err, entity.ErrLeadNotFound) {
		respondError(w, http.StatusNotFound, "Lead not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete lead")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func filterFromQuery(r *http.Request) (entity.LeadFilter, error) {
	filter := entity.LeadFilter{}
	query := r.URL.Query()

	if score := query.Get("score"); score != "" && score != "all" {
		label := entity.ScoreLabel(score)
		if !label.Valid() {
			return filter, errors.New("invalid score filter")
		}
		filter.Label = label
	}

	if dateFrom := query.Get("dateFrom"); dateFrom != "" {
		from, err := time.Parse("2006-01-02", dateFrom)
		if err != nil {
			return filter, errors.New("dateFrom must be YYYY-MM-DD")
		}
		filter.DateFrom = &from
	}

	if dateTo := query.Get("dateTo"); dateTo != "" {
		to, err := time.Parse("2006-01-02", dateTo)
		if err != nil {
			return filter, errors.New("dateTo must be YYYY-MM-DD")
		}
		// Inclusive upper bound: extend to the end of that day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.DateTo = &to
	}

	filter.Search = query.Get("search")

	return filter, nil
}
