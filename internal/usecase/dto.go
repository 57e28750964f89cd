package usecase

import (
	"github.com/xavierca1/leadqual/internal/entity"
	"github.com/xavierca1/leadqual/internal/scoring"
)

type ChatTurnInput struct {
	Messages  []entity.ChatMessage `json:"messages"`
	SessionID string               `json:"sessionId"`

	// ExistingLead carries the fields extracted so far in this session.
	// Only the user-facing text fields are trusted; score, label, notified
	// and id are recomputed server-side.
	ExistingLead *entity.Lead `json:"existingLead,omitempty"`
}

type ChatTurnOutput struct {
	Content  string          `json:"content"`
	LeadData *entity.Lead    `json:"leadData"`
	Complete bool            `json:"complete"`
	Scoring  *scoring.Result `json:"scoring,omitempty"`
	LeadID   string          `json:"leadId,omitempty"`
}

type CreateLeadInput struct {
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Company    string               `json:"company"`
	Need       string               `json:"need"`
	Budget     string               `json:"budget"`
	Transcript []entity.ChatMessage `json:"transcript,omitempty"`
}

type DashboardMetrics struct {
	TotalLeads     int         `json:"totalLeads"`
	HotLeads       int         `json:"hotLeads"`
	WarmLeads      int         `json:"warmLeads"`
	ColdLeads      int         `json:"coldLeads"`
	ConversionRate int         `json:"conversionRate"`
	AverageScore   int         `json:"averageScore"`
	LeadsPerDay    []DayBucket `json:"leadsPerDay"`
}

type DayBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Hot   int    `json:"hot"`
	Warm  int    `json:"warm"`
	Cold  int    `json:"cold"`
}
