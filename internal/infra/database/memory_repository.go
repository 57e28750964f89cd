package database

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xavierca1/leadqual/internal/entity"
)

// MemoryLeadRepository backs the API when no DATABASE_URL is configured
// (demos, tests). Same contract as the Postgres repository; every operation
// holds the lock for its whole duration, so reads never observe a
// half-applied write.
type MemoryLeadRepository struct {
	mu    sync.RWMutex
	leads map[string]*entity.Lead
}

func NewMemoryLeadRepository() *MemoryLeadRepository {
	return &MemoryLeadRepository{leads: make(map[string]*entity.Lead)}
}

func (r *MemoryLeadRepository) Upsert(_ context.Context, lead *entity.Lead) error {
	lead.EnsureDefaults()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneLead(lead)
	r.leads[stored.ID] = stored
	return nil
}

func (r *MemoryLeadRepository) FindByID(_ context.Context, id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lead, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	return cloneLead(lead), nil
}

func (r *MemoryLeadRepository) List(_ context.Context, filter entity.LeadFilter) ([]*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leads := []*entity.Lead{}
	for _, lead := range r.leads {
		if matchesFilter(lead, filter) {
			leads = append(leads, cloneLead(lead))
		}
	}

	sort.Slice(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})

	return leads, nil
}

func (r *MemoryLeadRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.leads[id]; !ok {
		return entity.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

func matchesFilter(lead *entity.Lead, filter entity.LeadFilter) bool {
	if filter.Label != "" && lead.ScoreLabel != filter.Label {
		return false
	}
	if filter.DateFrom != nil && lead.CreatedAt.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && lead.CreatedAt.After(*filter.DateTo) {
		return false
	}
	if filter.Search != "" {
		q := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(lead.Name), q) &&
			!strings.Contains(strings.ToLower(lead.Email), q) &&
			!strings.Contains(strings.ToLower(lead.Company), q) {
			return false
		}
	}
	return true
}

func cloneLead(lead *entity.Lead) *entity.Lead {
	clone := *lead
	if lead.Transcript != nil {
		clone.Transcript = make([]entity.ChatMessage, len(lead.Transcript))
		copy(clone.Transcript, lead.Transcript)
	}
	return &clone
}

// SeedDemoLeads loads the demo dataset used when running without a real
// database.
func (r *MemoryLeadRepository) SeedDemoLeads() {
	now := time.Now().UTC()
	demos := []*entity.Lead{
		{
			ID:         "demo-1",
			Name:       "Sarah Johnson",
			Email:      "sarah@techstartup.com",
			Company:    "TechStartup Inc",
			Need:       "Build a SaaS dashboard with real-time analytics",
			Budget:     "$15,000",
			Score:      85,
			ScoreLabel: entity.LabelHot,
			Notified:   true,
			CreatedAt:  now.AddDate(0, 0, -1),
			Transcript: []entity.ChatMessage{
				{Role: entity.RoleAssistant, Content: "Hi! What are you looking to build?"},
				{Role: entity.RoleUser, Content: "We need a real-time analytics dashboard for our SaaS product."},
				{Role: entity.RoleAssistant, Content: "Sounds great! What's your budget range?"},
				{Role: entity.RoleUser, Content: "We have around $15,000 allocated."},
			},
		},
		{
			ID:         "demo-2",
			Name:       "Mike Chen",
			Email:      "mike@agency.io",
			Company:    "Agency.io",
			Need:       "E-commerce redesign with checkout optimization",
			Budget:     "$5,000",
			Score:      55,
			ScoreLabel: entity.LabelWarm,
			CreatedAt:  now.AddDate(0, 0, -2),
			Transcript: []entity.ChatMessage{
				{Role: entity.RoleAssistant, Content: "Hello! What project can I help with?"},
				{Role: entity.RoleUser, Content: "Need to redesign our e-commerce site."},
			},
		},
		{
			ID:         "demo-3",
			Name:       "Emma Wilson",
			Email:      "emma@local.com",
			Company:    "Local Coffee Shop",
			Need:       "Simple website",
			Budget:     "$500",
			Score:      20,
			ScoreLabel: entity.LabelCold,
			CreatedAt:  now.AddDate(0, 0, -3),
			Transcript: []entity.ChatMessage{
				{Role: entity.RoleAssistant, Content: "Hi! What are you looking for?"},
				{Role: entity.RoleUser, Content: "Just a basic site for my coffee shop."},
			},
		},
		{
			ID:         "demo-4",
			Name:       "Alex Rivera",
			Email:      "alex@enterprise.com",
			Company:    "Enterprise Corp",
			Need:       "Custom CRM integration with Salesforce",
			Budget:     "$50,000",
			Score:      95,
			ScoreLabel: entity.LabelHot,
			Notified:   true,
			CreatedAt:  now.AddDate(0, 0, -4),
			Transcript: []entity.ChatMessage{
				{Role: entity.RoleAssistant, Content: "Hello! What are you building?"},
				{Role: entity.RoleUser, Content: "We need a custom CRM integration with Salesforce. Budget is $50k."},
			},
		},
		{
			ID:         "demo-5",
			Name:       "Jordan Lee",
			Email:      "jordan@fintech.co",
			Company:    "FinTech Solutions",
			Need:       "Mobile banking app MVP",
			Budget:     "$25,000",
			Score:      80,
			ScoreLabel: entity.LabelHot,
			CreatedAt:  now.AddDate(0, 0, -5),
			Transcript: []entity.ChatMessage{
				{Role: entity.RoleAssistant, Content: "Hi there! What can we help you build?"},
				{Role: entity.RoleUser, Content: "Looking to build a fintech mobile app, around $25k budget."},
			},
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, lead := range demos {
		r.leads[lead.ID] = lead
	}
}
