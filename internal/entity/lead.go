package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type ScoreLabel string

const (
	LabelHot         ScoreLabel = "hot"
	LabelWarm        ScoreLabel = "warm"
	LabelCold        ScoreLabel = "cold"
	LabelUnqualified ScoreLabel = "unqualified"
)

func (l ScoreLabel) Valid() bool {
	switch l {
	case LabelHot, LabelWarm, LabelCold, LabelUnqualified:
		return true
	}
	return false
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type ChatMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Lead is the central entity. Score and ScoreLabel are always computed by
// the scoring package, never accepted from a client.
type Lead struct {
	ID         string        `json:"id"`
	Name       string        `json:"name,omitempty"`
	Email      string        `json:"email,omitempty"`
	Company    string        `json:"company,omitempty"`
	Need       string        `json:"need,omitempty"`
	Budget     string        `json:"budget,omitempty"`
	Score      int           `json:"score"`
	ScoreLabel ScoreLabel    `json:"scoreLabel"`
	Transcript []ChatMessage `json:"transcript,omitempty"`
	Notified   bool          `json:"notified"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// EnsureDefaults assigns the server-side identity fields on first save.
// CreatedAt is immutable after that.
func (l *Lead) EnsureDefaults() {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
}

var ErrLeadNotFound = errors.New("lead not found")

// LeadFilter narrows List results. The zero value matches everything.
type LeadFilter struct {
	Label    ScoreLabel
	DateFrom *time.Time // inclusive
	DateTo   *time.Time // inclusive
	Search   string     // case-insensitive substring over name/email/company
}

type LeadRepositoryInterface interface {
	// List returns leads newest-first.
	List(ctx context.Context, filter LeadFilter) ([]*Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	// Upsert assigns ID/CreatedAt when absent, otherwise overwrites the
	// record with the same ID in place.
	Upsert(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, id string) error
}
