package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/xavierca1/leadqual/internal/entity"
)

// LeadRepository is the Postgres-backed store. Each operation is a single
// statement, so upsert/delete/list are individually atomic.
type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	lead.EnsureDefaults()

	transcript, err := json.Marshal(lead.Transcript)
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}

	// created_at is deliberately absent from the UPDATE set: immutable
	// after first save.
	query := `
		INSERT INTO leads (id, name, email, company, need, budget, score, score_label, transcript, notified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			company = EXCLUDED.company,
			need = EXCLUDED.need,
			budget = EXCLUDED.budget,
			score = EXCLUDED.score,
			score_label = EXCLUDED.score_label,
			transcript = EXCLUDED.transcript,
			notified = EXCLUDED.notified
	`

	_, err = r.DB.ExecContext(
		ctx,
		query,
		lead.ID,
		nullString(lead.Name),
		nullString(lead.Email),
		nullString(lead.Company),
		nullString(lead.Need),
		nullString(lead.Budget),
		lead.Score,
		string(lead.ScoreLabel),
		transcript,
		lead.Notified,
		lead.CreatedAt,
	)

	return err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, name, email, company, need, budget, score, score_label, transcript, notified, created_at
		FROM leads
		WHERE id = $1
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) List(ctx context.Context, filter entity.LeadFilter) ([]*entity.Lead, error) {
	query := `
		SELECT id, name, email, company, need, budget, score, score_label, transcript, notified, created_at
		FROM leads
	`

	conditions := []string{}
	args := []interface{}{}

	if filter.Label != "" {
		args = append(args, string(filter.Label))
		conditions = append(conditions, fmt.Sprintf("score_label = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR email ILIKE $%d OR company ILIKE $%d)", n, n, n))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var name, email, company, need, budget sql.NullString
	var label string
	var transcript []byte

	err := row.Scan(
		&lead.ID,
		&name,
		&email,
		&company,
		&need,
		&budget,
		&lead.Score,
		&label,
		&transcript,
		&lead.Notified,
		&lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Name = name.String
	lead.Email = email.String
	lead.Company = company.String
	lead.Need = need.String
	lead.Budget = budget.String
	lead.ScoreLabel = entity.ScoreLabel(label)

	if len(transcript) > 0 {
		if err := json.Unmarshal(transcript, &lead.Transcript); err != nil {
			return nil, fmt.Errorf("failed to decode transcript for lead %s: %w", lead.ID, err)
		}
	}

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
