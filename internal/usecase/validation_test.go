package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/leadqual/internal/entity"
)

func TestSanitizeExistingLeadDropsServerFields(t *testing.T) {
	sanitized := SanitizeExistingLead(&entity.Lead{
		ID:         "chosen-id",
		Name:       "Alice",
		Email:      "a@b.com",
		Score:      99,
		ScoreLabel: entity.LabelHot,
		Notified:   true,
	})

	assert.Empty(t, sanitized.ID)
	assert.Zero(t, sanitized.Score)
	assert.Empty(t, sanitized.ScoreLabel)
	assert.False(t, sanitized.Notified)
	assert.Equal(t, "Alice", sanitized.Name)
	assert.Equal(t, "a@b.com", sanitized.Email)
}

func TestSanitizeExistingLeadNil(t *testing.T) {
	sanitized := SanitizeExistingLead(nil)
	assert.NotNil(t, sanitized)
	assert.Empty(t, sanitized.Email)
}

func TestSanitizeExistingLeadCapsLengths(t *testing.T) {
	sanitized := SanitizeExistingLead(&entity.Lead{
		Name:   strings.Repeat("n", 300),
		Email:  strings.Repeat("e", 300),
		Need:   strings.Repeat("x", 2000),
		Budget: strings.Repeat("b", 300),
	})

	assert.Len(t, sanitized.Name, 200)
	assert.Len(t, sanitized.Email, 254)
	assert.Len(t, sanitized.Need, 1000)
	assert.Len(t, sanitized.Budget, 100)
}

func TestValidateCreateLeadInput(t *testing.T) {
	assert.Empty(t, ValidateCreateLeadInput(CreateLeadInput{Name: "Alice", Email: "a@b.com"}))

	errs := ValidateCreateLeadInput(CreateLeadInput{Need: strings.Repeat("x", 1001)})
	assert.Len(t, errs, 1)
	assert.Equal(t, "need", errs[0].Field)
}
