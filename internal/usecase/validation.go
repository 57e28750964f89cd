package usecase

import "github.com/xavierca1/leadqual/internal/entity"

// Per-field length caps for client-supplied lead text.
const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxCompanyLen = 200
	maxNeedLen    = 1000
	maxBudgetLen  = 100
)

// SanitizeExistingLead keeps only the user-facing text fields from a
// client-supplied lead, each length-capped. Score, label, notified and id
// are server-computed and never trusted from the request body.
func SanitizeExistingLead(lead *entity.Lead) *entity.Lead {
	sanitized := &entity.Lead{}
	if lead == nil {
		return sanitized
	}

	sanitized.Name = truncate(lead.Name, maxNameLen)
	sanitized.Email = truncate(lead.Email, maxEmailLen)
	sanitized.Company = truncate(lead.Company, maxCompanyLen)
	sanitized.Need = truncate(lead.Need, maxNeedLen)
	sanitized.Budget = truncate(lead.Budget, maxBudgetLen)

	return sanitized
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if len(input.Name) > maxNameLen {
		errors = append(errors, ValidationError{"name", "must not exceed 200 characters"})
	}
	if len(input.Email) > maxEmailLen {
		errors = append(errors, ValidationError{"email", "must not exceed 254 characters"})
	}
	if len(input.Company) > maxCompanyLen {
		errors = append(errors, ValidationError{"company", "must not exceed 200 characters"})
	}
	if len(input.Need) > maxNeedLen {
		errors = append(errors, ValidationError{"need", "must not exceed 1000 characters"})
	}
	if len(input.Budget) > maxBudgetLen {
		errors = append(errors, ValidationError{"budget", "must not exceed 100 characters"})
	}

	return errors
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
