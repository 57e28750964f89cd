package usecase

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/xavierca1/leadqual/internal/entity"
)

// Extraction holds the candidate field values the model emitted for one
// turn. Nil pointers mean "nothing extracted for this field" and must never
// clear an existing value on merge.
type Extraction struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Company  *string `json:"company"`
	Need     *string `json:"need"`
	Budget   *string `json:"budget"`
	Complete bool    `json:"complete"`
}

// Merge applies the non-null extracted fields onto the lead. Additive,
// overwrite-on-present: existing values survive null extractions.
func (e Extraction) Merge(lead *entity.Lead) {
	if e.Name != nil && *e.Name != "" {
		lead.Name = *e.Name
	}
	if e.Email != nil && *e.Email != "" {
		lead.Email = *e.Email
	}
	if e.Company != nil && *e.Company != "" {
		lead.Company = *e.Company
	}
	if e.Need != nil && *e.Need != "" {
		lead.Need = *e.Need
	}
	if e.Budget != nil && *e.Budget != "" {
		lead.Budget = *e.Budget
	}
}

var leadBlockPattern = regexp.MustCompile(`(?s)<<<LEAD_DATA>>>(.*?)<<<END_LEAD_DATA>>>`)

// SentinelParser extracts the JSON block the system prompt instructs the
// model to append, wrapped in <<<LEAD_DATA>>> tags.
type SentinelParser struct{}

func NewSentinelParser() *SentinelParser {
	return &SentinelParser{}
}

func (p *SentinelParser) Parse(raw string) (Extraction, bool) {
	match := leadBlockPattern.FindStringSubmatch(raw)
	if match == nil {
		return Extraction{}, false
	}

	var extracted Extraction
	if err := json.Unmarshal([]byte(strings.TrimSpace(match[1])), &extracted); err != nil {
		// Malformed block: continue the conversation with no new fields.
		return Extraction{}, false
	}

	return extracted, true
}

func (p *SentinelParser) Strip(raw string) string {
	return strings.TrimSpace(leadBlockPattern.ReplaceAllString(raw, ""))
}
