package scoring

import (
	"strings"

	"github.com/xavierca1/leadqual/internal/entity"
)

// Result carries the computed score, its label and the human-readable
// reasons in rule-evaluation order.
type Result struct {
	Score   int               `json:"score"`
	Label   entity.ScoreLabel `json:"label"`
	Reasons []string          `json:"reasons"`
}

var urgencyKeywords = []string{
	"asap", "urgent", "immediately", "this week", "this month",
	"soon", "quickly", "fast", "now", "today",
}

// ScoreLead converts a partial lead into {score, label, reasons}. Pure and
// total: any input, including an empty lead, yields a defined result.
func ScoreLead(lead *entity.Lead) Result {
	score := 0
	reasons := []string{}

	if lead.Email != "" && strings.Contains(lead.Email, "@") {
		score += 20
		reasons = append(reasons, "Contact email provided (+20)")
	}

	if len(lead.Name) > 1 {
		score += 10
		reasons = append(reasons, "Name provided (+10)")
	}

	if len(lead.Company) > 1 {
		score += 15
		reasons = append(reasons, "Company identified (+15)")
	}

	if len(lead.Need) > 20 {
		score += 10
		reasons = append(reasons, "Clear project need (+10)")
	}

	// Exactly one budget tier fires once budget text exists.
	if lead.Budget != "" {
		amount, ok := ParseBudget(lead.Budget)
		switch {
		case ok && amount >= 10000:
			score += 45
			reasons = append(reasons, "High budget ($10k+) (+45)")
		case ok && amount >= 3000:
			score += 25
			reasons = append(reasons, "Medium budget ($3k–$9k) (+25)")
		case ok && amount >= 100:
			score += 5
			reasons = append(reasons, "Low budget (<$3k) (+5)")
		default:
			// Budget text present but unparseable or below $100.
			score += 15
			reasons = append(reasons, "Budget mentioned (+15)")
		}
	}

	fullText := strings.ToLower(lead.Need + " " + lead.Budget)
	for _, keyword := range urgencyKeywords {
		if strings.Contains(fullText, keyword) {
			score += 10
			reasons = append(reasons, "Urgency detected (+10)")
			break
		}
	}

	// Raw maximum is 110, clamp to the 0-100 scale.
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return Result{Score: score, Label: LabelFor(score), Reasons: reasons}
}

// LabelFor maps a score to its category. Thresholds are checked high to
// low, first match wins.
func LabelFor(score int) entity.ScoreLabel {
	switch {
	case score >= 70:
		return entity.LabelHot
	case score >= 40:
		return entity.LabelWarm
	case score >= 10:
		return entity.LabelCold
	default:
		return entity.LabelUnqualified
	}
}
