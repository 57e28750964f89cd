package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/leadqual/internal/entity"
)

func TestScoreEmptyLead(t *testing.T) {
	result := ScoreLead(&entity.Lead{})

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, entity.LabelUnqualified, result.Label)
	assert.Empty(t, result.Reasons)
}

func TestScoreEmailOnly(t *testing.T) {
	result := ScoreLead(&entity.Lead{Email: "test@example.com"})

	assert.Equal(t, 20, result.Score)
	assert.Contains(t, result.Reasons, "Contact email provided (+20)")
}

func TestScoreEmailWithoutAtSign(t *testing.T) {
	result := ScoreLead(&entity.Lead{Email: "notanemail"})
	assert.Equal(t, 0, result.Score)
}

func TestScoreNameAndCompany(t *testing.T) {
	result := ScoreLead(&entity.Lead{Name: "Alice", Company: "Acme Corp"})

	assert.Equal(t, 25, result.Score)
	assert.Contains(t, result.Reasons, "Name provided (+10)")
	assert.Contains(t, result.Reasons, "Company identified (+15)")
}

func TestScoreSingleCharNameIgnored(t *testing.T) {
	result := ScoreLead(&entity.Lead{Name: "A"})
	assert.Equal(t, 0, result.Score)
}

func TestScoreNeedLength(t *testing.T) {
	long := ScoreLead(&entity.Lead{Need: "Build a SaaS analytics dashboard with charts"})
	assert.Equal(t, 10, long.Score)
	assert.Contains(t, long.Reasons, "Clear project need (+10)")

	short := ScoreLead(&entity.Lead{Need: "Short need"})
	assert.Equal(t, 0, short.Score)
}

func TestScoreBudgetTiers(t *testing.T) {
	cases := []struct {
		budget string
		points int
		reason string
	}{
		{"$15,000", 45, "High budget ($10k+) (+45)"},
		{"25k", 45, "High budget ($10k+) (+45)"},
		{"$90,000", 45, "High budget ($10k+) (+45)"}, // was a substring false-positive before numeric parsing
		{"$5,000", 25, "Medium budget ($3k–$9k) (+25)"},
		{"7k", 25, "Medium budget ($3k–$9k) (+25)"},
		{"$500", 5, "Low budget (<$3k) (+5)"},
		{"$50", 15, "Budget mentioned (+15)"},
		{"flexible", 15, "Budget mentioned (+15)"},
	}

	for _, tc := range cases {
		result := ScoreLead(&entity.Lead{Budget: tc.budget})
		assert.Equal(t, tc.points, result.Score, "budget %q", tc.budget)
		assert.Contains(t, result.Reasons, tc.reason, "budget %q", tc.budget)
	}
}

// Exactly one budget reason per lead once budget text exists.
func TestScoreBudgetTiersMutuallyExclusive(t *testing.T) {
	budgetReasons := map[string]bool{
		"High budget ($10k+) (+45)":     true,
		"Medium budget ($3k–$9k) (+25)": true,
		"Low budget (<$3k) (+5)":        true,
		"Budget mentioned (+15)":        true,
	}

	for _, budget := range []string{"$15,000", "7k", "$500", "$50", "no idea", "25k asap"} {
		result := ScoreLead(&entity.Lead{Budget: budget})
		fired := 0
		for _, reason := range result.Reasons {
			if budgetReasons[reason] {
				fired++
			}
		}
		assert.Equal(t, 1, fired, "budget %q", budget)
	}
}

func TestScoreUrgencyDetection(t *testing.T) {
	result := ScoreLead(&entity.Lead{Need: "Need a landing page ASAP for our launch"})

	assert.Contains(t, result.Reasons, "Urgency detected (+10)")

	calm := ScoreLead(&entity.Lead{Need: "A marketing site, whenever it is convenient"})
	assert.NotContains(t, calm.Reasons, "Urgency detected (+10)")
}

// A lead triggering every rule sums to 110 raw and must clamp to 100.
func TestScoreClampedAt100(t *testing.T) {
	result := ScoreLead(&entity.Lead{
		Name:    "Sarah Johnson",
		Email:   "sarah@techstartup.com",
		Company: "TechStartup Inc",
		Need:    "Build a SaaS dashboard with real-time analytics, needed urgently",
		Budget:  "$15,000",
	})

	assert.Equal(t, 100, result.Score)
	assert.Equal(t, entity.LabelHot, result.Label)
}

func TestLabelThresholds(t *testing.T) {
	cases := map[int]entity.ScoreLabel{
		0:   entity.LabelUnqualified,
		9:   entity.LabelUnqualified,
		10:  entity.LabelCold,
		39:  entity.LabelCold,
		40:  entity.LabelWarm,
		69:  entity.LabelWarm,
		70:  entity.LabelHot,
		100: entity.LabelHot,
	}

	for score, want := range cases {
		assert.Equal(t, want, LabelFor(score), "score %d", score)
	}
}
