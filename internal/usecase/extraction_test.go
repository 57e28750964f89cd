package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/leadqual/internal/entity"
)

const sampleReply = `Great, thanks Sarah! I'll have our team reach out shortly.

<<<LEAD_DATA>>>
{
  "name": "Sarah Johnson",
  "email": "sarah@techstartup.com",
  "company": null,
  "need": "SaaS dashboard",
  "budget": "$15,000",
  "complete": true
}
<<<END_LEAD_DATA>>>`

func TestSentinelParserParse(t *testing.T) {
	parser := NewSentinelParser()

	extracted, ok := parser.Parse(sampleReply)

	assert.True(t, ok)
	assert.Equal(t, "Sarah Johnson", *extracted.Name)
	assert.Equal(t, "sarah@techstartup.com", *extracted.Email)
	assert.Nil(t, extracted.Company)
	assert.True(t, extracted.Complete)
}

func TestSentinelParserNoBlock(t *testing.T) {
	parser := NewSentinelParser()

	_, ok := parser.Parse("Just a plain reply with no structured data.")
	assert.False(t, ok)
}

func TestSentinelParserMalformedJSON(t *testing.T) {
	parser := NewSentinelParser()

	_, ok := parser.Parse("<<<LEAD_DATA>>>{not json}<<<END_LEAD_DATA>>>")
	assert.False(t, ok)
}

func TestSentinelParserStrip(t *testing.T) {
	parser := NewSentinelParser()

	clean := parser.Strip(sampleReply)

	assert.Equal(t, "Great, thanks Sarah! I'll have our team reach out shortly.", clean)
	assert.NotContains(t, clean, "LEAD_DATA")
}

func TestMergeNeverClearsExistingFields(t *testing.T) {
	lead := &entity.Lead{Email: "a@b.com", Name: "Alice"}

	budget := "$5,000"
	Extraction{Email: nil, Budget: &budget}.Merge(lead)

	assert.Equal(t, "a@b.com", lead.Email)
	assert.Equal(t, "Alice", lead.Name)
	assert.Equal(t, "$5,000", lead.Budget)
}

func TestMergeOverwritesOnPresent(t *testing.T) {
	lead := &entity.Lead{Need: "old description"}

	need := "a much better description"
	Extraction{Need: &need}.Merge(lead)

	assert.Equal(t, "a much better description", lead.Need)
}

func TestMergeIgnoresEmptyStrings(t *testing.T) {
	lead := &entity.Lead{Company: "Acme"}

	empty := ""
	Extraction{Company: &empty}.Merge(lead)

	assert.Equal(t, "Acme", lead.Company)
}
