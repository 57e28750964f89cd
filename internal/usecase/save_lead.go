package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/xavierca1/leadqual/internal/entity"
	"github.com/xavierca1/leadqual/internal/scoring"
)

// SaveLeadUseCase handles manual lead creation through the API. The score
// is always recomputed here, whatever the client sent.
type SaveLeadUseCase struct {
	Repo     entity.LeadRepositoryInterface
	Producer EventProducerInterface
}

func NewSaveLeadUseCase(repo entity.LeadRepositoryInterface, producer EventProducerInterface) *SaveLeadUseCase {
	return &SaveLeadUseCase{Repo: repo, Producer: producer}
}

func (uc *SaveLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs[0]
	}

	lead := &entity.Lead{
		Name:       input.Name,
		Email:      input.Email,
		Company:    input.Company,
		Need:       input.Need,
		Budget:     input.Budget,
		Transcript: input.Transcript,
	}

	result := scoring.ScoreLead(lead)
	lead.Score = result.Score
	lead.ScoreLabel = result.Label
	lead.EnsureDefaults()

	if err := uc.Repo.Upsert(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: "LEAD_SAVE_FAILED", Message: fmt.Sprintf("failed to save lead: %v", err)}
	}

	if uc.Producer != nil {
		if err := uc.Producer.PublishLeadSaved(ctx, queuePayloadFor(lead)); err != nil {
			// Best effort, same as the conversational path.
			log.Printf("⚠️ queue: failed to publish lead.saved for %s: %v", lead.ID, err)
		}
	}

	return lead, nil
}
