package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xavierca1/leadqual/internal/entity"
	"github.com/xavierca1/leadqual/internal/infra/queue"
	"github.com/xavierca1/leadqual/internal/scoring"
)

// MaxSessionMessages is the flood-protection cap on turns per session.
const MaxSessionMessages = 50

const fallbackReply = "Sorry, I'm having a little trouble responding right now. Could you try that again in a moment?"

type ProcessChatTurnUseCase struct {
	Repo         entity.LeadRepositoryInterface
	Gateway      CompletionGateway
	Parser       ResponseParser
	Notifier     HotLeadNotifier
	Producer     EventProducerInterface
	EmailService EmailService
	AlertEmail   string
}

func NewProcessChatTurnUseCase(
	repo entity.LeadRepositoryInterface,
	gateway CompletionGateway,
	parser ResponseParser,
	notifier HotLeadNotifier,
	producer EventProducerInterface,
	emailService EmailService,
	alertEmail string,
) *ProcessChatTurnUseCase {
	return &ProcessChatTurnUseCase{
		Repo:         repo,
		Gateway:      gateway,
		Parser:       parser,
		Notifier:     notifier,
		Producer:     producer,
		EmailService: emailService,
		AlertEmail:   alertEmail,
	}
}

// Execute runs one chat turn: relay to the completion service, extract and
// merge lead fields, and score-and-save once the conversation is complete
// and an email is present.
func (uc *ProcessChatTurnUseCase) Execute(ctx context.Context, input ChatTurnInput) (*ChatTurnOutput, error) {
	if input.Messages == nil {
		return nil, ValidationError{"messages", "is required and must be a list"}
	}
	if len(input.Messages) > MaxSessionMessages {
		return nil, &DomainError{Code: "SESSION_FLOODED", Message: "too many messages in session"}
	}

	lead := SanitizeExistingLead(input.ExistingLead)

	history := make([]entity.ChatMessage, 0, len(input.Messages))
	for _, m := range input.Messages {
		if m.Role == entity.RoleUser || m.Role == entity.RoleAssistant {
			history = append(history, m)
		}
	}

	raw, err := uc.Gateway.Complete(ctx, SystemPrompt, history)
	if err != nil {
		// Upstream failure degrades to a generic reply, never a hard error.
		log.Printf("⚠️ chat: completion failed for session=%s: %v", input.SessionID, err)
		return &ChatTurnOutput{Content: fallbackReply, LeadData: lead, Complete: false}, nil
	}

	complete := false
	if extracted, ok := uc.Parser.Parse(raw); ok {
		extracted.Merge(lead)
		complete = extracted.Complete
	}

	content := uc.Parser.Strip(raw)

	if !complete || lead.Email == "" {
		return &ChatTurnOutput{Content: content, LeadData: lead, Complete: false}, nil
	}

	result := scoring.ScoreLead(lead)
	lead.Score = result.Score
	lead.ScoreLabel = result.Label
	lead.Transcript = input.Messages
	lead.Notified = false
	lead.EnsureDefaults()

	if err := uc.Repo.Upsert(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: "LEAD_SAVE_FAILED", Message: fmt.Sprintf("failed to save lead: %v", err)}
	}
	log.Printf("✅ chat: lead %s saved with score=%d label=%s", lead.ID, lead.Score, lead.ScoreLabel)

	uc.publishSaved(ctx, lead)

	if result.Label == entity.LabelHot {
		saved := *lead
		go uc.notifyHotLead(&saved)
	}

	return &ChatTurnOutput{
		Content:  content,
		LeadData: lead,
		Complete: true,
		Scoring:  &result,
		LeadID:   lead.ID,
	}, nil
}

func (uc *ProcessChatTurnUseCase) publishSaved(ctx context.Context, lead *entity.Lead) {
	if uc.Producer == nil {
		return
	}

	if err := uc.Producer.PublishLeadSaved(ctx, queuePayloadFor(lead)); err != nil {
		// Event fan-out is best effort; the lead is already persisted.
		log.Printf("⚠️ queue: failed to publish lead.saved for %s: %v", lead.ID, err)
	}
}

func queuePayloadFor(lead *entity.Lead) queue.LeadSavedPayload {
	return queue.LeadSavedPayload{
		LeadID:     lead.ID,
		Name:       lead.Name,
		Email:      lead.Email,
		Company:    lead.Company,
		Need:       lead.Need,
		Budget:     lead.Budget,
		Score:      lead.Score,
		ScoreLabel: string(lead.ScoreLabel),
		CreatedAt:  lead.CreatedAt,
	}
}

// notifyHotLead runs detached from the request. Failures are logged and
// swallowed; a successful webhook marks the lead notified exactly once.
func (uc *ProcessChatTurnUseCase) notifyHotLead(lead *entity.Lead) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if uc.Notifier != nil && !lead.Notified {
		if err := uc.Notifier.NotifyHotLead(ctx, lead); err != nil {
			log.Printf("⚠️ webhook: hot lead notification failed for %s: %v", lead.ID, err)
		} else {
			lead.Notified = true
			if err := uc.Repo.Upsert(ctx, lead); err != nil {
				log.Printf("⚠️ webhook: could not persist notified flag for %s: %v", lead.ID, err)
			}
		}
	}

	// When no broker is wired the alert email goes out directly; otherwise
	// the queue worker picks it up from the lead.saved event.
	if uc.Producer == nil && uc.EmailService != nil && uc.AlertEmail != "" {
		if err := uc.EmailService.SendHotLeadAlert(uc.AlertEmail, lead); err != nil {
			log.Printf("⚠️ mail: hot lead alert failed for %s: %v", lead.ID, err)
		}
	}
}
