package usecase

import (
	"context"

	"github.com/xavierca1/leadqual/internal/entity"
	"github.com/xavierca1/leadqual/internal/infra/queue"
)

// CompletionGateway is the external LLM completion service, consumed as a
// black-box text generator.
type CompletionGateway interface {
	Complete(ctx context.Context, systemPrompt string, messages []entity.ChatMessage) (string, error)
}

// ResponseParser pulls the structured lead block out of a model reply.
// The sentinel-delimited format is brittle by nature, so the relay only
// depends on this contract, not on how the reply happens to be formatted.
type ResponseParser interface {
	// Parse returns the extraction and whether a block was found. A
	// malformed block counts as not found.
	Parse(raw string) (Extraction, bool)
	// Strip removes the block from the user-visible reply text.
	Strip(raw string) string
}

// HotLeadNotifier delivers the hot-lead webhook. Failures must never
// surface to the conversational reply.
type HotLeadNotifier interface {
	NotifyHotLead(ctx context.Context, lead *entity.Lead) error
}

type EmailService interface {
	SendHotLeadAlert(to string, lead *entity.Lead) error
}

type EventProducerInterface interface {
	PublishLeadSaved(ctx context.Context, payload queue.LeadSavedPayload) error
}
