package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/xavierca1/leadqual/internal/infra/http/middleware"
	"github.com/xavierca1/leadqual/internal/usecase"
)

type ChatHandler struct {
	chatUC      *usecase.ProcessChatTurnUseCase
	rateLimiter *RateLimiter
}

func NewChatHandler(chatUC *usecase.ProcessChatTurnUseCase) *ChatHandler {
	return &ChatHandler{
		chatUC:      chatUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

func (h *ChatHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		respondError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.ChatTurnInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.chatUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	if output.Scoring != nil {
		middleware.RecordLeadScored(string(output.Scoring.Label))
	}

	respondJSON(w, http.StatusOK, output)
}
