package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xavierca1/leadqual/internal/entity"
	"github.com/xavierca1/leadqual/internal/infra/http/middleware"
)

// WebhookNotifier fires the hot-lead webhook. Delivery is best effort:
// callers treat errors as log-and-forget.
type WebhookNotifier struct {
	URL        string
	httpClient *http.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		URL: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type hotLeadPayload struct {
	Event     string       `json:"event"`
	Lead      leadSnapshot `json:"lead"`
	Timestamp string       `json:"timestamp"`
}

type leadSnapshot struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Need    string `json:"need"`
	Budget  string `json:"budget"`
	Score   int    `json:"score"`
}

func (n *WebhookNotifier) NotifyHotLead(ctx context.Context, lead *entity.Lead) error {
	// Unconfigured or placeholder endpoint means demo mode: skip quietly.
	if n.URL == "" || strings.Contains(n.URL, "example.com") {
		log.Printf("🔥 webhook: hot lead %s detected, notification skipped (no endpoint configured)", lead.ID)
		middleware.RecordNotification("skipped")
		return nil
	}

	payload, err := json.Marshal(hotLeadPayload{
		Event: "hot_lead",
		Lead: leadSnapshot{
			Name:    lead.Name,
			Email:   lead.Email,
			Company: lead.Company,
			Need:    lead.Need,
			Budget:  lead.Budget,
			Score:   lead.Score,
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.URL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		middleware.RecordNotification("error")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		middleware.RecordNotification("error")
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	middleware.RecordNotification("delivered")
	return nil
}
