package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dinepay/escrow-service/internal/domain"
)

// WebhookNotifier posts escrow events to a configured callback endpoint so
// party-facing channels (mail, SMS, push) can fan out from there.
type WebhookNotifier struct {
	Endpoint string
	client   *http.Client
}

func NewWebhookNotifier(endpoint string) *WebhookNotifier {
	return &WebhookNotifier{
		Endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *WebhookNotifier) PublishEscrowEvent(event domain.EscrowEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.Endpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("callback endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
