package observability

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Notifier delivers reminder alerts to an external channel.
type Notifier interface {
	Notify(alerts []Alert) error
}

// webhookNotifier posts alerts to a configured webhook URL as a simple
// JSON text payload.
type webhookNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewWebhookNotifier creates a Notifier that posts alerts to the given URL.
func NewWebhookNotifier(webhookURL string) Notifier {
	return &webhookNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{},
	}
}

type webhookPayload struct {
	Text string `json:"text"`
}

// Notify posts the alerts. It returns nil without making a request when the
// alerts slice is empty.
func (n *webhookNotifier) Notify(alerts []Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	body, err := json.Marshal(webhookPayload{Text: buildText(alerts)})
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func buildText(alerts []Alert) string {
	var b strings.Builder
	b.WriteString("Task reminders:\n")
	for _, a := range alerts {
		fmt.Fprintf(&b, "[%s] %s (%s)\n",
			strings.ToUpper(string(a.Severity)),
			a.Message,
			a.TriggeredAt.Format("2006-01-02 15:04 UTC"),
		)
	}
	return b.String()
}
