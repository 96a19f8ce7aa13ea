package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// ResendClient sends operator notifications via the Resend API.
type ResendClient struct {
	apiKey string
	from   string
	to     string
	http   *http.Client
}

// NewResendClient builds a client from RESEND_API_KEY / RESEND_FROM_EMAIL /
// CONTACT_NOTIFY_EMAIL. Returns nil when no API key is configured, in which
// case contact messages are stored but nobody is emailed.
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, contact notifications disabled")
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@halfsy.shop"
	}

	to := os.Getenv("CONTACT_NOTIFY_EMAIL")
	if to == "" {
		to = from
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
		to:     to,
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

// SendContactNotification emails the shop operator about a new contact-form
// submission. Failures are the caller's to log; the submission itself is
// already persisted.
func (r *ResendClient) SendContactNotification(senderEmail, message string) error {
	htmlBody := fmt.Sprintf(
		`<h2>New Contact Form Submission</h2><p><strong>From:</strong> %s</p><p>%s</p>`,
		html.EscapeString(senderEmail),
		html.EscapeString(message),
	)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      r.to,
		"subject": "New Contact Form Submission",
		"html":    htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
