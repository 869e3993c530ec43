package alerts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Mailer delivers email-like notifications through an HTTP mail API.
type Mailer struct {
	apiURL string
	apiKey string
	from   string
}

func NewMailer(apiURL, apiKey, from string) *Mailer {
	return &Mailer{apiURL: apiURL, apiKey: apiKey, from: from}
}

type mailSendBody struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	From    string `json:"from,omitempty"`
}

func (m *Mailer) Send(to, subject, body string) error {
	if m.apiKey == "" {
		return fmt.Errorf("mailer not configured: set MAIL_API_KEY")
	}

	payload := mailSendBody{To: to, Subject: subject, Body: body, From: m.from}
	b, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, m.apiURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if b, readErr := io.ReadAll(resp.Body); readErr == nil && len(b) > 0 {
			return fmt.Errorf("mail send failed: status=%d body=%s", resp.StatusCode, string(b))
		}
		return fmt.Errorf("mail send failed: status=%d", resp.StatusCode)
	}
	return nil
}
