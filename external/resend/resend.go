package resend

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Mailer delivers the backup artifacts through the Resend HTTP API.
type Mailer struct {
	apiKey    string
	from      string
	recipient string
	client    *http.Client
	baseURL   string
}

func NewMailer(from, recipient string) (*Mailer, error) {
	key := os.Getenv("RESEND_API_KEY")
	if key == "" {
		return nil, errors.New("RESEND_API_KEY not set")
	}
	if recipient == "" {
		return nil, errors.New("backup recipient not set")
	}

	return &Mailer{
		apiKey:    key,
		from:      from,
		recipient: recipient,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}, nil
}

type attachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type sendRequest struct {
	From        string       `json:"from"`
	To          []string     `json:"to"`
	Subject     string       `json:"subject"`
	Text        string       `json:"text"`
	Attachments []attachment `json:"attachments,omitempty"`
}

// SendBackup composes one message to the fixed operator recipient with
// both artifacts attached.
func (m *Mailer) SendBackup(ctx context.Context, jsonPath, pdfPath string) error {
	attachments := make([]attachment, 0, 2)
	for _, path := range []string{pdfPath, jsonPath} {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		attachments = append(attachments, attachment{
			Filename: filepath.Base(path),
			Content:  base64.StdEncoding.EncodeToString(data),
		})
	}

	body := sendRequest{
		From:        m.from,
		To:          []string{m.recipient},
		Subject:     "Restaurant Orders Backup",
		Text:        "Attached PDF (readable) and JSON (data backup).",
		Attachments: attachments,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/emails",
		bytes.NewBuffer(b),
	)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New("failed to send backup email: " + buf.String())
	}

	return nil
}
