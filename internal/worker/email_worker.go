package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Sender delivers a single plain-text email.
type Sender interface {
	Send(to, subject, body string) error
}

// EmailWorker delivers queued notification emails through SMTP.
type EmailWorker struct {
	mailer Sender
}

func NewEmailWorker(mailer Sender) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

func (w *EmailWorker) Process(ctx context.Context, payload json.RawMessage) error {
	var job EmailJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("email worker: decode payload: %w", err)
	}
	if job.To == "" {
		log.Warn().Str("subject", job.Subject).Msg("email job without recipient, skipping")
		return nil
	}

	if err := w.mailer.Send(job.To, job.Subject, job.Body); err != nil {
		return fmt.Errorf("email worker: send to %s: %w", job.To, err)
	}

	log.Info().Str("to", job.To).Str("subject", job.Subject).Msg("email sent")
	return nil
}
