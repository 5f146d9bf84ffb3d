package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// QueueLabels holds pending barcode label render jobs.
	QueueLabels = "jobs:labels"
	// QueueEmail holds pending notification emails.
	QueueEmail = "jobs:email"
)

// Job is the envelope pushed onto a Redis list queue.
type Job struct {
	Type     string          `json:"type"`
	Attempts int             `json:"attempts"`
	Payload  json.RawMessage `json:"payload"`
}

// LabelJob asks a worker to render a printable label PDF for an entity
// that carries a barcode_id.
type LabelJob struct {
	Entity    string `json:"entity"`
	EntityID  uint   `json:"entity_id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	BarcodeID string `json:"barcode_id"`
}

// EmailJob asks a worker to deliver a notification email.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Dispatcher enqueues background jobs onto Redis lists.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueLabel pushes a label render job onto the labels queue.
func (d *Dispatcher) EnqueueLabel(ctx context.Context, job LabelJob) error {
	if err := d.enqueue(ctx, QueueLabels, "label", job); err != nil {
		return fmt.Errorf("enqueue label job: %w", err)
	}
	log.Debug().Str("entity", job.Entity).Uint("entity_id", job.EntityID).
		Str("barcode_id", job.BarcodeID).Msg("label job enqueued")
	return nil
}

// EnqueueEmail pushes a notification email onto the email queue.
func (d *Dispatcher) EnqueueEmail(ctx context.Context, job EmailJob) error {
	if err := d.enqueue(ctx, QueueEmail, "email", job); err != nil {
		return fmt.Errorf("enqueue email job: %w", err)
	}
	log.Debug().Str("to", job.To).Str("subject", job.Subject).Msg("email job enqueued")
	return nil
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	data, err := json.Marshal(Job{Type: jobType, Payload: raw})
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, data).Err()
}
