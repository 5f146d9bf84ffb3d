package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxAttempts = 3

// Handler processes one decoded job payload.
type Handler interface {
	Process(ctx context.Context, payload json.RawMessage) error
}

// WorkerHandlers binds each queue to its handler.
type WorkerHandlers struct {
	Labels Handler
	Email  Handler
}

// StartWorkerPool launches numWorkers goroutines that block-pop jobs from the
// label and email queues until ctx is cancelled. A job that fails is
// re-enqueued with an incremented attempt count; after maxAttempts it lands
// in the queue's dead-letter list.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, handlers WorkerHandlers, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, handlers, i)
	}
	log.Info().Int("workers", numWorkers).Msg("worker pool started")
}

func runWorker(ctx context.Context, rdb *redis.Client, handlers WorkerHandlers, id int) {
	logger := log.With().Int("worker", id).Logger()
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("worker stopping")
			return
		default:
		}

		res, err := rdb.BRPop(ctx, 5*time.Second, QueueLabels, QueueEmail).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) {
				continue
			}
			logger.Error().Err(err).Msg("queue pop failed")
			time.Sleep(time.Second)
			continue
		}
		if len(res) != 2 {
			continue
		}
		queue, raw := res[0], res[1]

		var job Job
		if err := json.Unmarshal([]byte(raw), &job); err != nil {
			logger.Error().Err(err).Str("queue", queue).Msg("malformed job discarded")
			continue
		}

		handler := handlerFor(handlers, queue)
		if handler == nil {
			logger.Error().Str("queue", queue).Msg("no handler for queue")
			continue
		}

		if err := handler.Process(ctx, job.Payload); err != nil {
			job.Attempts++
			if job.Attempts >= maxAttempts {
				SendToDLQ(ctx, rdb, queue, job, err)
				continue
			}
			logger.Warn().Err(err).Str("queue", queue).Int("attempt", job.Attempts).
				Msg("job failed, re-enqueueing")
			if data, mErr := json.Marshal(job); mErr == nil {
				if pErr := rdb.LPush(ctx, queue, data).Err(); pErr != nil {
					logger.Error().Err(pErr).Str("queue", queue).Msg("re-enqueue failed")
				}
			}
		}
	}
}

func handlerFor(handlers WorkerHandlers, queue string) Handler {
	switch queue {
	case QueueLabels:
		return handlers.Labels
	case QueueEmail:
		return handlers.Email
	}
	return nil
}
