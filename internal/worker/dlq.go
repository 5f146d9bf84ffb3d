package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dlqPrefix = "dlq:"

// DLQEntry wraps a job that exhausted its retries, together with the final
// error, for later inspection or manual replay.
type DLQEntry struct {
	Job      Job       `json:"job"`
	Queue    string    `json:"queue"`
	Error    string    `json:"error"`
	FailedAt time.Time `json:"failed_at"`
}

// SendToDLQ moves an exhausted job onto the queue's dead-letter list.
func SendToDLQ(ctx context.Context, rdb *redis.Client, queue string, job Job, jobErr error) {
	entry := DLQEntry{
		Job:      job,
		Queue:    queue,
		Error:    jobErr.Error(),
		FailedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: marshal entry failed")
		return
	}
	if err := rdb.LPush(ctx, dlqPrefix+queue, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: push failed")
		return
	}
	log.Warn().Str("queue", queue).Str("type", job.Type).
		Str("error", jobErr.Error()).Msg("job moved to dead-letter queue")
}

// DLQLength reports how many jobs sit in the queue's dead-letter list.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, dlqPrefix+queue).Result()
}
