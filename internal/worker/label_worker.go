package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/infra"

	"github.com/rs/zerolog/log"
)

// LabelWorker renders printable barcode labels into a local storage directory.
type LabelWorker struct {
	storagePath string
}

func NewLabelWorker(storagePath string) *LabelWorker {
	return &LabelWorker{storagePath: storagePath}
}

// LabelFileName is the canonical on-disk name for an entity's label.
func LabelFileName(entity string, entityID uint) string {
	return fmt.Sprintf("%s-%d.pdf", entity, entityID)
}

func (w *LabelWorker) Process(ctx context.Context, payload json.RawMessage) error {
	var job LabelJob
	if err := json.Unmarshal(payload, &job); err != nil {
		return fmt.Errorf("label worker: decode payload: %w", err)
	}
	if job.BarcodeID == "" {
		log.Warn().Str("entity", job.Entity).Uint("entity_id", job.EntityID).
			Msg("label job without barcode_id, skipping")
		return nil
	}

	path, err := infra.GenerateLabelPDF(w.storagePath, LabelFileName(job.Entity, job.EntityID),
		job.Name, job.Code, job.BarcodeID)
	if err != nil {
		return err
	}

	log.Info().Str("entity", job.Entity).Uint("entity_id", job.EntityID).
		Str("path", path).Msg("label rendered")
	return nil
}
