package worker

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/Vinodh8492/Micro-Dusing-V2/internal/repository"

	"github.com/rs/zerolog/log"
)

// StartLabelRetryCron periodically re-enqueues label jobs for recipes and
// production orders whose label PDF is missing from disk, e.g. after a
// storage wipe or a job lost to a crashed worker.
func StartLabelRetryCron(
	ctx context.Context,
	dispatcher *Dispatcher,
	recipes repository.RecipeRepository,
	orders repository.OrderRepository,
	storagePath string,
	interval time.Duration,
) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("label retry cron stopping")
				return
			case <-ticker.C:
				retryMissingLabels(ctx, dispatcher, recipes, orders, storagePath)
			}
		}
	}()
	log.Info().Dur("interval", interval).Msg("label retry cron started")
}

func retryMissingLabels(
	ctx context.Context,
	dispatcher *Dispatcher,
	recipes repository.RecipeRepository,
	orders repository.OrderRepository,
	storagePath string,
) {
	requeued := 0

	recs, err := recipes.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("label retry: listing recipes failed")
	} else {
		for _, rec := range recs {
			if rec.BarcodeID == nil || *rec.BarcodeID == "" {
				continue
			}
			if labelExists(storagePath, "recipe", rec.ID) {
				continue
			}
			job := LabelJob{
				Entity:    "recipe",
				EntityID:  rec.ID,
				Name:      rec.Name,
				Code:      rec.Code,
				BarcodeID: *rec.BarcodeID,
			}
			if err := dispatcher.EnqueueLabel(ctx, job); err != nil {
				log.Error().Err(err).Uint("recipe_id", rec.ID).Msg("label retry: enqueue failed")
				continue
			}
			requeued++
		}
	}

	ords, err := orders.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("label retry: listing orders failed")
	} else {
		for _, o := range ords {
			if o.BarcodeID == nil || *o.BarcodeID == "" {
				continue
			}
			if labelExists(storagePath, "production_order", o.ID) {
				continue
			}
			job := LabelJob{
				Entity:    "production_order",
				EntityID:  o.ID,
				Name:      o.OrderNumber,
				Code:      o.OrderNumber,
				BarcodeID: *o.BarcodeID,
			}
			if err := dispatcher.EnqueueLabel(ctx, job); err != nil {
				log.Error().Err(err).Uint("order_id", o.ID).Msg("label retry: enqueue failed")
				continue
			}
			requeued++
		}
	}

	if requeued > 0 {
		log.Info().Int("requeued", requeued).Msg("label retry: missing labels re-enqueued")
	}
}

func labelExists(storagePath, entity string, id uint) bool {
	_, err := os.Stat(filepath.Join(storagePath, LabelFileName(entity, id)))
	return err == nil
}
