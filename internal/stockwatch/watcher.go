package stockwatch

import (
	"context"
	"time"

	db "github.com/artisora/artisan-BE/internal/db/sqlc"
	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Watcher periodically repairs in_stock flags that drifted away from the
// actual stock counts, e.g. after an interrupted checkout.
type Watcher struct {
	store     db.Store
	scheduler gocron.Scheduler
	interval  time.Duration
}

func NewWatcher(store db.Store, interval time.Duration) (*Watcher, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	if interval <= 0 {
		interval = 5 * time.Minute
	}

	return &Watcher{
		store:     store,
		scheduler: scheduler,
		interval:  interval,
	}, nil
}

// Start schedules the repair job and starts the scheduler.
func (w *Watcher) Start() error {
	_, err := w.scheduler.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(
			func() {
				w.repairStockFlags()
			},
		),
	)
	if err != nil {
		return err
	}

	w.scheduler.Start()
	return nil
}

// Stop shuts the scheduler down.
func (w *Watcher) Stop() error {
	return w.scheduler.Shutdown()
}

func (w *Watcher) repairStockFlags() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repaired, err := w.store.RepairStockFlags(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to repair stock flags")
		return
	}

	if len(repaired) > 0 {
		log.Warn().Ints64("product_ids", repaired).Msg("repaired stock flags that disagreed with stock counts")
	}
}
