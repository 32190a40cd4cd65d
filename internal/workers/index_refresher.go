package workers

import (
	"context"
	"log/slog"
	"time"
)

// IndexRebuilder reloads the dispatcher's proximity index from the store.
type IndexRebuilder interface {
	Rebuild(ctx context.Context) error
}

// IndexRefresher periodically rebuilds the proximity index so reports the
// event stream missed (another replica, a dropped event) still count.
type IndexRefresher struct {
	index    IndexRebuilder
	interval time.Duration
	logger   *slog.Logger
}

func NewIndexRefresher(index IndexRebuilder, interval time.Duration, logger *slog.Logger) *IndexRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &IndexRefresher{
		index:    index,
		interval: interval,
		logger:   logger,
	}
}

// Run rebuilds once immediately and then on every tick until ctx is done.
func (w *IndexRefresher) Run(ctx context.Context) {
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *IndexRefresher) refresh(ctx context.Context) {
	if err := w.index.Rebuild(ctx); err != nil && ctx.Err() == nil {
		w.logger.Warn("index rebuild failed", slog.Any("error", err))
	}
}
