package ratings

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"shelf/internal/events"
	"shelf/internal/store"
)

// Trigger subscribes to review mutation events and runs a recompute for the
// affected book after every one of them.
type Trigger struct {
	engine *Engine
	logger *zap.SugaredLogger
}

func NewTrigger(engine *Engine, logger *zap.SugaredLogger) *Trigger {
	return &Trigger{engine: engine, logger: logger}
}

func (t *Trigger) Bind(bus *events.Bus) {
	bus.Subscribe(t.ReviewChanged)
}

// ReviewChanged recomputes the aggregate for ev.BookID. A missing book means
// it was deleted after the review mutation; the update is dropped. Other
// failures are logged and swallowed: a committed review write is never rolled
// back for the sake of aggregate freshness, and the next recompute repairs
// the stored values.
func (t *Trigger) ReviewChanged(ctx context.Context, ev events.ReviewChanged) {
	if _, err := t.engine.Recompute(ctx, ev.BookID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			t.logger.Infow("book gone before recompute, dropping aggregate update", "book_id", ev.BookID)
			return
		}
		t.logger.Errorw("failed to recompute book rating", "book_id", ev.BookID, "error", err)
	}
}
