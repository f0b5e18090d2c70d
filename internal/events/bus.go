package events

import (
	"context"
	"sync"
)

// ReviewChanged is published after a review row for BookID has been
// committed (created, updated, or deleted).
type ReviewChanged struct {
	BookID int64
}

type Handler func(ctx context.Context, ev ReviewChanged)

// Bus is a synchronous in-process event bus. Publish runs every handler on
// the caller's goroutine, so subscribers always observe state that was
// committed before the publish.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

func (b *Bus) Publish(ctx context.Context, ev ReviewChanged) {
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, ev)
	}
}
