package ratings

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"shelf/internal/events"
	"shelf/internal/store"
)

func TestTrigger_RecomputesOnPublish(t *testing.T) {
	reviews := map[int64][]store.Review{
		7: {
			{ID: 1, BookID: 7, UserID: 10, Rating: 5},
			{ID: 2, BookID: 7, UserID: 11, Rating: 3},
		},
	}
	books := newFakeAggregateWriter()
	engine := NewEngine(&fakeReviewSource{reviews: reviews}, books)

	bus := events.NewBus()
	NewTrigger(engine, zap.NewNop().Sugar()).Bind(bus)

	bus.Publish(context.Background(), events.ReviewChanged{BookID: 7})

	if got := books.stats[7]; got.average != 4.0 || got.count != 2 {
		t.Fatalf("stored %+v, want {4.0 2}", got)
	}
}

func TestTrigger_DropsUpdateForDeletedBook(t *testing.T) {
	books := newFakeAggregateWriter()
	books.err = store.ErrNotFound
	engine := NewEngine(&fakeReviewSource{}, books)

	bus := events.NewBus()
	NewTrigger(engine, zap.NewNop().Sugar()).Bind(bus)

	// must not panic or surface the error to the publisher
	bus.Publish(context.Background(), events.ReviewChanged{BookID: 42})
}

func TestTrigger_SwallowsRecomputeFailure(t *testing.T) {
	engine := NewEngine(&fakeReviewSource{err: errors.New("connection reset")}, newFakeAggregateWriter())

	bus := events.NewBus()
	NewTrigger(engine, zap.NewNop().Sugar()).Bind(bus)

	bus.Publish(context.Background(), events.ReviewChanged{BookID: 1})
}
