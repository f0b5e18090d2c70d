package events

import (
	"context"
	"testing"
)

func TestBus_PublishRunsHandlersInOrder(t *testing.T) {
	bus := NewBus()

	var order []int
	bus.Subscribe(func(ctx context.Context, ev ReviewChanged) {
		order = append(order, 1)
	})
	bus.Subscribe(func(ctx context.Context, ev ReviewChanged) {
		order = append(order, 2)
	})

	bus.Publish(context.Background(), ReviewChanged{BookID: 5})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("handlers ran as %v, want [1 2]", order)
	}
}

func TestBus_PublishDeliversEvent(t *testing.T) {
	bus := NewBus()

	var got ReviewChanged
	bus.Subscribe(func(ctx context.Context, ev ReviewChanged) {
		got = ev
	})

	bus.Publish(context.Background(), ReviewChanged{BookID: 99})

	if got.BookID != 99 {
		t.Fatalf("got book %d, want 99", got.BookID)
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	bus.Publish(context.Background(), ReviewChanged{BookID: 1})
}
