package ratings

import (
	"context"
	"errors"
	"testing"

	"shelf/internal/store"
)

type fakeReviewSource struct {
	reviews map[int64][]store.Review
	err     error
}

func (f *fakeReviewSource) ListByBook(ctx context.Context, bookID int64) ([]store.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reviews[bookID], nil
}

type statsWrite struct {
	average float64
	count   int
}

type fakeAggregateWriter struct {
	stats  map[int64]statsWrite
	writes int
	err    error
}

func newFakeAggregateWriter() *fakeAggregateWriter {
	return &fakeAggregateWriter{stats: make(map[int64]statsWrite)}
}

func (f *fakeAggregateWriter) SetRatingStats(ctx context.Context, bookID int64, average float64, count int) error {
	if f.err != nil {
		return f.err
	}
	f.writes++
	f.stats[bookID] = statsWrite{average: average, count: count}
	return nil
}

func newTestEngine(reviews map[int64][]store.Review) (*Engine, *fakeAggregateWriter) {
	books := newFakeAggregateWriter()
	return NewEngine(&fakeReviewSource{reviews: reviews}, books), books
}

func TestEngine_RecomputeNoReviews(t *testing.T) {
	engine, books := newTestEngine(nil)

	agg, err := engine.Recompute(context.Background(), 1)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if agg.AverageRating != 0 || agg.ReviewCount != 0 {
		t.Fatalf("got %+v, want zero aggregate", agg)
	}
	if got := books.stats[1]; got.average != 0 || got.count != 0 {
		t.Fatalf("stored %+v, want zero stats", got)
	}
}

func TestEngine_RecomputeMean(t *testing.T) {
	engine, books := newTestEngine(map[int64][]store.Review{
		7: {
			{ID: 1, BookID: 7, UserID: 10, Rating: 5},
			{ID: 2, BookID: 7, UserID: 11, Rating: 3},
		},
	})

	agg, err := engine.Recompute(context.Background(), 7)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if agg.AverageRating != 4.0 || agg.ReviewCount != 2 {
		t.Fatalf("got %+v, want {4.0 2}", agg)
	}
	if got := books.stats[7]; got.average != 4.0 || got.count != 2 {
		t.Fatalf("stored %+v, want {4.0 2}", got)
	}
}

func TestEngine_RecomputeAfterRatingChange(t *testing.T) {
	reviews := map[int64][]store.Review{
		7: {
			{ID: 1, BookID: 7, UserID: 10, Rating: 5},
			{ID: 2, BookID: 7, UserID: 11, Rating: 3},
		},
	}
	engine, books := newTestEngine(reviews)

	if _, err := engine.Recompute(context.Background(), 7); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	// the first reviewer drops their rating from 5 to 1
	reviews[7][0].Rating = 1

	agg, err := engine.Recompute(context.Background(), 7)
	if err != nil {
		t.Fatalf("recompute after update: %v", err)
	}
	if agg.AverageRating != 2.0 || agg.ReviewCount != 2 {
		t.Fatalf("got %+v, want {2.0 2}", agg)
	}
	if got := books.stats[7]; got.average != 2.0 {
		t.Fatalf("stored average %v, want 2.0", got.average)
	}
}

func TestEngine_RecomputeAfterLastReviewDeleted(t *testing.T) {
	reviews := map[int64][]store.Review{
		3: {{ID: 9, BookID: 3, UserID: 10, Rating: 4}},
	}
	engine, books := newTestEngine(reviews)

	if _, err := engine.Recompute(context.Background(), 3); err != nil {
		t.Fatalf("recompute: %v", err)
	}

	delete(reviews, 3)

	agg, err := engine.Recompute(context.Background(), 3)
	if err != nil {
		t.Fatalf("recompute after delete: %v", err)
	}
	if agg.AverageRating != 0 || agg.ReviewCount != 0 {
		t.Fatalf("got %+v, want zero aggregate", agg)
	}
	if got := books.stats[3]; got.average != 0 || got.count != 0 {
		t.Fatalf("stored %+v, want zero stats", got)
	}
}

func TestEngine_RecomputeKeepsFullPrecision(t *testing.T) {
	engine, books := newTestEngine(map[int64][]store.Review{
		5: {
			{ID: 1, BookID: 5, UserID: 10, Rating: 5},
			{ID: 2, BookID: 5, UserID: 11, Rating: 4},
			{ID: 3, BookID: 5, UserID: 12, Rating: 4},
		},
	})

	agg, err := engine.Recompute(context.Background(), 5)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}

	want := float64(13) / 3
	if agg.AverageRating != want {
		t.Fatalf("average %v, want unrounded %v", agg.AverageRating, want)
	}
	if got := books.stats[5]; got.average != want {
		t.Fatalf("stored average %v, want %v", got.average, want)
	}
}

func TestEngine_RecomputeIsIdempotent(t *testing.T) {
	engine, books := newTestEngine(map[int64][]store.Review{
		5: {
			{ID: 1, BookID: 5, UserID: 10, Rating: 5},
			{ID: 2, BookID: 5, UserID: 11, Rating: 4},
			{ID: 3, BookID: 5, UserID: 12, Rating: 4},
		},
	})

	first, err := engine.Recompute(context.Background(), 5)
	if err != nil {
		t.Fatalf("first recompute: %v", err)
	}
	firstStored := books.stats[5]

	second, err := engine.Recompute(context.Background(), 5)
	if err != nil {
		t.Fatalf("second recompute: %v", err)
	}

	if first != second {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
	if books.stats[5] != firstStored {
		t.Fatalf("stored stats differ: %+v vs %+v", books.stats[5], firstStored)
	}
	if books.writes != 2 {
		t.Fatalf("writes = %d, want 2", books.writes)
	}
}

func TestEngine_RecomputePropagatesMissingBook(t *testing.T) {
	books := newFakeAggregateWriter()
	books.err = store.ErrNotFound
	engine := NewEngine(&fakeReviewSource{}, books)

	if _, err := engine.Recompute(context.Background(), 42); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
