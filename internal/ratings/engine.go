// Package ratings keeps each book's stored average_rating and review_count
// consistent with its underlying reviews.
package ratings

import (
	"context"

	"shelf/internal/store"
)

// ReviewSource provides the current review set for a book.
type ReviewSource interface {
	ListByBook(ctx context.Context, bookID int64) ([]store.Review, error)
}

// AggregateWriter persists the derived rating fields onto a book.
type AggregateWriter interface {
	SetRatingStats(ctx context.Context, bookID int64, average float64, count int) error
}

// Aggregate holds the derived rating fields for a book.
type Aggregate struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

// Engine recomputes a book's aggregate from scratch on every run. A full
// re-aggregation rather than a delta, so concurrent recomputes for the same
// book converge on the correct value no matter which one finishes last.
type Engine struct {
	reviews ReviewSource
	books   AggregateWriter
}

func NewEngine(reviews ReviewSource, books AggregateWriter) *Engine {
	return &Engine{reviews: reviews, books: books}
}

// Recompute reads the book's full review set, derives count and mean, and
// writes both onto the book row in one atomic update. The mean is kept at
// full float64 precision; rounding is a presentation concern. A book with no
// reviews stores {0, 0}. Running it twice with no intervening mutation
// stores identical values both times.
func (e *Engine) Recompute(ctx context.Context, bookID int64) (Aggregate, error) {
	reviews, err := e.reviews.ListByBook(ctx, bookID)
	if err != nil {
		return Aggregate{}, err
	}

	agg := Aggregate{ReviewCount: len(reviews)}
	if agg.ReviewCount > 0 {
		var sum int
		for _, review := range reviews {
			sum += review.Rating
		}
		agg.AverageRating = float64(sum) / float64(agg.ReviewCount)
	}

	if err := e.books.SetRatingStats(ctx, bookID, agg.AverageRating, agg.ReviewCount); err != nil {
		return Aggregate{}, err
	}
	return agg, nil
}
