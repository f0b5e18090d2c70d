package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"shelf/internal/events"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrDuplicateReview = errors.New("user has already reviewed this book")
	ErrDuplicateEmail  = errors.New("a user with that email already exists")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")

	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Users interface {
		Create(context.Context, *User) error
		GetByID(context.Context, int64) (*User, error)
		GetByEmail(context.Context, string) (*User, error)
	}
	Books interface {
		Create(context.Context, *Book) error
		GetByID(context.Context, int64) (*Book, error)
		List(context.Context) ([]Book, error)
		SetCoverURL(ctx context.Context, bookID int64, url string) error
		SetRatingStats(ctx context.Context, bookID int64, average float64, count int) error
	}
	Reviews interface {
		Create(context.Context, *Review) error
		Update(ctx context.Context, reviewID int64, rating *int, comment *string) (*Review, error)
		Delete(ctx context.Context, reviewID int64) error
		GetByID(ctx context.Context, reviewID int64) (*Review, error)
		ListByBook(ctx context.Context, bookID int64) ([]Review, error)
	}
}

// NewStorage wires every store to the shared pool. The review store publishes
// on bus after each committed mutation.
func NewStorage(db *pgxpool.Pool, bus *events.Bus) Storage {
	return Storage{
		Users:   &UsersStore{db: db},
		Books:   &BookStore{db: db},
		Reviews: &ReviewStore{db: db, bus: bus},
	}
}
