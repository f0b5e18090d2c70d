package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelf/internal/events"
)

type Review struct {
	ID        int64     `json:"id"`
	BookID    int64     `json:"book_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"` // 1-5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined fields
	UserName string `json:"user_name,omitempty"`
}

// ReviewStore owns the reviews table. Every committed mutation publishes a
// ReviewChanged event for the affected book so its aggregate gets recomputed.
type ReviewStore struct {
	db  *pgxpool.Pool
	bus *events.Bus
}

func (s *ReviewStore) Create(ctx context.Context, review *Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidRating
	}

	query := `
        INSERT INTO reviews (book_id, user_id, rating, comment)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := s.db.QueryRow(ctx, query,
		review.BookID,
		review.UserID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			// one review per user per book, enforced by the unique index
			case pgErr.Code == "23505" && pgErr.ConstraintName == "reviews_book_id_user_id_key":
				return ErrDuplicateReview
			case pgErr.Code == "23503":
				return ErrNotFound
			case pgErr.Code == "23514":
				return ErrInvalidRating
			}
		}
		return err
	}

	s.bus.Publish(ctx, events.ReviewChanged{BookID: review.BookID})
	return nil
}

// Update changes rating and/or comment on an existing review. Nil means
// leave the column as is.
func (s *ReviewStore) Update(ctx context.Context, reviewID int64, rating *int, comment *string) (*Review, error) {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return nil, ErrInvalidRating
	}

	query := `
        UPDATE reviews
        SET rating = COALESCE($2, rating),
            comment = COALESCE($3, comment),
            updated_at = now()
        WHERE id = $1
        RETURNING id, book_id, user_id, rating, comment, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var review Review
	err := s.db.QueryRow(ctx, query, reviewID, rating, comment).Scan(
		&review.ID,
		&review.BookID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.bus.Publish(ctx, events.ReviewChanged{BookID: review.BookID})
	return &review, nil
}

func (s *ReviewStore) Delete(ctx context.Context, reviewID int64) error {
	query := `
        DELETE FROM reviews
        WHERE id = $1
        RETURNING book_id
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var bookID int64
	err := s.db.QueryRow(ctx, query, reviewID).Scan(&bookID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	s.bus.Publish(ctx, events.ReviewChanged{BookID: bookID})
	return nil
}

func (s *ReviewStore) GetByID(ctx context.Context, reviewID int64) (*Review, error) {
	query := `
        SELECT id, book_id, user_id, rating, comment, created_at, updated_at
        FROM reviews
        WHERE id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var review Review
	err := s.db.QueryRow(ctx, query, reviewID).Scan(
		&review.ID,
		&review.BookID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// ListByBook returns every review for a book. Ordering is for display only;
// the aggregation engine treats the result as a set.
func (s *ReviewStore) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	query := `
        SELECT r.id, r.book_id, r.user_id, r.rating, r.comment,
               r.created_at, r.updated_at, u.name
        FROM reviews r
        JOIN users u ON u.id = r.user_id
        WHERE r.book_id = $1
        ORDER BY r.created_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID,
			&review.BookID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.UserName,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
