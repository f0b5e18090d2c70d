package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Description   string    `json:"description"`
	CoverURL      *string   `json:"cover_url,omitempty"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int       `json:"review_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookStore struct {
	db *pgxpool.Pool
}

func (s *BookStore) Create(ctx context.Context, book *Book) error {
	query := `
        INSERT INTO books (title, author, description)
        VALUES ($1, $2, $3)
        RETURNING id, average_rating, review_count, created_at, updated_at
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return s.db.QueryRow(ctx, query,
		book.Title,
		book.Author,
		book.Description,
	).Scan(&book.ID, &book.AverageRating, &book.ReviewCount, &book.CreatedAt, &book.UpdatedAt)
}

func (s *BookStore) GetByID(ctx context.Context, bookID int64) (*Book, error) {
	query := `
        SELECT id, title, author, description, cover_url,
               average_rating, review_count, created_at, updated_at
        FROM books
        WHERE id = $1
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var book Book
	err := s.db.QueryRow(ctx, query, bookID).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.Description,
		&book.CoverURL,
		&book.AverageRating,
		&book.ReviewCount,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (s *BookStore) List(ctx context.Context) ([]Book, error) {
	query := `
        SELECT id, title, author, description, cover_url,
               average_rating, review_count, created_at, updated_at
        FROM books
        ORDER BY created_at DESC
    `

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var book Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.Description,
			&book.CoverURL,
			&book.AverageRating,
			&book.ReviewCount,
			&book.CreatedAt,
			&book.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func (s *BookStore) SetCoverURL(ctx context.Context, bookID int64, url string) error {
	query := `UPDATE books SET cover_url = $1, updated_at = now() WHERE id = $2`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx, query, url, bookID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetRatingStats is the single writer of the derived rating columns. One
// statement, so both fields move together.
func (s *BookStore) SetRatingStats(ctx context.Context, bookID int64, average float64, count int) error {
	query := `UPDATE books SET average_rating = $1, review_count = $2 WHERE id = $3`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx, query, average, count, bookID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
