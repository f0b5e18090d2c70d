package store_test

import (
	"errors"
	"fmt"
	"testing"

	"shelf/internal/store"
)

func TestReviewStore_UniqueReviewPerUserPerBook(t *testing.T) {
	env := newTestEnv(t)
	defer env.cleanup()

	user := mustCreateUser(t, env, "Ada", "ada@example.com")
	book := mustCreateBook(t, env, "The Go Programming Language")

	first := &store.Review{BookID: book.ID, UserID: user.ID, Rating: 5, Comment: "great"}
	if err := env.storage.Reviews.Create(env.ctx, first); err != nil {
		t.Fatalf("create review: %v", err)
	}

	second := &store.Review{BookID: book.ID, UserID: user.ID, Rating: 2}
	if err := env.storage.Reviews.Create(env.ctx, second); !errors.Is(err, store.ErrDuplicateReview) {
		t.Fatalf("err = %v, want ErrDuplicateReview", err)
	}

	var count int
	if err := env.pool.QueryRow(env.ctx,
		`SELECT COUNT(*) FROM reviews WHERE book_id = $1 AND user_id = $2`,
		book.ID, user.ID,
	).Scan(&count); err != nil {
		t.Fatalf("count reviews: %v", err)
	}
	if count != 1 {
		t.Fatalf("review rows = %d, want 1", count)
	}

	// the failed insert must not have moved the aggregate
	stored := mustGetBook(t, env, book.ID)
	if stored.AverageRating != 5.0 || stored.ReviewCount != 1 {
		t.Fatalf("aggregate = {%v %d}, want {5.0 1}", stored.AverageRating, stored.ReviewCount)
	}
}

func TestReviewStore_MutationsKeepAggregateConsistent(t *testing.T) {
	env := newTestEnv(t)
	defer env.cleanup()

	ada := mustCreateUser(t, env, "Ada", "ada@example.com")
	chris := mustCreateUser(t, env, "Chris", "chris@example.com")
	book := mustCreateBook(t, env, "Clean Architecture")

	// no reviews yet
	stored := mustGetBook(t, env, book.ID)
	if stored.AverageRating != 0 || stored.ReviewCount != 0 {
		t.Fatalf("fresh book aggregate = {%v %d}, want {0 0}", stored.AverageRating, stored.ReviewCount)
	}

	adaReview := &store.Review{BookID: book.ID, UserID: ada.ID, Rating: 5}
	if err := env.storage.Reviews.Create(env.ctx, adaReview); err != nil {
		t.Fatalf("create ada review: %v", err)
	}
	chrisReview := &store.Review{BookID: book.ID, UserID: chris.ID, Rating: 3}
	if err := env.storage.Reviews.Create(env.ctx, chrisReview); err != nil {
		t.Fatalf("create chris review: %v", err)
	}

	stored = mustGetBook(t, env, book.ID)
	if stored.AverageRating != 4.0 || stored.ReviewCount != 2 {
		t.Fatalf("aggregate after creates = {%v %d}, want {4.0 2}", stored.AverageRating, stored.ReviewCount)
	}

	// ada drops her rating from 5 to 1
	newRating := 1
	if _, err := env.storage.Reviews.Update(env.ctx, adaReview.ID, &newRating, nil); err != nil {
		t.Fatalf("update review: %v", err)
	}

	stored = mustGetBook(t, env, book.ID)
	if stored.AverageRating != 2.0 || stored.ReviewCount != 2 {
		t.Fatalf("aggregate after update = {%v %d}, want {2.0 2}", stored.AverageRating, stored.ReviewCount)
	}

	if err := env.storage.Reviews.Delete(env.ctx, adaReview.ID); err != nil {
		t.Fatalf("delete ada review: %v", err)
	}
	if err := env.storage.Reviews.Delete(env.ctx, chrisReview.ID); err != nil {
		t.Fatalf("delete chris review: %v", err)
	}

	stored = mustGetBook(t, env, book.ID)
	if stored.AverageRating != 0 || stored.ReviewCount != 0 {
		t.Fatalf("aggregate after deletes = {%v %d}, want {0 0}", stored.AverageRating, stored.ReviewCount)
	}
}

func TestReviewStore_UpdateKeepsUntouchedFields(t *testing.T) {
	env := newTestEnv(t)
	defer env.cleanup()

	user := mustCreateUser(t, env, "Ada", "ada@example.com")
	book := mustCreateBook(t, env, "SICP")

	review := &store.Review{BookID: book.ID, UserID: user.ID, Rating: 4, Comment: "solid"}
	if err := env.storage.Reviews.Create(env.ctx, review); err != nil {
		t.Fatalf("create review: %v", err)
	}

	comment := "a classic"
	updated, err := env.storage.Reviews.Update(env.ctx, review.ID, nil, &comment)
	if err != nil {
		t.Fatalf("update review: %v", err)
	}
	if updated.Rating != 4 {
		t.Fatalf("rating = %d, want untouched 4", updated.Rating)
	}
	if updated.Comment != comment {
		t.Fatalf("comment = %q, want %q", updated.Comment, comment)
	}
}

func TestReviewStore_RecomputeIdempotentAtRest(t *testing.T) {
	env := newTestEnv(t)
	defer env.cleanup()

	user := mustCreateUser(t, env, "Ada", "ada@example.com")
	book := mustCreateBook(t, env, "TAOCP")

	for i, rating := range []int{5, 4, 4} {
		reviewer := user
		if i > 0 {
			reviewer = mustCreateUser(t, env, "Reader", fmt.Sprintf("reader%d@example.com", i))
		}
		review := &store.Review{BookID: book.ID, UserID: reviewer.ID, Rating: rating}
		if err := env.storage.Reviews.Create(env.ctx, review); err != nil {
			t.Fatalf("create review %d: %v", i, err)
		}
	}

	first := mustGetBook(t, env, book.ID)

	if _, err := env.engine.Recompute(env.ctx, book.ID); err != nil {
		t.Fatalf("explicit recompute: %v", err)
	}

	second := mustGetBook(t, env, book.ID)
	if first.AverageRating != second.AverageRating || first.ReviewCount != second.ReviewCount {
		t.Fatalf("aggregate drifted: {%v %d} vs {%v %d}",
			first.AverageRating, first.ReviewCount, second.AverageRating, second.ReviewCount)
	}

	want := float64(13) / 3
	if second.AverageRating != want {
		t.Fatalf("average = %v, want full-precision %v", second.AverageRating, want)
	}
}

func TestReviewStore_ErrorCases(t *testing.T) {
	env := newTestEnv(t)
	defer env.cleanup()

	user := mustCreateUser(t, env, "Ada", "ada@example.com")
	book := mustCreateBook(t, env, "Refactoring")

	// rating outside 1-5 is rejected before any write
	bad := &store.Review{BookID: book.ID, UserID: user.ID, Rating: 6}
	if err := env.storage.Reviews.Create(env.ctx, bad); !errors.Is(err, store.ErrInvalidRating) {
		t.Fatalf("err = %v, want ErrInvalidRating", err)
	}

	// review against a book that does not exist
	orphan := &store.Review{BookID: 999999, UserID: user.ID, Rating: 3}
	if err := env.storage.Reviews.Create(env.ctx, orphan); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	if err := env.storage.Reviews.Delete(env.ctx, 999999); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("delete err = %v, want ErrNotFound", err)
	}

	if _, err := env.storage.Reviews.Update(env.ctx, 999999, nil, nil); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("update err = %v, want ErrNotFound", err)
	}
}

func TestBookStore_SetRatingStatsMissingBook(t *testing.T) {
	env := newTestEnv(t)
	defer env.cleanup()

	err := env.storage.Books.SetRatingStats(env.ctx, 999999, 4.5, 2)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUsersStore_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	defer env.cleanup()

	mustCreateUser(t, env, "Ada", "ada@example.com")

	dup := &store.User{Name: "Other", Email: "ada@example.com"}
	if err := dup.Password.Set("secret-pass"); err != nil {
		t.Fatalf("set password: %v", err)
	}
	if err := env.storage.Users.Create(env.ctx, dup); !errors.Is(err, store.ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}
