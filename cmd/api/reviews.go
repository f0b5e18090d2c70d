package main

import (
	"errors"
	"net/http"
	"strconv"

	"shelf/internal/store"

	"github.com/go-chi/chi/v5"
)

type createReviewPayload struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// createBookReviewHandler godoc
//
//	@Summary		Submits a review
//	@Description	Creates the caller's review for a book; a user may hold at most one review per book
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			bookID	path		int					true	"Book ID"
//	@Param			payload	body		createReviewPayload	true	"Rating and comment"
//	@Success		201		{object}	store.Review		"Review created"
//	@Failure		400		{object}	error				"Bad request"
//	@Failure		404		{object}	error				"Book not found"
//	@Failure		409		{object}	error				"User already reviewed this book"
//	@Failure		500		{object}	error				"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/books/{bookID}/reviews [post]
func (app *application) createBookReviewHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid book ID"))
		return
	}

	var payload createReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := getUserFromContext(r)

	review := &store.Review{
		BookID:  bookID,
		UserID:  user.ID,
		Rating:  payload.Rating,
		Comment: payload.Comment,
	}

	if err := app.store.Reviews.Create(r.Context(), review); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateReview):
			app.conflictResponse(w, r, err)
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, store.ErrInvalidRating):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getBookReviewsHandler godoc
//
//	@Summary		Lists a book's reviews
//	@Description	Returns all reviews for a book together with its stored rating stats
//	@Tags			reviews
//	@Produce		json
//	@Param			bookID	path		int	true	"Book ID"
//	@Success		200		{object}	map[string]interface{}	"Reviews and stats"
//	@Failure		400		{object}	error					"Bad request"
//	@Failure		404		{object}	error					"Book not found"
//	@Failure		500		{object}	error					"Internal Server Error"
//	@Router			/books/{bookID}/reviews [get]
func (app *application) getBookReviewsHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid book ID"))
		return
	}

	book, err := app.store.Books.GetByID(r.Context(), bookID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	reviews, err := app.store.Reviews.ListByBook(r.Context(), bookID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// The stats come off the book row, maintained by the aggregation engine.
	response := map[string]interface{}{
		"reviews":        reviews,
		"review_count":   book.ReviewCount,
		"average_rating": book.AverageRating,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

type updateReviewPayload struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

// updateBookReviewHandler godoc
//
//	@Summary		Edits a review
//	@Description	Updates the rating and/or comment of the caller's own review
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			bookID		path		int					true	"Book ID"
//	@Param			reviewID	path		int					true	"Review ID"
//	@Param			payload		body		updateReviewPayload	true	"Fields to change"
//	@Success		200			{object}	store.Review		"Updated review"
//	@Failure		400			{object}	error				"Bad request"
//	@Failure		403			{object}	error				"Not the review owner"
//	@Failure		404			{object}	error				"Review not found"
//	@Failure		500			{object}	error				"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/books/{bookID}/reviews/{reviewID} [patch]
func (app *application) updateBookReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	var payload updateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review, err := app.store.Reviews.GetByID(r.Context(), reviewID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	user := getUserFromContext(r)
	if review.UserID != user.ID {
		app.forbiddenResponse(w, r)
		return
	}

	updated, err := app.store.Reviews.Update(r.Context(), reviewID, payload.Rating, payload.Comment)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, store.ErrInvalidRating):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, updated); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteBookReviewHandler godoc
//
//	@Summary		Deletes a review
//	@Description	Removes the caller's own review from a book
//	@Tags			reviews
//	@Produce		json
//	@Param			bookID		path		int	true	"Book ID"
//	@Param			reviewID	path		int	true	"Review ID"
//	@Success		200			{object}	map[string]string	"Review deleted"
//	@Failure		400			{object}	error				"Bad request"
//	@Failure		403			{object}	error				"Not the review owner"
//	@Failure		404			{object}	error				"Review not found"
//	@Failure		500			{object}	error				"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/books/{bookID}/reviews/{reviewID} [delete]
func (app *application) deleteBookReviewHandler(w http.ResponseWriter, r *http.Request) {
	reviewID, err := strconv.ParseInt(chi.URLParam(r, "reviewID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid review ID"))
		return
	}

	review, err := app.store.Reviews.GetByID(r.Context(), reviewID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	user := getUserFromContext(r)
	if review.UserID != user.ID {
		app.forbiddenResponse(w, r)
		return
	}

	if err := app.store.Reviews.Delete(r.Context(), reviewID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "review deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
