package main

import (
	"errors"
	"net/http"
	"strconv"

	"shelf/internal/store"

	"github.com/go-chi/chi/v5"
)

type createBookPayload struct {
	Title       string `json:"title" validate:"required,max=255"`
	Author      string `json:"author" validate:"required,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

// createBookHandler godoc
//
//	@Summary		Adds a book to the catalog
//	@Description	Creates a book with title, author and optional description
//	@Tags			books
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createBookPayload	true	"Book fields"
//	@Success		201		{object}	store.Book			"Book created"
//	@Failure		400		{object}	error				"Bad request"
//	@Failure		500		{object}	error				"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/books [post]
func (app *application) createBookHandler(w http.ResponseWriter, r *http.Request) {
	var payload createBookPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	book := &store.Book{
		Title:       payload.Title,
		Author:      payload.Author,
		Description: payload.Description,
	}

	if err := app.store.Books.Create(r.Context(), book); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, book); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listBooksHandler godoc
//
//	@Summary		Lists the catalog
//	@Description	Returns all books, newest first, with their current rating stats
//	@Tags			books
//	@Produce		json
//	@Success		200	{array}		store.Book	"Books"
//	@Failure		500	{object}	error		"Internal Server Error"
//	@Router			/books [get]
func (app *application) listBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := app.store.Books.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, books); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getBookHandler godoc
//
//	@Summary		Fetches a book
//	@Description	Returns a single book with its current rating stats
//	@Tags			books
//	@Produce		json
//	@Param			bookID	path		int			true	"Book ID"
//	@Success		200		{object}	store.Book	"Book"
//	@Failure		400		{object}	error		"Bad request"
//	@Failure		404		{object}	error		"Not found"
//	@Failure		500		{object}	error		"Internal Server Error"
//	@Router			/books/{bookID} [get]
func (app *application) getBookHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := app.jsonResponse(w, http.StatusOK, book); err != nil {
		app.internalServerError(w, r, err)
	}
}

// uploadBookCoverHandler godoc
//
//	@Summary		Uploads a book cover
//	@Description	Uploads a cover image to Cloudinary and stores its URL on the book
//	@Tags			books
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			bookID	path		int		true	"Book ID"
//	@Param			cover	formData	file	true	"Cover image"
//	@Success		200		{object}	map[string]string	"Cover URL"
//	@Failure		400		{object}	error				"Bad request"
//	@Failure		404		{object}	error				"Not found"
//	@Failure		500		{object}	error				"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/books/{bookID}/cover [post]
func (app *application) uploadBookCoverHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(chi.URLParam(r, "bookID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid book ID"))
		return
	}

	const maxBytes = 10 * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	file, _, err := r.FormFile("cover")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("cover file is required"))
		return
	}
	defer file.Close()

	url, err := app.uploadCoverToCloudinary(file, bookID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Books.SetCoverURL(r.Context(), bookID, url); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"cover_url": url}); err != nil {
		app.internalServerError(w, r, err)
	}
}
