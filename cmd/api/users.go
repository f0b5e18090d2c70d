package main

import (
	"net/http"

	"shelf/internal/store"
)

type userKey string

const userCtx userKey = "user"

func getUserFromContext(r *http.Request) *store.User {
	user, _ := r.Context().Value(userCtx).(*store.User)
	return user
}

// getCurrentUserHandler godoc
//
//	@Summary		Get the authenticated user
//	@Description	Returns the profile of the user owning the access token
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	store.User	"Current user"
//	@Failure		401	{object}	error		"Unauthorized"
//	@Security		ApiKeyAuth
//	@Router			/users/me [get]
func (app *application) getCurrentUserHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if err := app.jsonResponse(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}
