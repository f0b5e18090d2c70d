package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// uploadCoverToCloudinary uploads a cover image with a controlled public ID
// so re-uploads never collide.
func (app *application) uploadCoverToCloudinary(file io.Reader, bookID int64) (string, error) {
	publicID := fmt.Sprintf("book_%d_cover_%s", bookID, uuid.New().String())

	resp, err := app.cld.Upload.Upload(
		context.Background(), // external call, not tied to the request context
		file,
		uploader.UploadParams{
			Folder:    "covers",
			PublicID:  publicID,
			Overwrite: api.Bool(false),
		},
	)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}
