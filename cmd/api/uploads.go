package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Images land in one of these Cloudinary folders depending on what they
// are attached to.
var uploadFolders = map[string]bool{
	"venues":   true,
	"reviews":  true,
	"receipts": true,
}

const maxUploadSize = 10 << 20 // 10mb

// uploadToCloudinary uploads a file under a generated public ID so repeat
// uploads never clobber each other.
func (app *application) uploadToCloudinary(r *http.Request, file io.Reader, folder string) (string, error) {
	publicID := fmt.Sprintf("%s_%s", folder, uuid.NewString())

	resp, err := app.cld.Upload.Upload(
		r.Context(),
		file,
		uploader.UploadParams{
			Folder:    folder,
			PublicID:  publicID,
			Overwrite: api.Bool(false),
		},
	)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return resp.SecureURL, nil
}

// uploadImageHandler godoc
//
//	@Summary		Upload an image
//	@Description	Uploads an image to Cloudinary and returns its URL. The folder form field picks the destination: venues, reviews or receipts.
//	@Tags			uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			folder	formData	string						true	"Destination folder"
//	@Param			image	formData	file						true	"Image file"
//	@Success		201		{object}	map[string]string			"Uploaded image URL"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/uploads [post]
func (app *application) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("could not parse multipart form: %w", err))
		return
	}

	folder := r.FormValue("folder")
	if !uploadFolders[folder] {
		app.badRequestResponse(w, r, fmt.Errorf("invalid folder: %s", folder))
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("image file is missing: %w", err))
		return
	}
	defer file.Close()

	url, err := app.uploadToCloudinary(r, file, folder)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"url": url}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) deleteFromCloudinary(r *http.Request, imageURL string) error {
	publicID, err := extractPublicIDFromURL(imageURL)
	if err != nil {
		return err
	}

	_, err = app.cld.Upload.Destroy(r.Context(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}

// extractPublicIDFromURL recovers the public ID from a Cloudinary
// delivery URL: everything after the /upload/<version>/ segments.
func extractPublicIDFromURL(imageURL string) (string, error) {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}

	parts := strings.Split(parsed.Path, "/")
	for i, part := range parts {
		if part != "upload" || i+1 >= len(parts) {
			continue
		}
		rest := parts[i+1:]
		if len(rest) > 1 && isVersionSegment(rest[0]) {
			rest = rest[1:]
		}
		publicID := strings.Join(rest, "/")
		if ext := strings.LastIndex(publicID, "."); ext > 0 {
			publicID = publicID[:ext]
		}
		return publicID, nil
	}

	return "", errors.New("failed to extract public ID from URL")
}

// isVersionSegment reports whether a path segment looks like a
// Cloudinary version marker ("v" followed by digits only).
func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// deleteImageHandler godoc
//
//	@Summary		Delete an uploaded image
//	@Description	Deletes a previously uploaded image from Cloudinary by its delivery URL.
//	@Tags			uploads
//	@Produce		json
//	@Param			url	query		string						true	"Image URL to delete"
//	@Success		200	{object}	map[string]bool				"Deletion result"
//	@Failure		400	{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500	{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/uploads [delete]
func (app *application) deleteImageHandler(w http.ResponseWriter, r *http.Request) {
	imageURL := r.URL.Query().Get("url")
	if imageURL == "" {
		app.badRequestResponse(w, r, errors.New("url query parameter is required"))
		return
	}

	if err := app.deleteFromCloudinary(r, imageURL); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]bool{"deleted": true}); err != nil {
		app.internalServerError(w, r, err)
	}
}
