package handler

import (
	"context"
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"selli/internal/upload"
)

// imageFile is an optional multipart "image" upload attached to an ad
// creation or profile update.
type imageFile struct {
	header *multipart.FileHeader
}

// optionalImage pulls the multipart "image" file header if one was sent.
// A JSON request simply has no image.
func optionalImage(c echo.Context) *imageFile {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil {
		return nil
	}
	return &imageFile{header: fh}
}

// check validates format and size, returning the field-level message for
// the "image" error key, or "" when acceptable.
func (f *imageFile) check() string {
	if f == nil {
		return ""
	}
	return upload.CheckFile(f.header)
}

// store writes the file to transient local storage, pushes it to the image
// store and returns the public URL. The temp file is removed on every exit
// path, success or failure.
func (f *imageFile) store(ctx context.Context, dir string, images upload.ImageStore) (string, error) {
	path, err := upload.SaveTemp(dir, f.header)
	if err != nil {
		return "", err
	}
	defer upload.Remove(path)

	return images.Upload(ctx, path, f.header.Header.Get("Content-Type"))
}
