// Package upload moves multipart image files through transient local
// storage into the S3 bucket that serves listing and profile pictures.
package upload

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MaxFileSize is the upload size cap in bytes (500 KB).
const MaxFileSize = 500000

// ImageStore uploads a local file and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, path, contentType string) (string, error)
}

// CheckFile validates an incoming image file header. The returned message
// is the field-level validation error for the "image" field, empty when the
// file is acceptable.
func CheckFile(fh *multipart.FileHeader) string {
	contentType := fh.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return "Invalid file format"
	}
	if fh.Size > MaxFileSize {
		return "File too large"
	}
	return ""
}

// SaveTemp writes the uploaded file into dir under a collision-free name
// and returns its path. The caller must Remove the file on every exit path.
func SaveTemp(dir string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := ".jpeg"
	if fh.Header.Get("Content-Type") == "image/png" {
		ext = ".png"
	}
	path := filepath.Join(dir, fmt.Sprintf("image-%d%s", time.Now().UnixNano(), ext))

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return path, nil
}

// Remove deletes a transient upload file, logging rather than failing the
// request when the file is already gone.
func Remove(path string) {
	if err := os.Remove(path); err != nil {
		log.Printf("remove %s: %v", path, err)
	}
}

// S3Store uploads images to an S3 bucket.
type S3Store struct {
	uploader *manager.Uploader
	bucket   string
}

var _ ImageStore = (*S3Store)(nil)

// NewS3Store builds an uploader from the default AWS config chain.
func NewS3Store(ctx context.Context, bucket string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Store{uploader: manager.NewUploader(client), bucket: bucket}, nil
}

// Upload sends the file to S3 and returns the object location.
func (s *S3Store) Upload(ctx context.Context, path, contentType string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(filepath.Base(path)),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	return result.Location, nil
}
