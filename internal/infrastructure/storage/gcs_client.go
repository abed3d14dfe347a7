// Package storage holds the Google Cloud Storage gateway behind file
// uploads (employee photos, aadhar scans).
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"clicknova_admin/internal/usecase/interfaces"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var ErrUnsupportedFileType = errors.New("unsupported file type")

// Uploads are restricted to the document and image types the admin forms
// actually produce.
var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// GCSClient uploads objects to one bucket and hands back their public URLs.
type GCSClient struct {
	client *gcs.Client
	bucket string
}

var _ interfaces.IObjectStorage = (*GCSClient)(nil)

// NewGCSClient connects with explicit JSON credentials when given one, and
// falls back to application default credentials otherwise.
func NewGCSClient(ctx context.Context, bucket, credentialsJSON string) (*GCSClient, error) {
	if bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	var client *gcs.Client
	var err error
	if strings.TrimSpace(credentialsJSON) != "" {
		client, err = gcs.NewClient(ctx, option.WithCredentialsJSON([]byte(credentialsJSON)))
	} else {
		client, err = gcs.NewClient(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &GCSClient{client: client, bucket: bucket}, nil
}

func (c *GCSClient) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if !allowedContentTypes[contentType] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}

	wc := c.client.Bucket(c.bucket).Object(objectName).NewWriter(ctx)
	wc.ContentType = contentType
	wc.Metadata = map[string]string{"x-goog-acl": "public-read"}

	if _, err := wc.Write(data); err != nil {
		// Close aborts the upload session once the write has failed.
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucket, objectName), nil
}

func (c *GCSClient) Delete(ctx context.Context, objectName string) error {
	err := c.client.Bucket(c.bucket).Object(objectName).Delete(ctx)
	// A missing object means the work is already done.
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return err
	}
	return nil
}

func (c *GCSClient) Close() error {
	return c.client.Close()
}
