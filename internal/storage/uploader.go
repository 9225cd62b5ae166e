// Package storage uploads listing images to a Google Cloud Storage bucket
// and hands back publicly resolvable URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

type Uploader struct {
	client *gcs.Client
	bucket string
}

// NewUploader creates a GCS-backed uploader. Extra client options (e.g.
// explicit credentials) are passed through.
func NewUploader(ctx context.Context, bucket string, opts ...option.ClientOption) (*Uploader, error) {
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Uploader{client: client, bucket: bucket}, nil
}

// UploadListingImage stores the image under listings/ with a random filename
// and returns its public URL. The original filename only contributes its
// extension.
func (u *Uploader) UploadListingImage(ctx context.Context, r io.Reader, origName, contentType string) (string, error) {
	ext := strings.ToLower(path.Ext(origName))
	objectPath := fmt.Sprintf("listings/%s%s", uuid.NewString(), ext)
	token := uuid.NewString()

	w := u.client.Bucket(u.bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{
		"firebaseStorageDownloadTokens": token,
	}
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	escapedPath := url.PathEscape(objectPath)
	publicURL := fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		u.bucket, escapedPath, token)
	return publicURL, nil
}

func (u *Uploader) Close() error {
	return u.client.Close()
}
