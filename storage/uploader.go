package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const jsonContentType = "application/json"

// UploadResult describes one stored object of a snapshot.
type UploadResult struct {
	Key      string `json:"key"`
	Location string `json:"location,omitempty"`
	ETag     string `json:"etag,omitempty"`
	Size     int64  `json:"size"`
}

// FileUploader is the object store the archiver writes to.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

// uploadJSON marshals v and stores it under key.
func uploadJSON(ctx context.Context, u FileUploader, key string, v any) (*UploadResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	res, err := u.Upload(ctx, key, jsonContentType, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	res.Size = int64(len(data))
	return res, nil
}

// deleteUploaded removes the objects of a partial snapshot. Nil results are skipped.
func deleteUploaded(ctx context.Context, u FileUploader, results ...*UploadResult) error {
	var errs []error
	for _, res := range results {
		if res == nil {
			continue
		}
		if err := u.Delete(ctx, res.Key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
