package contracts

import (
	"context"
	"io"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
)

// AttachmentStorage is a blob store bound to one bucket at construction.
type AttachmentStorage interface {
	Bucket() string
	Put(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (string, error)
	Get(ctx context.Context, objectID string) (*models.AttachmentObject, error)
	// Delete reports a missing object with exceptions.ErrStorageObjectNotFound.
	Delete(ctx context.Context, objectID string) error
}
