package storage

import (
	"errors"
	"testing"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMinioStorage_TranslateError(t *testing.T) {
	storage := &minioStorage{BucketName: "relatorios", Log: zap.NewNop()}

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "missing key", err: minio.ErrorResponse{Code: "NoSuchKey", Key: "obj-1"}, status: constvars.StatusNotFound},
		{name: "access denied", err: minio.ErrorResponse{Code: "AccessDenied"}, status: constvars.StatusInternalServerError},
		{name: "transport failure", err: errors.New("connection refused"), status: constvars.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := storage.translateError(tt.err, "obj-1", exceptions.ErrStorageGetObject)

			assert.Equal(t, tt.status, exceptions.StatusCodeOf(err))
			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, tt.err, customErr.Unwrap())
		})
	}
}

func TestUserMetadataValue(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]string
		want     string
	}{
		{name: "exact key", metadata: map[string]string{"filename": "laudo.pdf"}, want: "laudo.pdf"},
		{name: "canonicalized header key", metadata: map[string]string{"Filename": "laudo.pdf"}, want: "laudo.pdf"},
		{name: "empty value", metadata: map[string]string{"Filename": ""}, want: "obj-1"},
		{name: "no metadata", metadata: nil, want: "obj-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMetadataValue(tt.metadata, minioMetadataFilename, "obj-1"))
		})
	}
}

func TestContentTypeOrDefault(t *testing.T) {
	assert.Equal(t, constvars.MIMEOctetStream, contentTypeOrDefault(""))
	assert.Equal(t, constvars.MIMEOctetStream, contentTypeOrDefault("  "))
	assert.Equal(t, "application/pdf", contentTypeOrDefault("application/pdf"))
}
