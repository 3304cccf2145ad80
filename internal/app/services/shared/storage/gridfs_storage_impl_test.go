package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.uber.org/zap"
)

func TestGridFSStorage_TranslateError(t *testing.T) {
	storage := &gridfsStorage{BucketName: "relatorios", Log: zap.NewNop()}

	err := storage.translateError(gridfs.ErrFileNotFound, "663e1f4b2f8e4a0012345678", exceptions.ErrStorageDeleteObject)
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))

	err = storage.translateError(fmt.Errorf("open stream: %w", gridfs.ErrFileNotFound), "663e1f4b2f8e4a0012345678", exceptions.ErrStorageGetObject)
	assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))

	err = storage.translateError(errors.New("server selection timeout"), "663e1f4b2f8e4a0012345678", exceptions.ErrStorageGetObject)
	assert.Equal(t, constvars.StatusInternalServerError, exceptions.StatusCodeOf(err))
}

func TestMetadataContentType(t *testing.T) {
	raw := func(doc bson.M) bson.Raw {
		data, err := bson.Marshal(doc)
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, "image/png", metadataContentType(raw(bson.M{gridfsMetadataContentType: "image/png"})))
	assert.Equal(t, constvars.MIMEOctetStream, metadataContentType(raw(bson.M{gridfsMetadataContentType: ""})))
	assert.Equal(t, constvars.MIMEOctetStream, metadataContentType(raw(bson.M{"other": "x"})))
	assert.Equal(t, constvars.MIMEOctetStream, metadataContentType(raw(bson.M{gridfsMetadataContentType: 42})))
	assert.Equal(t, constvars.MIMEOctetStream, metadataContentType(nil))
}
