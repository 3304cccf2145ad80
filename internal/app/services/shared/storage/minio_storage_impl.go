package storage

import (
	"context"
	"io"
	"strings"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	minioMetadataFilename = "filename"
	minioErrNoSuchKey     = "NoSuchKey"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.AttachmentStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

func (m *minioStorage) Bucket() string {
	return m.BucketName
}

// Put stores the blob under a fresh uuid object name and keeps the display name as
// user metadata. size may be -1 when unknown.
func (m *minioStorage) Put(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("minioStorage.Put called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, m.BucketName),
		zap.String(constvars.LoggingFileNameKey, filename),
		zap.Int64(constvars.LoggingSizeKey, size),
	)

	contentType = contentTypeOrDefault(contentType)

	objectName := utils.GenerateObjectName()
	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{minioMetadataFilename: filename},
	})
	if err != nil {
		m.Log.Error("minioStorage.Put error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrStoragePutObject(err, m.BucketName)
	}

	return objectName, nil
}

func (m *minioStorage) Get(ctx context.Context, objectID string) (*models.AttachmentObject, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("minioStorage.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttachmentIDKey, objectID),
	)

	object, err := m.MinioClient.GetObject(ctx, m.BucketName, objectID, minio.GetObjectOptions{})
	if err != nil {
		return nil, m.translateError(err, objectID, exceptions.ErrStorageGetObject)
	}

	info, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, m.translateError(err, objectID, exceptions.ErrStorageGetObject)
	}

	return &models.AttachmentObject{
		ID:          objectID,
		Filename:    userMetadataValue(info.UserMetadata, minioMetadataFilename, objectID),
		ContentType: contentTypeOrDefault(info.ContentType),
		Size:        info.Size,
		Reader:      object,
	}, nil
}

// Delete stats the object first because RemoveObject succeeds on missing keys.
func (m *minioStorage) Delete(ctx context.Context, objectID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("minioStorage.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttachmentIDKey, objectID),
	)

	_, err := m.MinioClient.StatObject(ctx, m.BucketName, objectID, minio.StatObjectOptions{})
	if err != nil {
		return m.translateError(err, objectID, exceptions.ErrStorageDeleteObject)
	}

	err = m.MinioClient.RemoveObject(ctx, m.BucketName, objectID, minio.RemoveObjectOptions{})
	if err != nil {
		return m.translateError(err, objectID, exceptions.ErrStorageDeleteObject)
	}
	return nil
}

func (m *minioStorage) translateError(err error, objectID string, fallback func(error, string) *exceptions.CustomError) error {
	if minio.ToErrorResponse(err).Code == minioErrNoSuchKey {
		return exceptions.ErrStorageObjectNotFound(err, objectID, m.BucketName)
	}
	return fallback(err, m.BucketName)
}

func contentTypeOrDefault(contentType string) string {
	if strings.TrimSpace(contentType) == "" {
		return constvars.MIMEOctetStream
	}
	return contentType
}

func userMetadataValue(metadata map[string]string, key, fallback string) string {
	for k, v := range metadata {
		if strings.EqualFold(k, key) && v != "" {
			return v
		}
	}
	return fallback
}
