package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const gridfsMetadataContentType = "contentType"

type gridfsStorage struct {
	DB         *mongo.Database
	BucketName string
	Log        *zap.Logger
}

func NewGridFSStorage(db *mongo.Database, bucketName string, logger *zap.Logger) (contracts.AttachmentStorage, error) {
	if _, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName)); err != nil {
		return nil, err
	}
	return &gridfsStorage{
		DB:         db,
		BucketName: bucketName,
		Log:        logger,
	}, nil
}

func (g *gridfsStorage) Bucket() string {
	return g.BucketName
}

func (g *gridfsStorage) Put(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("gridfsStorage.Put called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, g.BucketName),
		zap.String(constvars.LoggingFileNameKey, filename),
		zap.Int64(constvars.LoggingSizeKey, size),
	)

	contentType = contentTypeOrDefault(contentType)

	bucket, err := g.openBucket(ctx)
	if err != nil {
		return "", exceptions.ErrStoragePutObject(err, g.BucketName)
	}
	uploadOptions := options.GridFSUpload().SetMetadata(bson.M{gridfsMetadataContentType: contentType})
	fileID, err := bucket.UploadFromStream(filename, reader, uploadOptions)
	if err != nil {
		g.Log.Error("gridfsStorage.Put error uploading stream",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrStoragePutObject(err, g.BucketName)
	}

	return fileID.Hex(), nil
}

func (g *gridfsStorage) Get(ctx context.Context, objectID string) (*models.AttachmentObject, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("gridfsStorage.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttachmentIDKey, objectID),
	)

	fileID, err := primitive.ObjectIDFromHex(objectID)
	if err != nil {
		return nil, exceptions.ErrStorageObjectNotFound(err, objectID, g.BucketName)
	}

	bucket, err := g.openBucket(ctx)
	if err != nil {
		return nil, exceptions.ErrStorageGetObject(err, g.BucketName)
	}
	stream, err := bucket.OpenDownloadStream(fileID)
	if err != nil {
		return nil, g.translateError(err, objectID, exceptions.ErrStorageGetObject)
	}

	file := stream.GetFile()
	return &models.AttachmentObject{
		ID:          objectID,
		Filename:    file.Name,
		ContentType: metadataContentType(file.Metadata),
		Size:        file.Length,
		Reader:      stream,
	}, nil
}

func (g *gridfsStorage) Delete(ctx context.Context, objectID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("gridfsStorage.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAttachmentIDKey, objectID),
	)

	fileID, err := primitive.ObjectIDFromHex(objectID)
	if err != nil {
		return exceptions.ErrStorageObjectNotFound(err, objectID, g.BucketName)
	}

	bucket, err := g.openBucket(ctx)
	if err != nil {
		return exceptions.ErrStorageDeleteObject(err, g.BucketName)
	}
	err = bucket.Delete(fileID)
	if err != nil {
		return g.translateError(err, objectID, exceptions.ErrStorageDeleteObject)
	}
	return nil
}

func (g *gridfsStorage) translateError(err error, objectID string, fallback func(error, string) *exceptions.CustomError) error {
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return exceptions.ErrStorageObjectNotFound(err, objectID, g.BucketName)
	}
	return fallback(err, g.BucketName)
}

// metadataContentType reads the type stored by Put. Files uploaded by other
// tools carry no metadata and fall back to octet-stream.
func metadataContentType(metadata bson.Raw) string {
	if metadata == nil {
		return constvars.MIMEOctetStream
	}
	value, ok := metadata.Lookup(gridfsMetadataContentType).StringValueOK()
	if !ok {
		return constvars.MIMEOctetStream
	}
	return contentTypeOrDefault(value)
}

// openBucket builds a bucket per call. The gridfs API has no context parameters,
// so the request deadline is carried through the bucket deadlines, which are not
// safe to share between concurrent requests.
func (g *gridfsStorage) openBucket(ctx context.Context) (*gridfs.Bucket, error) {
	bucket, err := gridfs.NewBucket(g.DB, options.GridFSBucket().SetName(g.BucketName))
	if err != nil {
		return nil, err
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := bucket.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	if err := bucket.SetWriteDeadline(deadline); err != nil {
		return nil, err
	}
	return bucket, nil
}
