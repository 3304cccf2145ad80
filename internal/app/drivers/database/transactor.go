package database

import (
	"context"
	"errors"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type mongoTransactor struct {
	client *mongo.Client
	Log    *zap.Logger
}

func NewMongoTransactor(db *mongo.Database, logger *zap.Logger) contracts.Transactor {
	return &mongoTransactor{
		client: db.Client(),
		Log:    logger,
	}
}

// WithTransaction runs fn through mongo.Session.WithTransaction, which retries fn on
// TransientTransactionError and retries the commit on UnknownTransactionCommitResult.
func (t *mongoTransactor) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := t.client.StartSession()
	if err != nil {
		t.Log.Error("mongoTransactor.WithTransaction error starting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	attempt := 0
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		attempt++
		if attempt > 1 {
			t.Log.Warn("mongoTransactor.WithTransaction retrying transaction",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int(constvars.LoggingAttemptKey, attempt),
			)
		}
		return nil, fn(sessCtx)
	})
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return customErr
		}
		t.Log.Error("mongoTransactor.WithTransaction transaction failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBTransaction(err)
	}

	return nil
}
