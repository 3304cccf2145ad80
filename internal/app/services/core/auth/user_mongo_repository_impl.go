package auth

import (
	"context"
	"sync"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type userMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

var (
	userMongoRepositoryInstance contracts.UserRepository
	onceUserMongoRepository     sync.Once
)

func NewUserMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.UserRepository {
	onceUserMongoRepository.Do(func() {
		userMongoRepositoryInstance = &userMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionUsers),
			Log:        logger,
		}
	})
	return userMongoRepositoryInstance
}

func (repo *userMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("userMongoRepository.FindByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	var user models.User
	err := repo.Collection.FindOne(ctx, bson.M{constvars.MongoFieldEmail: email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Log.Error("userMongoRepository.FindByEmail error finding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}
