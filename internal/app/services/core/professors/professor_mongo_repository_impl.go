package professors

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

type professorMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

var (
	professorMongoRepositoryInstance contracts.ProfessorRepository
	onceProfessorMongoRepository     sync.Once
)

func NewProfessorMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.ProfessorRepository {
	onceProfessorMongoRepository.Do(func() {
		professorMongoRepositoryInstance = &professorMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionProfessors),
			Log:        logger,
		}
	})
	return professorMongoRepositoryInstance
}

func (repo *professorMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Professor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("professorMongoRepository.FindByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	var professor models.Professor
	err := repo.Collection.FindOne(ctx, bson.M{constvars.MongoFieldEmail: email}).Decode(&professor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Log.Error("professorMongoRepository.FindByEmail error finding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &professor, nil
}
