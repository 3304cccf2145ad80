package patients

import (
	"context"
	"sync"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type patientMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

var (
	patientMongoRepositoryInstance contracts.PatientRepository
	oncePatientMongoRepository     sync.Once
)

func NewPatientMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.PatientRepository {
	oncePatientMongoRepository.Do(func() {
		patientMongoRepositoryInstance = &patientMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionPatients),
			Log:        logger,
		}
	})
	return patientMongoRepositoryInstance
}

func (repo *patientMongoRepository) FindByID(ctx context.Context, patientID primitive.ObjectID) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("patientMongoRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID.Hex()),
	)

	var patient models.Patient
	err := repo.Collection.FindOne(ctx, bson.M{constvars.MongoFieldID: patientID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Log.Error("patientMongoRepository.FindByID error finding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}
