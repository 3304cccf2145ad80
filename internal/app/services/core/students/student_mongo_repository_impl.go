package students

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
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type studentMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

var (
	studentMongoRepositoryInstance contracts.StudentRepository
	onceStudentMongoRepository     sync.Once
)

func NewStudentMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.StudentRepository {
	onceStudentMongoRepository.Do(func() {
		studentMongoRepositoryInstance = &studentMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionStudents),
			Log:        logger,
		}
	})
	return studentMongoRepositoryInstance
}

func (repo *studentMongoRepository) FindByID(ctx context.Context, studentID primitive.ObjectID) (*models.Student, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("studentMongoRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudentIDKey, studentID.Hex()),
	)

	return repo.findOne(ctx, bson.M{constvars.MongoFieldID: studentID})
}

func (repo *studentMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("studentMongoRepository.FindByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	return repo.findOne(ctx, bson.M{constvars.MongoFieldEmail: email})
}

func (repo *studentMongoRepository) FindIDsByProfessorID(ctx context.Context, professorID primitive.ObjectID) ([]primitive.ObjectID, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("studentMongoRepository.FindIDsByProfessorID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfessorIDKey, professorID.Hex()),
	)

	opts := options.Find().SetProjection(bson.M{constvars.MongoFieldID: 1})
	cursor, err := repo.Collection.Find(ctx, bson.M{constvars.MongoFieldProfessorID: professorID}, opts)
	if err != nil {
		repo.Log.Error("studentMongoRepository.FindIDsByProfessorID error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err = cursor.All(ctx, &rows)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids, nil
}

func (repo *studentMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Student, error) {
	var student models.Student
	err := repo.Collection.FindOne(ctx, filter).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &student, nil
}
