package reports

import (
	"context"
	"regexp"
	"sync"
	"time"

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

type reportMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

var (
	reportMongoRepositoryInstance contracts.ReportRepository
	onceReportMongoRepository     sync.Once
)

func NewReportMongoRepository(db *mongo.Database, logger *zap.Logger) contracts.ReportRepository {
	onceReportMongoRepository.Do(func() {
		reportMongoRepositoryInstance = &reportMongoRepository{
			Collection: db.Collection(constvars.MongoCollectionReports),
			Log:        logger,
		}
	})
	return reportMongoRepositoryInstance
}

func (repo *reportMongoRepository) Insert(ctx context.Context, report *models.Report) (primitive.ObjectID, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("reportMongoRepository.Insert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}

	_, err := repo.Collection.InsertOne(ctx, report)
	if err != nil {
		repo.Log.Error("reportMongoRepository.Insert error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return primitive.NilObjectID, exceptions.ErrMongoDBInsertDocument(err)
	}
	return report.ID, nil
}

func (repo *reportMongoRepository) FindByID(ctx context.Context, reportID primitive.ObjectID) (*models.Report, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("reportMongoRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID.Hex()),
	)

	var report models.Report
	err := repo.Collection.FindOne(ctx, bson.M{constvars.MongoFieldID: reportID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		repo.Log.Error("reportMongoRepository.FindByID error finding document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &report, nil
}

func (repo *reportMongoRepository) Find(ctx context.Context, filter *models.ReportFilter, page, pageSize int) ([]models.Report, int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("reportMongoRepository.Find called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
	)

	query := BuildReportFilter(filter)

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		repo.Log.Error("reportMongoRepository.Find error counting documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	if total == 0 {
		return []models.Report{}, 0, nil
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: constvars.MongoFieldReportCreatedAt, Value: -1},
			{Key: constvars.MongoFieldID, Value: -1},
		}).
		SetSkip(int64(page-1) * int64(pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.Collection.Find(ctx, query, opts)
	if err != nil {
		repo.Log.Error("reportMongoRepository.Find error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	reports := make([]models.Report, 0, pageSize)
	err = cursor.All(ctx, &reports)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}

	repo.Log.Info("reportMongoRepository.Find succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTotalKey, total),
	)
	return reports, total, nil
}

func (repo *reportMongoRepository) Replace(ctx context.Context, report *models.Report, expectedVersion int64) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("reportMongoRepository.Replace called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, report.ID.Hex()),
	)

	filter := bson.M{
		constvars.MongoFieldID:            report.ID,
		constvars.MongoFieldReportVersion: expectedVersion,
	}
	result, err := repo.Collection.ReplaceOne(ctx, filter, report)
	if err != nil {
		repo.Log.Error("reportMongoRepository.Replace error replacing document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (repo *reportMongoRepository) Archive(ctx context.Context, reportID primitive.ObjectID, archivedAt time.Time) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("reportMongoRepository.Archive called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID.Hex()),
	)

	filter := bson.M{
		constvars.MongoFieldID:           reportID,
		constvars.MongoFieldReportActive: true,
	}
	update := bson.M{
		constvars.MongoOperatorSet: bson.M{
			constvars.MongoFieldReportActive:      false,
			constvars.MongoFieldReportLastUpdated: archivedAt,
		},
		constvars.MongoOperatorInc: bson.M{constvars.MongoFieldReportVersion: 1},
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		repo.Log.Error("reportMongoRepository.Archive error updating document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (repo *reportMongoRepository) Delete(ctx context.Context, reportID primitive.ObjectID) (bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("reportMongoRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReportIDKey, reportID.Hex()),
	)

	result, err := repo.Collection.DeleteOne(ctx, bson.M{constvars.MongoFieldID: reportID})
	if err != nil {
		repo.Log.Error("reportMongoRepository.Delete error deleting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount == 1, nil
}

// BuildReportFilter translates a listing filter into a bson query. Text filters are
// case-insensitive substring matches on the literal input.
func BuildReportFilter(filter *models.ReportFilter) bson.M {
	query := bson.M{constvars.MongoFieldReportActive: filter.Active}

	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query[constvars.MongoOperatorOr] = bson.A{
			bson.M{constvars.MongoFieldReportStudentName: pattern},
			bson.M{constvars.MongoFieldReportPatientName: pattern},
			bson.M{constvars.MongoFieldReportTreatmentType: pattern},
			bson.M{constvars.MongoFieldReportStaffName: pattern},
		}
	}

	fields := []struct {
		name  string
		value string
	}{
		{constvars.MongoFieldReportStudentName, filter.StudentName},
		{constvars.MongoFieldReportPatientName, filter.PatientName},
		{constvars.MongoFieldReportTreatmentType, filter.TreatmentType},
		{constvars.MongoFieldReportStaffName, filter.StaffName},
	}
	for _, field := range fields {
		if field.value != "" {
			query[field.name] = containsPattern(field.value)
		}
	}

	if filter.CreatedFrom != nil || filter.CreatedUntil != nil {
		createdAt := bson.M{}
		if filter.CreatedFrom != nil {
			createdAt[constvars.MongoOperatorGte] = *filter.CreatedFrom
		}
		if filter.CreatedUntil != nil {
			createdAt[constvars.MongoOperatorLt] = *filter.CreatedUntil
		}
		query[constvars.MongoFieldReportCreatedAt] = createdAt
	}

	if filter.StudentIDs != nil {
		query[constvars.MongoFieldReportStudentID] = bson.M{constvars.MongoOperatorIn: filter.StudentIDs}
	}

	return query
}

func containsPattern(value string) bson.M {
	return bson.M{
		constvars.MongoOperatorRegex:   regexp.QuoteMeta(value),
		constvars.MongoOperatorOptions: "i",
	}
}
