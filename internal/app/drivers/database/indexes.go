package database

import (
	"context"
	"fmt"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// IndexPlan lists the indexes each collection needs, keyed by collection name.
func IndexPlan() map[string][]mongo.IndexModel {
	uniqueEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: constvars.MongoFieldEmail, Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	return map[string][]mongo.IndexModel{
		constvars.MongoCollectionReports: {
			// Matches the listing sort so pagination never needs an in-memory sort.
			{Keys: bson.D{{Key: constvars.MongoFieldReportCreatedAt, Value: -1}, {Key: constvars.MongoFieldID, Value: -1}}},
			{Keys: bson.D{{Key: constvars.MongoFieldReportStudentID, Value: 1}}},
			{Keys: bson.D{{Key: constvars.MongoFieldReportActive, Value: 1}}},
		},
		constvars.MongoCollectionStudents: {
			uniqueEmail,
			{Keys: bson.D{{Key: constvars.MongoFieldProfessorID, Value: 1}}},
		},
		constvars.MongoCollectionProfessors: {uniqueEmail},
		constvars.MongoCollectionUsers:      {uniqueEmail},
	}
}

func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	for collection, models := range IndexPlan() {
		err := utils.LogOperation(ctx, logger, "EnsureIndexes."+collection, func(ctx context.Context) error {
			names, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
			if err != nil {
				return fmt.Errorf("creating indexes on %s: %w", collection, err)
			}
			logger.Info("Indexes ensured",
				zap.String(constvars.LoggingCollectionKey, collection),
				zap.Strings(constvars.LoggingIndexesKey, names),
			)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
