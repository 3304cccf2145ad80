package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoDB connects to MongoDB and returns the application database.
// Transactions need a replica set or a sharded cluster.
func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Database {
	connectionString := driverConfig.MongoDB.URI
	if connectionString == "" {
		connectionString = buildMongoConnectionString(driverConfig)
	}

	timeout := time.Duration(driverConfig.MongoDB.ConnectTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	dbOptions := options.Client().ApplyURI(connectionString).SetConnectTimeout(timeout)
	if driverConfig.MongoDB.ReplicaSet != "" {
		dbOptions.SetReplicaSet(driverConfig.MongoDB.ReplicaSet)
	}
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client.Database(driverConfig.MongoDB.DbName)
}

func buildMongoConnectionString(driverConfig *config.DriverConfig) string {
	if driverConfig.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port)
	}
	return fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
}
