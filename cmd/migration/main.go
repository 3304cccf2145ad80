package main

import (
	"context"
	"log"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/drivers/database"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/drivers/logger"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger := logger.NewZapLogger(driverConfig, internalConfig)
	defer logger.Sync()

	db := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	defer db.Client().Disconnect(context.Background())

	err := database.EnsureIndexes(ctx, db, logger)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Println("Applied index migration!")
}
