package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient dials Redis for report edit locks and exits when it is unreachable.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis at %s: %v", client.Options().Addr, err)
	}

	log.Printf("Successfully connected to redis db %d", driverConfig.Redis.DB)
	return client
}
