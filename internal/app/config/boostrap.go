package config

import (
	"context"
	"errors"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Database
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

// Shutdown closes every driver that was opened, Redis and RabbitMQ only when
// enabled. A failing driver does not stop the others from closing.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	var errs []error
	closeDriver := func(name string, closeFn func() error) {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
			log.Printf("Failed to close %s: %v", name, err)
			return
		}
		log.Printf("Successfully closing %s", name)
	}

	if b.Redis != nil {
		closeDriver("Redis", b.Redis.Close)
	}
	if b.RabbitMQ != nil && !b.RabbitMQ.IsClosed() {
		closeDriver("RabbitMQ", b.RabbitMQ.Close)
	}
	if b.MongoDB != nil {
		closeDriver("MongoDB", func() error { return b.MongoDB.Client().Disconnect(ctx) })
	}

	// Sync fails with EINVAL on stdout for some platforms.
	if b.Logger != nil {
		b.Logger.Sync()
	}
	return errors.Join(errs...)
}
