package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/config"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/delivery/http/controllers"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/delivery/http/middlewares"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/delivery/http/routers"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/drivers/database"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/drivers/logger"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/drivers/messaging"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/drivers/storage"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/core/auth"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/core/patients"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/core/professors"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/core/reports"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/core/students"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/shared/events"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/shared/jwtmanager"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/shared/locker"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/shared/rbac"
	redisRepository "github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/shared/redis"
	attachmentStorage "github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/services/shared/storage"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        database.NewMongoDB(driverConfig),
		Logger:         logger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server listening",
			zap.String(constvars.LoggingAddressKey, server.Addr),
			zap.String(constvars.LoggingStorageDriverKey, internalConfig.Storage.Driver),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	// Shared
	tokenManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		return err
	}

	lockerService := locker.NewNoopLocker()
	if bootstrap.Redis != nil {
		lockerService = locker.NewLockService(redisRepository.NewRedisRepository(bootstrap.Redis), bootstrap.Logger)
	}

	eventPublisher := events.NewNoopPublisher()
	if bootstrap.RabbitMQ != nil {
		eventPublisher, err = events.NewReportEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.Events.ReportQueue, bootstrap.Logger)
		if err != nil {
			return err
		}
	}

	reportStorage, err := newAttachmentStorage(bootstrap)
	if err != nil {
		return err
	}

	transactor := database.NewMongoTransactor(bootstrap.MongoDB, bootstrap.Logger)

	// Lookups
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.Logger)
	studentMongoRepository := students.NewStudentMongoRepository(bootstrap.MongoDB, bootstrap.Logger)
	professorMongoRepository := professors.NewProfessorMongoRepository(bootstrap.MongoDB, bootstrap.Logger)

	// Auth
	userMongoRepository := auth.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.Logger)
	identityResolver := auth.NewIdentityResolver(tokenManager, professorMongoRepository, studentMongoRepository, bootstrap.Logger)
	authUseCase := auth.NewAuthUsecase(userMongoRepository, tokenManager, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUseCase)

	// Middlewares
	enforcer, err := rbac.NewEnforcer(routers.ReportPermissions(bootstrap.InternalConfig))
	if err != nil {
		return err
	}
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, identityResolver, enforcer, bootstrap.InternalConfig)

	// Report
	reportMongoRepository := reports.NewReportMongoRepository(bootstrap.MongoDB, bootstrap.Logger)
	reportUseCase := reports.NewReportUsecase(
		reportMongoRepository,
		patientMongoRepository,
		studentMongoRepository,
		reportStorage,
		transactor,
		lockerService,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	reportController := controllers.NewReportController(bootstrap.Logger, reportUseCase, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, authController, reportController)
	return nil
}

func newAttachmentStorage(bootstrap config.Bootstrap) (contracts.AttachmentStorage, error) {
	bucketName := bootstrap.InternalConfig.Storage.BucketName
	switch bootstrap.InternalConfig.Storage.Driver {
	case constvars.StorageDriverMinio:
		minioClient := storage.NewMinio(bootstrap.DriverConfig, bucketName)
		return attachmentStorage.NewMinioStorage(minioClient, bucketName, bootstrap.Logger), nil
	case constvars.StorageDriverGridFS, "":
		return attachmentStorage.NewGridFSStorage(bootstrap.MongoDB, bucketName, bootstrap.Logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", bootstrap.InternalConfig.Storage.Driver)
	}
}
