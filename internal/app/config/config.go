package config

import (
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			URI:                     utils.GetEnvString("MONGODB_URI", ""),
			Port:                    utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:                    utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:                  utils.GetEnvString("MONGODB_DB_NAME", "psicare"),
			Username:                utils.GetEnvString("MONGODB_USERNAME", ""),
			Password:                utils.GetEnvString("MONGODB_PASSWORD", ""),
			ReplicaSet:              utils.GetEnvString("MONGODB_REPLICA_SET", ""),
			ConnectTimeoutInSeconds: utils.GetEnvInt("MONGODB_CONNECT_TIMEOUT_IN_SECONDS", 10),
		},
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", true),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VHost:    utils.GetEnvString("RABBITMQ_VHOST", ""),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "America/Sao_Paulo"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 50),
			PublicDownloads:            utils.GetEnvBool("APP_PUBLIC_DOWNLOADS", false),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
		Storage: AppStorage{
			Driver:            utils.GetEnvString("STORAGE_DRIVER", constvars.StorageDriverGridFS),
			BucketName:        utils.GetEnvString("STORAGE_BUCKET_NAME", constvars.DefaultAttachmentBucketName),
			MaxUploadSizeInMB: utils.GetEnvInt64("STORAGE_MAX_UPLOAD_SIZE_IN_MB", 20),
		},
		Events: AppEvents{
			ReportQueue: utils.GetEnvString("APP_RABBITMQ_REPORT_QUEUE", "psicare.reports"),
		},
		Report: AppReport{
			LockExpirationInSeconds: utils.GetEnvInt("REPORT_LOCK_EXPIRATION_IN_SECONDS", 30),
		},
	}
}
