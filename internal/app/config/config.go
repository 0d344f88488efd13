package config

import (
	"log"

	"healthrecords-service/internal/pkg/constvars"
	"healthrecords-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "healthrecords"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		PostgresDB: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "healthrecords"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medical-record-attachments"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	internalConfig := &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			DatabaseDriver:             utils.GetEnvString("APP_DATABASE_DRIVER", constvars.DatabaseDriverMongo),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			SessionExpiryTimeInHours:   utils.GetEnvInt("APP_SESSION_EXPIRY_TIME_IN_HOURS", 12),
			RabbitMQAppointmentQueue:   utils.GetEnvString("APP_RABBITMQ_APPOINTMENT_QUEUE", "appointment-events"),
			AppointmentEventsPerSecond: utils.GetEnvInt("APP_APPOINTMENT_EVENTS_PER_SECOND", 20),
			AttachmentMaxUploadSizeMB:  utils.GetEnvInt64("APP_ATTACHMENT_MAX_UPLOAD_SIZE_IN_MB", 10),
			PresignedURLExpiryInHours:  utils.GetEnvInt("APP_PRESIGNED_URL_EXPIRY_IN_HOURS", 1),
		},
		JWT: JWT{
			Secret:             utils.GetEnvString("JWT_SECRET", ""),
			ExpTimeInMinutes:   utils.GetEnvInt("JWT_EXP_TIME_IN_MINUTES", 60),
			Issuer:             utils.GetEnvString("JWT_ISSUER", "healthrecords-service"),
			BcryptHashCost:     utils.GetEnvInt("JWT_BCRYPT_HASH_COST", 10),
			AdminBootstrapUser: utils.GetEnvString("JWT_ADMIN_BOOTSTRAP_EMAIL", ""),
		},
	}

	// Tokens must never be signed with a baked-in secret.
	if internalConfig.JWT.Secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	return internalConfig
}
