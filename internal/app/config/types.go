package config

type (
	DriverConfig struct {
		MongoDB    MongoDB
		PostgresDB PostgresDB
		Redis      Redis
		RabbitMQ   RabbitMQ
		Minio      Minio
		Logger     Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	PostgresDB struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App App
		JWT JWT
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		EndpointPrefix             string
		DatabaseDriver             string
		MaxRequests                int
		ShutdownTimeoutInSeconds   int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		SessionExpiryTimeInHours   int
		RabbitMQAppointmentQueue   string
		AppointmentEventsPerSecond int
		AttachmentMaxUploadSizeMB  int64
		PresignedURLExpiryInHours  int
	}

	JWT struct {
		Secret             string
		ExpTimeInMinutes   int
		Issuer             string
		BcryptHashCost     int
		AdminBootstrapUser string
	}
)
