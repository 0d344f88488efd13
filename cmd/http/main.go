package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"healthrecords-service/internal/app/config"
	"healthrecords-service/internal/app/contracts"
	"healthrecords-service/internal/app/delivery/http/middlewares"
	"healthrecords-service/internal/app/delivery/http/routers"
	"healthrecords-service/internal/app/drivers/database"
	"healthrecords-service/internal/app/drivers/logger"
	"healthrecords-service/internal/app/drivers/messaging"
	storagedriver "healthrecords-service/internal/app/drivers/storage"
	"healthrecords-service/internal/app/services/core/appointments"
	"healthrecords-service/internal/app/services/core/auth"
	"healthrecords-service/internal/app/services/core/authz"
	"healthrecords-service/internal/app/services/core/doctors"
	"healthrecords-service/internal/app/services/core/medicalrecords"
	"healthrecords-service/internal/app/services/core/medicines"
	"healthrecords-service/internal/app/services/core/patients"
	"healthrecords-service/internal/app/services/core/prescriptions"
	"healthrecords-service/internal/app/services/core/roles"
	"healthrecords-service/internal/app/services/core/users"
	"healthrecords-service/internal/app/services/shared/notifications"
	"healthrecords-service/internal/app/services/shared/redis"
	"healthrecords-service/internal/app/services/shared/storage"
	"healthrecords-service/internal/app/services/shared/tokenmanager"
	"healthrecords-service/internal/pkg/constvars"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	var postgresDB *sql.DB
	if internalConfig.App.DatabaseDriver == constvars.DatabaseDriverPostgres {
		postgresDB = database.NewPostgresDB(driverConfig)
	}
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storagedriver.NewMinio(driverConfig)

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Failed to close connections", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, minioClient *minio.Client) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// User / Role stores follow the configured database driver; the
	// clinical collections stay on MongoDB.
	var (
		userRepository contracts.UserRepository
		roleRepository contracts.RoleRepository
	)
	switch bootstrap.InternalConfig.App.DatabaseDriver {
	case constvars.DatabaseDriverPostgres:
		userRepository = users.NewUserPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
		roleRepository = roles.NewRolePostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	default:
		userRepository = users.NewUserMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
		roleRepository = roles.NewRoleMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Role registry is seeded and loaded once; permission edits made at
	// runtime take effect on the next start.
	roles.SeedDefaultRoles(startupCtx, roleRepository, bootstrap.Logger)
	registry, err := roles.BuildRegistry(startupCtx, roleRepository, bootstrap.Logger)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to load role registry", zap.Error(err))
	}
	engine := authz.NewEngine(registry)

	tokenManager := tokenmanager.NewTokenManager(bootstrap.InternalConfig)
	resolver := authz.NewResolver(tokenManager, userRepository)

	minioStorage := storage.NewMinioStorage(
		minioClient,
		bootstrap.DriverConfig.Minio.BucketName,
		time.Duration(bootstrap.InternalConfig.App.PresignedURLExpiryInHours)*time.Hour,
	)

	publisher, err := notifications.NewPublisher(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.RabbitMQAppointmentQueue,
		bootstrap.InternalConfig.App.AppointmentEventsPerSecond,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to start appointment publisher", zap.Error(err))
	}
	bootstrap.WorkerStop = publisher.Stop

	// Clinical repositories
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	medicalRecordRepository := medicalrecords.NewMedicalRecordMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	prescriptionRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	medicineRepository := medicines.NewMedicineMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(userRepository, redisRepository, tokenManager, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(authUsecase, bootstrap.Logger)

	// User
	userUsecase := users.NewUserUsecase(userRepository, engine, bootstrap.Logger)
	userController := users.NewUserController(userUsecase, bootstrap.Logger)

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientRepository, userRepository, engine, bootstrap.Logger)
	patientController := patients.NewPatientController(patientUsecase, bootstrap.Logger)

	// Doctor
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, userRepository, engine, bootstrap.Logger)
	doctorController := doctors.NewDoctorController(doctorUsecase, bootstrap.Logger)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, patientRepository, doctorRepository, publisher, engine, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(appointmentUsecase, bootstrap.Logger)

	// Medical record
	medicalRecordUsecase := medicalrecords.NewMedicalRecordUsecase(
		medicalRecordRepository,
		patientRepository,
		minioStorage,
		engine,
		bootstrap.InternalConfig.App.AttachmentMaxUploadSizeMB<<20,
		bootstrap.Logger,
	)
	medicalRecordController := medicalrecords.NewMedicalRecordController(medicalRecordUsecase, bootstrap.Logger)

	// Prescription
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionRepository, patientRepository, medicineRepository, engine, bootstrap.Logger)
	prescriptionController := prescriptions.NewPrescriptionController(prescriptionUsecase, bootstrap.Logger)

	// Medicine
	medicineUsecase := medicines.NewMedicineUsecase(medicineRepository, engine, bootstrap.Logger)
	medicineController := medicines.NewMedicineController(medicineUsecase, bootstrap.Logger)

	// Role
	roleUsecase := roles.NewRoleUsecase(roleRepository, engine, bootstrap.Logger)
	roleController := roles.NewRoleController(roleUsecase, bootstrap.Logger)

	ensureAdminUser(startupCtx, userRepository, bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	middlewares := &middlewares.Middlewares{
		Log:            bootstrap.Logger,
		AccessLog:      logger.NewLogrusLogger(bootstrap.InternalConfig),
		Resolver:       resolver,
		InternalConfig: bootstrap.InternalConfig,
	}

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		patientController,
		doctorController,
		appointmentController,
		medicalRecordController,
		prescriptionController,
		medicineController,
		roleController,
	)
}

// ensureAdminUser promotes the configured bootstrap account to the admin
// role, so a deployment gets its first admin from configuration without
// anyone having to self-register as one.
func ensureAdminUser(ctx context.Context, userRepository contracts.UserRepository, internalConfig *config.InternalConfig, log *zap.Logger) {
	email := internalConfig.JWT.AdminBootstrapUser
	if email == "" {
		return
	}

	user, err := userRepository.FindByEmail(ctx, email)
	if err != nil {
		log.Warn("Admin bootstrap lookup failed", zap.Error(err))
		return
	}
	if user == nil {
		log.Warn("Admin bootstrap user is not registered yet", zap.String("email", email))
		return
	}
	if user.RoleName == constvars.RoleAdmin && user.Active {
		return
	}

	user.RoleName = constvars.RoleAdmin
	user.Active = true
	user.UpdatedAt = time.Now()
	if err := userRepository.UpdateUser(ctx, user); err != nil {
		log.Warn("Admin bootstrap promotion failed", zap.Error(err))
		return
	}
	log.Info("Admin bootstrap user promoted", zap.String("email", email))
}
