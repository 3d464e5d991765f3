package main

import (
	"context"
	"hemolink-service/internal/app/config"
	"hemolink-service/internal/app/contracts"
	"hemolink-service/internal/app/delivery/http/controllers"
	"hemolink-service/internal/app/delivery/http/middlewares"
	"hemolink-service/internal/app/delivery/http/routers"
	"hemolink-service/internal/app/drivers/database"
	"hemolink-service/internal/app/drivers/logger"
	"hemolink-service/internal/app/drivers/messaging"
	minioDriver "hemolink-service/internal/app/drivers/storage"
	"hemolink-service/internal/app/services/core/access"
	"hemolink-service/internal/app/services/core/audit"
	"hemolink-service/internal/app/services/core/auth"
	"hemolink-service/internal/app/services/core/bloodrequests"
	"hemolink-service/internal/app/services/core/components"
	"hemolink-service/internal/app/services/core/donations"
	"hemolink-service/internal/app/services/core/donors"
	"hemolink-service/internal/app/services/core/inventory"
	"hemolink-service/internal/app/services/core/labtests"
	"hemolink-service/internal/app/services/core/organizations"
	"hemolink-service/internal/app/services/core/reports"
	"hemolink-service/internal/app/services/core/roles"
	"hemolink-service/internal/app/services/core/screenings"
	"hemolink-service/internal/app/services/core/shipments"
	"hemolink-service/internal/app/services/core/users"
	"hemolink-service/internal/app/services/shared/notifications"
	sharedRedis "hemolink-service/internal/app/services/shared/redis"
	sharedStorage "hemolink-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQChannel := messaging.NewRabbitMQChannel(driverConfig, internalConfig.App.NotificationQueue)
	minioClient := minioDriver.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	auditSink, authUsecase := bootstrapTheApp(config.Bootstrap{
		Router:          chiRouter,
		MongoDB:         mongoDB,
		Redis:           redisClient,
		RabbitMQChannel: rabbitMQChannel,
		Minio:           minioClient,
		Logger:          log,
		DriverConfig:    driverConfig,
		InternalConfig:  internalConfig,
	})

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	go runSessionMaintenance(sweepCtx, authUsecase, internalConfig, log)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("waiting for in-flight requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	stopSweeper()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	// Flush buffered audit entries before the process exits.
	auditSink.Close()

	log.Info("server exiting")
}

func runSessionMaintenance(ctx context.Context, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig, log *zap.Logger) {
	interval := time.Duration(internalConfig.Session.SweepIntervalMinutes) * time.Minute
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			swept, err := authUsecase.SweepExpiredSessions(ctx)
			if err != nil {
				log.Warn("session sweep failed", zap.Error(err))
			} else if swept > 0 {
				log.Info("expired sessions swept", zap.Int64("count", swept))
			}

			evicted, err := authUsecase.EnforceSessionCap(ctx)
			if err != nil {
				log.Warn("session cap enforcement failed", zap.Error(err))
			} else if evicted > 0 {
				log.Info("over-cap sessions evicted", zap.Int64("count", evicted))
			}
		}
	}
}

func bootstrapTheApp(bootstrap config.Bootstrap) (contracts.AuditSink, contracts.AuthUsecase) {
	// Shared infrastructure
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	notificationPublisher := notifications.NewRabbitMQPublisher(
		bootstrap.RabbitMQChannel,
		bootstrap.InternalConfig.App.NotificationQueue,
		bootstrap.Logger,
	)
	reportStorage := sharedStorage.NewMinioStorage(
		bootstrap.Minio,
		bootstrap.DriverConfig.Minio.BucketName,
		bootstrap.InternalConfig.Audit.PresignedHours,
	)

	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Repositories
	organizationMongoRepository := organizations.NewOrganizationMongoRepository(bootstrap.MongoDB, dbName)
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	roleMongoRepository := roles.NewRoleMongoRepository(bootstrap.MongoDB, dbName)
	sessionMongoRepository := auth.NewSessionMongoRepository(bootstrap.MongoDB, dbName)
	auditMongoRepository := audit.NewAuditMongoRepository(bootstrap.MongoDB, dbName)
	donorMongoRepository := donors.NewDonorMongoRepository(bootstrap.MongoDB, dbName)
	donationMongoRepository := donations.NewDonationMongoRepository(bootstrap.MongoDB, dbName)
	screeningMongoRepository := screenings.NewScreeningMongoRepository(bootstrap.MongoDB, dbName)
	labTestMongoRepository := labtests.NewLabTestMongoRepository(bootstrap.MongoDB, dbName)
	componentMongoRepository := components.NewComponentMongoRepository(bootstrap.MongoDB, dbName)
	inventoryMongoRepository := inventory.NewInventoryMongoRepository(bootstrap.MongoDB, dbName)
	bloodRequestMongoRepository := bloodrequests.NewBloodRequestMongoRepository(bootstrap.MongoDB, dbName)
	shipmentMongoRepository := shipments.NewShipmentMongoRepository(bootstrap.MongoDB, dbName)

	// Access control
	scopeResolver := access.NewScopeResolver(organizationMongoRepository)
	permissionResolver := access.NewPermissionResolver(roleMongoRepository)

	// Audit sink
	auditSink := audit.NewBufferedSink(
		auditMongoRepository,
		bootstrap.Logger,
		bootstrap.InternalConfig.Audit.BufferSize,
		bootstrap.InternalConfig.Audit.WritesPerSec,
	)

	// Usecases
	authUsecase := auth.NewAuthUsecase(
		userMongoRepository,
		sessionMongoRepository,
		organizationMongoRepository,
		redisRepository,
		auditSink,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	organizationUsecase := organizations.NewOrganizationUsecase(organizationMongoRepository, scopeResolver, auditSink)
	userUsecase := users.NewUserUsecase(userMongoRepository, roleMongoRepository, scopeResolver, auditSink)
	roleUsecase := roles.NewRoleUsecase(roleMongoRepository, userMongoRepository, scopeResolver)
	donorUsecase := donors.NewDonorUsecase(donorMongoRepository, organizationMongoRepository, scopeResolver)
	donationUsecase := donations.NewDonationUsecase(donationMongoRepository, donorMongoRepository, scopeResolver)
	screeningUsecase := screenings.NewScreeningUsecase(screeningMongoRepository, donorMongoRepository, scopeResolver)
	labTestUsecase := labtests.NewLabTestUsecase(labTestMongoRepository, donationMongoRepository, scopeResolver)
	componentUsecase := components.NewComponentUsecase(componentMongoRepository, donationMongoRepository, inventoryMongoRepository, scopeResolver)
	inventoryUsecase := inventory.NewInventoryUsecase(inventoryMongoRepository, scopeResolver, notificationPublisher, bootstrap.Logger)
	bloodRequestUsecase := bloodrequests.NewBloodRequestUsecase(
		bloodRequestMongoRepository,
		inventoryMongoRepository,
		organizationMongoRepository,
		scopeResolver,
		notificationPublisher,
		bootstrap.Logger,
	)
	shipmentUsecase := shipments.NewShipmentUsecase(
		shipmentMongoRepository,
		bloodRequestMongoRepository,
		inventoryMongoRepository,
		scopeResolver,
		bootstrap.Logger,
	)
	reportUsecase := reports.NewReportUsecase(
		inventoryMongoRepository,
		donationMongoRepository,
		bloodRequestMongoRepository,
		scopeResolver,
		reportStorage,
		bootstrap.Logger,
	)
	auditUsecase := audit.NewAuditUsecase(auditMongoRepository, scopeResolver)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(
		bootstrap.Logger,
		authUsecase,
		permissionResolver,
		auditSink,
		bootstrap.InternalConfig,
	)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	organizationController := controllers.NewOrganizationController(bootstrap.Logger, organizationUsecase)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)
	roleController := controllers.NewRoleController(bootstrap.Logger, roleUsecase)
	donorController := controllers.NewDonorController(bootstrap.Logger, donorUsecase)
	donationController := controllers.NewDonationController(bootstrap.Logger, donationUsecase)
	screeningController := controllers.NewScreeningController(bootstrap.Logger, screeningUsecase)
	labTestController := controllers.NewLabTestController(bootstrap.Logger, labTestUsecase)
	componentController := controllers.NewComponentController(bootstrap.Logger, componentUsecase)
	inventoryController := controllers.NewInventoryController(bootstrap.Logger, inventoryUsecase)
	bloodRequestController := controllers.NewBloodRequestController(bootstrap.Logger, bloodRequestUsecase)
	shipmentController := controllers.NewShipmentController(bootstrap.Logger, shipmentUsecase)
	reportController := controllers.NewReportController(bootstrap.Logger, reportUsecase)
	auditController := controllers.NewAuditController(bootstrap.Logger, auditUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		authController,
		organizationController,
		userController,
		roleController,
		donorController,
		donationController,
		screeningController,
		labTestController,
		componentController,
		inventoryController,
		bloodRequestController,
		shipmentController,
		reportController,
		auditController,
	)

	return auditSink, authUsecase
}
