package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	globalConfig "github.com/kinesia-app/kinesia/config"
	coreDB "github.com/kinesia-app/kinesia/core/database"
	domainCache "github.com/kinesia-app/kinesia/domains/cache"
	domainSync "github.com/kinesia-app/kinesia/domains/sync"
	"github.com/kinesia-app/kinesia/infrastructure/cachestore"
	"github.com/kinesia-app/kinesia/infrastructure/notion"
	"github.com/kinesia-app/kinesia/infrastructure/valkey"
	"github.com/kinesia-app/kinesia/notionbridge"
	"github.com/kinesia-app/kinesia/pkg/utils"
	"github.com/kinesia-app/kinesia/repository"
	"github.com/kinesia-app/kinesia/ui/rest"
	"github.com/kinesia-app/kinesia/ui/rest/middleware"
	"github.com/kinesia-app/kinesia/ui/websocket"
	"github.com/kinesia-app/kinesia/usecase"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the session manager REST API",
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	if err := utils.CreateFolder(globalConfig.PathStorages); err != nil {
		logrus.Fatalf("[REST] Failed to create storage folder: %v", err)
	}

	db, err := coreDB.NewDatabase()
	if err != nil {
		logrus.Fatalf("[REST] Failed to open database: %v", err)
	}

	// Cache backend: Valkey when enabled, relational otherwise.
	var cacheStore domainCache.Store
	var vkClient *valkey.Client
	if globalConfig.ValkeyEnabled {
		vkClient, err = valkey.NewClient(valkey.Config{
			Address:   globalConfig.ValkeyAddress,
			Password:  globalConfig.ValkeyPassword,
			DB:        globalConfig.ValkeyDB,
			KeyPrefix: globalConfig.ValkeyKeyPrefix,
		})
		if err != nil {
			logrus.Warnf("[REST] Valkey unavailable, falling back to database cache: %v", err)
		} else {
			cacheStore = cachestore.NewValkeyStore(vkClient)
			logrus.Info("[REST] Using Valkey cache store")
		}
	}
	ctx := context.Background()
	if cacheStore == nil {
		gormStore := cachestore.NewGormStore(db)
		if err := gormStore.InitSchema(ctx); err != nil {
			logrus.Fatalf("[REST] Failed to migrate cache schema: %v", err)
		}
		cacheStore = gormStore
	}

	// Repositories
	clientRepo := repository.NewClientGormRepository(db)
	appointmentRepo := repository.NewAppointmentGormRepository(db)
	sessionLogRepo := repository.NewSessionLogGormRepository(db)
	profileRepo := repository.NewProfileGormRepository(db)
	if err := clientRepo.InitSchema(ctx); err != nil {
		logrus.Fatalf("[REST] Failed to migrate clients schema: %v", err)
	}
	if err := appointmentRepo.InitSchema(ctx); err != nil {
		logrus.Fatalf("[REST] Failed to migrate appointments schema: %v", err)
	}
	if err := sessionLogRepo.InitSchema(ctx); err != nil {
		logrus.Fatalf("[REST] Failed to migrate session_logs schema: %v", err)
	}
	if err := profileRepo.InitSchema(ctx); err != nil {
		logrus.Fatalf("[REST] Failed to migrate practitioners schema: %v", err)
	}

	// Sync bookkeeping outside the ORM models
	legacyDB, err := coreDB.GetLegacyDB()
	if err != nil {
		logrus.Fatalf("[REST] Failed to get raw database handle: %v", err)
	}
	if err := coreDB.EnsureSettingsTable(legacyDB); err != nil {
		logrus.Fatalf("[REST] Failed to create settings table: %v", err)
	}

	// Remote source and coordinators
	remote := notion.NewClient()
	referenceProvider := notionbridge.NewReferenceProvider(cacheStore, remote, globalConfig.DefaultOwnerID)
	syncer := notionbridge.NewSyncer(cacheStore, remote, globalConfig.DefaultOwnerID)
	syncer.SetOnChange(func(status domainSync.Status) {
		websocket.BroadcastSyncStatus(status)
		if status.State == domainSync.StateSuccess && status.LastSyncedAt != nil {
			if err := coreDB.SetSetting(legacyDB, "last_synced_at", status.LastSyncedAt.Format(time.RFC3339)); err != nil {
				logrus.Warnf("[REST] Failed to persist sync bookmark: %v", err)
			}
		}
	})

	// Usecases
	cacheUsecase := usecase.NewCacheService(cacheStore)
	clientUsecase := usecase.NewClientService(clientRepo, cacheStore)
	appointmentUsecase := usecase.NewAppointmentService(appointmentRepo, cacheStore)
	sessionLogUsecase := usecase.NewSessionLogService(sessionLogRepo, cacheStore)
	profileUsecase := usecase.NewProfileService(profileRepo)
	referenceUsecase := usecase.NewReferenceService(referenceProvider)

	app := fiber.New(fiber.Config{
		AppName:               "Kinesia",
		Network:               "tcp",
		DisableStartupMessage: false,
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.Recovery())
	if globalConfig.AppDebug {
		app.Use(logger.New())
	}

	apiGroup := app.Group(globalConfig.AppBasePath + "/api")

	// Public routes
	rest.InitRestHealth(apiGroup)
	rest.InitRestAuth(apiGroup, profileUsecase)

	// Authenticated routes
	protected := apiGroup.Group("/")
	protected.Use(middleware.Auth())
	rest.InitRestProfile(protected, profileUsecase)
	rest.InitRestClient(protected, clientUsecase)
	rest.InitRestAppointment(protected, appointmentUsecase)
	rest.InitRestSessionLog(protected, sessionLogUsecase)
	rest.InitRestReference(protected, referenceUsecase)
	rest.InitRestSync(protected, syncer)
	rest.InitRestCache(protected, cacheUsecase)

	// Websocket
	serverID := uuid.New().String()
	websocket.SetValkeyClient(vkClient, serverID)
	websocket.RegisterRoutes(apiGroup, syncer)
	go websocket.RunHub()

	// 404 for unknown API routes
	apiGroup.All("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "API Endpoint not found",
			"path":  c.Path(),
		})
	})

	// Startup reference-cache check
	go syncer.Start(ctx)

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Reception of termination signal, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during Fiber shutdown: %v", err)
		}
		if vkClient != nil {
			vkClient.Close()
		}
	}()

	addr := ":" + strings.TrimPrefix(globalConfig.AppPort, ":")
	if err := app.Listen(addr); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
