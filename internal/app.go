package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	gemini_client "github.com/nasser0p/realestate/internal/adapters/gemini"
	token_adapter "github.com/nasser0p/realestate/internal/adapters/jwt"
	logger_adapter "github.com/nasser0p/realestate/internal/adapters/logger"
	minio_adapter "github.com/nasser0p/realestate/internal/adapters/minio"
	postgres_adapter "github.com/nasser0p/realestate/internal/adapters/postgres"
	rabbitmq_adapter "github.com/nasser0p/realestate/internal/adapters/rabbitmq"
	"github.com/nasser0p/realestate/internal/adapters/rest"
	"github.com/nasser0p/realestate/internal/configs"
	"github.com/nasser0p/realestate/internal/core/port"
	"github.com/nasser0p/realestate/internal/core/usecase"
	fluentlogger "github.com/nasser0p/realestate/pkg/fluent_logger"
	"github.com/nasser0p/realestate/pkg/postgres"
	"github.com/nasser0p/realestate/pkg/rabbitmq"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	eventsProducer *rabbitmq.Publisher
	fluentClient   *fluent.Fluent
	logger         port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers first so every later failure is reported through them.
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Low-level dependencies.
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	propertyRepo, err := postgres_adapter.NewPostgresPropertyRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create property repository: %w", err)
	}
	favoritesRepo, err := postgres_adapter.NewPostgresFavoritesRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create favorites repository: %w", err)
	}
	optionsRepo, err := postgres_adapter.NewPostgresFilterOptionsRepository(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create filter options repository: %w", err)
	}

	mediaStorage, err := minio_adapter.NewMinioMediaStorage(minio_adapter.MinioConfig{
		Endpoint:      appConfig.Minio.Endpoint,
		AccessKey:     appConfig.Minio.AccessKey,
		SecretKey:     appConfig.Minio.SecretKey,
		Bucket:        appConfig.Minio.Bucket,
		UseSSL:        appConfig.Minio.UseSSL,
		PublicBaseURL: appConfig.Minio.PublicBaseURL,
	})
	if err != nil {
		appLogger.Error("Failed to create media storage", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create media storage: %w", err)
	}

	descriptionClient, err := gemini_client.NewGeminiDescriptionClient(appConfig.Gemini.APIKey, appConfig.Gemini.Model)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create description client: %w", err)
	}

	tokenService, err := token_adapter.NewTokenService(appConfig.JWT.SigningKey)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	// Lifecycle events are optional; without a broker a noop adapter is used.
	var listingEvents port.ListingEventsPort
	var eventsProducer *rabbitmq.Publisher
	if appConfig.RabbitMQ.Enabled {
		eventsProducer, err = rabbitmq.NewPublisher(rabbitmq.PublisherConfig{
			URL:             appConfig.RabbitMQ.URL,
			ExchangeName:    appConfig.RabbitMQ.ExchangeName,
			ExchangeType:    "topic",
			DeclareExchange: true,
		})
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		listingEvents, err = rabbitmq_adapter.NewRabbitMQListingEventsAdapter(eventsProducer)
		if err != nil {
			eventsProducer.Close()
			dbPool.Close()
			return nil, err
		}
		appLogger.Info("RabbitMQ listing events enabled.", port.Fields{"exchange": appConfig.RabbitMQ.ExchangeName})
	} else {
		listingEvents = rabbitmq_adapter.NewNoopListingEventsAdapter()
		appLogger.Info("RabbitMQ disabled, listing events are a no-op.", nil)
	}

	appLogger.Info("All persistence and service adapters initialized.", nil)

	// Use cases.
	findUC := usecase.NewFindPropertiesUseCase(propertyRepo)
	getByIDUC := usecase.NewGetPropertyByIDUseCase(propertyRepo)
	createUC := usecase.NewCreatePropertyUseCase(propertyRepo, listingEvents)
	updateUC := usecase.NewUpdatePropertyUseCase(propertyRepo, listingEvents)
	deleteUC := usecase.NewDeletePropertyUseCase(propertyRepo, mediaStorage, listingEvents)
	uploadMediaUC := usecase.NewUploadPropertyMediaUseCase(propertyRepo, mediaStorage)
	describeUC := usecase.NewGenerateDescriptionUseCase(descriptionClient)
	optionsUC := usecase.NewGetFilterOptionsUseCase(optionsRepo)

	toggleUC := usecase.NewToggleFavoriteUseCase(favoritesRepo)
	isFavoriteUC := usecase.NewIsFavoriteUseCase(favoritesRepo)
	getFavoritesUC := usecase.NewGetUserFavoritesUseCase(favoritesRepo, propertyRepo)
	getFavoriteIDsUC := usecase.NewGetUserFavoriteIDsUseCase(favoritesRepo)

	// REST API server.
	propertiesHandler := rest.NewPropertiesHandler(
		findUC, getByIDUC, createUC, updateUC, deleteUC, uploadMediaUC, describeUC, optionsUC,
	)
	favoritesHandler := rest.NewFavoritesHandler(toggleUC, isFavoriteUC, getFavoritesUC, getFavoriteIDsUC)
	apiServer := rest.NewServer(
		appConfig.Rest.Port,
		appConfig.Rest.AllowedOrigins,
		propertiesHandler,
		favoritesHandler,
		tokenService,
		baseLogger,
	)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		eventsProducer: eventsProducer,
		fluentClient:   fluentClient,
		logger:         appLogger,
	}, nil
}

// Run starts the application components and manages their lifecycle.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.eventsProducer != nil {
			if err := a.eventsProducer.Close(); err != nil {
				a.logger.Error("Error closing RabbitMQ producer", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
