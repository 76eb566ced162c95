package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/internal/infrastructure/broker"
	"flightwatch-service/internal/infrastructure/config"
	"flightwatch-service/internal/infrastructure/oauth"
	"flightwatch-service/internal/infrastructure/persistence"
	"flightwatch-service/internal/infrastructure/router"
	"flightwatch-service/internal/interface/api"
	"flightwatch-service/internal/interface/gmail"
	repo "flightwatch-service/internal/interface/repository"
	"flightwatch-service/internal/usecase"
	"flightwatch-service/pkg/logger"
	"flightwatch-service/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Service: "flightwatch"})
	defer log.Sync()
	log.Info("Starting Flightwatch Service", "version", cfg.AppVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoDatabase(ctx, persistence.MongoConfig{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDB,
		User:     cfg.MongoUser,
		Password: cfg.MongoPassword,
	})
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := repo.AutoMigrate(gormDB); err != nil {
		log.Fatal("Failed to migrate PostgreSQL schema", "error", err)
	}

	// Set up repositories
	flightRepo := repo.NewMongoFlightRepository(db)
	notificationRepo := repo.NewMongoNotificationRepository(db)
	deliveryRepo := repo.NewMongoDeliveryRepository(db)
	refundRepo := repo.NewGormRefundRepository(gormDB)
	airlineRepo := repo.NewGormAirlineRepository(gormDB)
	airportRepo := repo.NewGormAirportRepository(gormDB)

	publisher, err := newPublisher(cfg, log)
	if err != nil {
		log.Fatal("Failed to set up event bus", "bus", cfg.EventBus, "error", err)
	}

	// Set up channel senders
	channelRouter := router.NewChannelRouter(log)
	channelRouter.Register(repo.NewWhatsappSender(repo.WhatsappConfig{
		BaseURL:   cfg.WhatsAppEndpoint,
		Token:     cfg.WhatsAppToken,
		CompanyID: cfg.CompanyID,
		AgentID:   cfg.AgentID,
	}, &http.Client{Timeout: 30 * time.Second}, log))

	gmailOAuth := oauth.NewGmailOAuth(oauth.GmailConfig{
		ClientID:     cfg.GmailClientID,
		ClientSecret: cfg.GmailClientSecret,
		RefreshToken: cfg.GmailRefreshToken,
	}, log)
	if gmailOAuth.Configured() {
		gmailSender, err := gmail.NewSender(ctx, gmailOAuth.TokenSource(ctx), cfg.GmailSender, log)
		if err != nil {
			log.Fatal("Failed to create Gmail sender", "error", err)
		}
		channelRouter.Register(gmailSender)
	} else {
		log.Warn("Gmail credentials missing, email deliveries will be skipped")
	}

	m := metrics.NewMetrics("flightwatch")

	// Set up usecases
	registry := usecase.NewFlightRegistry(flightRepo, airlineRepo, log)
	processor := usecase.NewStatusProcessor(flightRepo, notificationRepo, deliveryRepo, airportRepo, publisher, m, log)
	notifications := usecase.NewNotificationService(notificationRepo, m, log)
	ledger := usecase.NewRefundLedger(refundRepo, flightRepo, notificationRepo, cfg.DefaultRefundAmount, m, log)
	dispatcher := usecase.NewDeliveryOrchestrator(deliveryRepo, flightRepo, channelRouter, usecase.DispatchConfig{
		Interval:   cfg.DispatchInterval,
		BatchSize:  cfg.DispatchBatchSize,
		StaleAfter: cfg.DispatchStale,
		Rate:       cfg.DispatchRate,
		Burst:      cfg.DispatchBurst,
	}, m, log)

	handlers := api.NewHandlers(registry, processor, notifications, ledger, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(handlers, log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return dispatcher.Run(gCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Service stopped with error", "error", err)
	}

	if err := publisher.Close(); err != nil {
		log.Error("Event bus close error", "error", err)
	}

	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongoClient.Disconnect(disconnectCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info("Flightwatch Service stopped")
}

func newPublisher(cfg *config.Config, log logger.Logger) (repository.EventPublisher, error) {
	switch cfg.EventBus {
	case config.EventBusKafka:
		log.Info("Publishing disruptions to kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
		return broker.NewKafkaPublisher(broker.KafkaConfig{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic}), nil
	case config.EventBusRabbitMQ:
		log.Info("Publishing disruptions to rabbitmq", "exchange", cfg.RabbitMQExchange)
		return broker.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
	default:
		return broker.NewLogPublisher(log), nil
	}
}
