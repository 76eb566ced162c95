package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/infrastructure/config"
	"flightwatch-service/internal/infrastructure/persistence"
	repo "flightwatch-service/internal/interface/repository"
	"flightwatch-service/internal/usecase"
	"flightwatch-service/pkg/logger"

	"gopkg.in/yaml.v3"
)

// manifest mirrors the airports -> flights -> passengers hierarchy
type manifest struct {
	Airports map[string]struct {
		Flights map[string]entity.Flight `yaml:"flights"`
	} `yaml:"airports"`
}

func loadManifest(path string) ([]*entity.Flight, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	var flights []*entity.Flight
	for airportCode, airport := range m.Airports {
		for flightID, f := range airport.Flights {
			flight := f
			if flight.AirportCode == "" {
				flight.AirportCode = airportCode
			}
			if flight.FlightID == "" {
				flight.FlightID = flightID
			}
			flights = append(flights, &flight)
		}
	}
	sort.Slice(flights, func(i, j int) bool {
		if flights[i].AirportCode != flights[j].AirportCode {
			return flights[i].AirportCode < flights[j].AirportCode
		}
		return flights[i].FlightID < flights[j].FlightID
	})
	return flights, nil
}

func main() {
	path := flag.String("manifest", "cmd/seed/manifest.yaml", "YAML manifest of airports, flights and passengers")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}
	log := logger.New(logger.Options{Level: cfg.LogLevel, Console: true})
	defer log.Sync()

	flights, err := loadManifest(*path)
	if err != nil {
		log.Fatal("Failed to load manifest", "path", *path, "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongoClient, db, err := persistence.NewMongoDatabase(ctx, persistence.MongoConfig{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDB,
		User:     cfg.MongoUser,
		Password: cfg.MongoPassword,
	})
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(context.Background())

	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := repo.AutoMigrate(gormDB); err != nil {
		log.Fatal("Failed to migrate PostgreSQL schema", "error", err)
	}

	registry := usecase.NewFlightRegistry(
		repo.NewMongoFlightRepository(db),
		repo.NewGormAirlineRepository(gormDB),
		log,
	)

	seeded, err := registry.Seed(ctx, flights)
	if err != nil {
		log.Fatal("Seeding stopped", "seeded", seeded, "error", err)
	}

	passengers := 0
	for _, f := range flights {
		passengers += len(f.Passengers)
	}
	log.Info("Seed complete", "flights", seeded, "passengers", passengers)
}
