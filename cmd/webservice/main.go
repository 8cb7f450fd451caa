package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/tapanbhakhar27/inventory-service/config"
	"github.com/tapanbhakhar27/inventory-service/internal/app"
	"github.com/tapanbhakhar27/inventory-service/internal/infrastructure/database/mongodb"
)

func main() {
	conf := config.CreateNewConfig()

	if conf.MongoDBConfig.URI == "" {
		log.Fatal().Msg("MONGODB_URI is not set")
	}

	db, err := mongodb.ConnectToMongoDB(conf.MongoDBConfig.URI, conf.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	defer db.Client().Disconnect(context.Background())

	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	server := app.App{
		DB:     db,
		Config: conf,
	}

	go server.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	if err := server.StopServer(); err != nil {
		log.Error().Err(err).Msg("Failed to shut down server gracefully")
	}
}
