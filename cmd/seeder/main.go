package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tapanbhakhar27/inventory-service/config"
	"github.com/tapanbhakhar27/inventory-service/internal/domain"
	"github.com/tapanbhakhar27/inventory-service/internal/infrastructure/database/mongodb"
	"github.com/tapanbhakhar27/inventory-service/internal/repository"
)

var categoryNames = []string{
	"Electronics",
	"Clothing",
	"Books",
	"Home & Garden",
	"Sports",
	"Beauty",
	"Toys",
	"Food & Beverages",
}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	categoryRepo := repository.CreateNewCategoryRepository(db)

	if err := categoryRepo.DeleteAllCategories(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to clear existing categories")
	}
	log.Info().Msg("Cleared existing categories")

	categories := make([]domain.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		categories = append(categories, domain.Category{
			Name:      name,
			CreatedAt: time.Now().UTC(),
		})
	}

	inserted, err := categoryRepo.AddCategories(ctx, categories)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed categories")
	}

	log.Info().Int("count", inserted).Msg("Categories seeded successfully")
}
