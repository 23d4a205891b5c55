package main

import (
	"context"
	"log"

	"studio_interiors/internal/adapter/persistence/repository"
	"studio_interiors/internal/infrastructure/database"
	"studio_interiors/internal/infrastructure/seed"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()
	ddb := database.ConnectDynamoDB()

	configRepo := repository.NewRateConfigDynamoRepository(ddb)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)

	if err := seed.Run(ctx, configRepo, estimateRepo); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Printf("[seed] done")
}
