package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/sambit-git/ai-nutri-journal/config"
	"github.com/sambit-git/ai-nutri-journal/controllers"
	"github.com/sambit-git/ai-nutri-journal/repositories"
	"github.com/sambit-git/ai-nutri-journal/routes"
	"github.com/sambit-git/ai-nutri-journal/services"
	"github.com/sambit-git/ai-nutri-journal/utils"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load configuration")
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}

	ctx := context.Background()

	foodRepo := repositories.NewFoodRepository(db)
	mealRepo := repositories.NewMealRepository(db)
	goalRepo := repositories.NewGoalRepository(db)

	usdaSvc, err := services.NewUSDAService(cfg.USDAAPIKey, cfg.USDAEndpoint, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init USDA client")
	}
	classifier, err := services.NewRekognitionService(ctx, cfg.AWSRegion)
	if err != nil {
		log.Fatal().Err(err).Msg("init Rekognition client")
	}
	uploader, err := utils.NewS3Uploader(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("init S3 uploader")
	}

	resolver := services.NewFoodResolver(foodRepo, usdaSvc, log)
	mealSvc := services.NewMealService(mealRepo, foodRepo, resolver, classifier, log)
	nutritionSvc := services.NewNutritionService(mealRepo, mealSvc, log)
	goalSvc := services.NewGoalService(goalRepo, nutritionSvc, log)
	foodSvc := services.NewFoodService(foodRepo, usdaSvc, log)
	authSvc := services.NewAuthService(db, cfg.JWTSecret)

	r := routes.SetupRouter(routes.Controllers{
		Auth:      controllers.NewAuthController(authSvc),
		Meals:     controllers.NewMealController(mealSvc, uploader, log),
		Nutrition: controllers.NewNutritionController(nutritionSvc),
		Foods:     controllers.NewFoodController(foodSvc),
		Goals:     controllers.NewGoalController(goalSvc),
	}, cfg.JWTSecret, db)

	log.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
