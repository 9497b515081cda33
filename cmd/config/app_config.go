package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/macromate/macromate-backend/internal/api/handlers"
	"github.com/macromate/macromate-backend/internal/api/routes"
	"github.com/macromate/macromate-backend/internal/middleware"
	"github.com/macromate/macromate-backend/internal/utils"
	"github.com/macromate/macromate-backend/internal/utils/storage"
	"github.com/macromate/macromate-backend/pkg/favorite"
	"github.com/macromate/macromate-backend/pkg/macro"
	"github.com/macromate/macromate-backend/pkg/nutrition"
	"github.com/macromate/macromate-backend/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit:         10 * 1024 * 1024,
		EnablePrintRoutes: utils.GetConfig("APP_ENV") != "production",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 15 * time.Minute,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	macroRepository := macro.NewMacroRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)

	// Service
	extractor := macro.NewGeminiExtractor()
	nutritionClient := nutrition.NewClient()
	macroService := macro.NewMacroService(macroRepository, extractor, nutritionClient, s3)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, macroRepository)
	userService := user.NewUserService(macroRepository, favoriteRepository)

	// Handler
	macroHandler := handlers.NewMacroHandler(macroService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)
	userHandler := handlers.NewUserHandler(userService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		MacroHandler:    macroHandler,
		FavoriteHandler: favoriteHandler,
		UserHandler:     userHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
