package config

import (
	"Journal-Backend/internal/api/handlers"
	"Journal-Backend/internal/api/routes"
	"Journal-Backend/internal/middleware"
	"Journal-Backend/internal/utils"
	"Journal-Backend/internal/utils/storage"
	"Journal-Backend/pkg/journal"
	"Journal-Backend/pkg/llm"
	"Journal-Backend/pkg/ocr"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const defaultMaxPendingDays = 30

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
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
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	ocrClient := ocr.NewTextractClient()
	llmClient := llm.NewOpenAIClient()

	maxPendingDays := defaultMaxPendingDays
	if raw := utils.GetConfig("SWEEP_MAX_PENDING_DAYS"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil && days > 0 {
			maxPendingDays = days
		}
	}

	// Repository
	journalRepository := journal.NewJournalRepository(db)

	// Service
	journalService := journal.NewJournalService(
		journalRepository,
		s3,
		ocrClient,
		llmClient,
		utils.GetConfig("EXTRACTION_MODE"),
		time.Duration(maxPendingDays)*24*time.Hour,
	)

	// Handler
	journalHandler := handlers.NewJournalHandler(journalService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		JournalHandler: journalHandler,
		Middleware:     middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
