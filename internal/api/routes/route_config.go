package routes

import (
	"Journal-Backend/internal/api/handlers"
	"Journal-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	JournalHandler handlers.JournalHandler
	Middleware     middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Journal()
	c.GuestRoute()
}

func (c *Config) Journal() {
	journal := c.App.Group("/api/v1/journal")
	{
		journal.Post("/upload", c.JournalHandler.UploadEntry)
		journal.Get("/check-status-and-process", c.JournalHandler.CheckStatusAndProcess)
		journal.Get("/entries", c.JournalHandler.GetEntries)
		journal.Get("/entries/today", c.JournalHandler.GetEntriesToday)
		journal.Get("/entries/today/analysis", c.JournalHandler.AnalyzeToday)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
