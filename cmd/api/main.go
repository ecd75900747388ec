package main

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/rnyll-pntnr/expense-module/internal/config"
	"github.com/rnyll-pntnr/expense-module/internal/expense"
	"github.com/rnyll-pntnr/expense-module/internal/router"
	"github.com/rnyll-pntnr/expense-module/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := storage.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error opening database: %v", err)
	}
	defer db.Close()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	repo := expense.NewRepository(db)
	svc := expense.NewService(repo)

	r := &router.Router{
		ExpenseHandler: expense.NewHandler(svc),
		WriteLimiter:   router.RateLimitWrite(cfg.WriteLimitMax, cfg.WriteLimitWindow),
	}
	r.RegisterRoutes(app)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %d %s", c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
