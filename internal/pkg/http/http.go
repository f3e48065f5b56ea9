package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wirpackens-service/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func SetupHttpEngine(log *otelzap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "wirpackens-service",
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return ctx.Status(fe.Code).JSON(fiber.Map{
					"success": false,
					"message": fe.Message,
				})
			}
			return helpers.RespError(ctx, log, err)
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	return app
}

// StartHttpServer blocks until SIGINT/SIGTERM and then drains in-flight requests.
func StartHttpServer(app *fiber.App, port string, shutdownTimeout time.Duration, log *otelzap.Logger) {
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatal("http server stopped", zap.Error(err))
		}
	}()
	log.Info("http server started", zap.String("port", port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("http server shutdown", zap.Error(err))
	}
}
