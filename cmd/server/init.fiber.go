package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	basehdl "quimica_commerce/internal/api/base/handler"
	catalogrouter "quimica_commerce/internal/api/catalog/router"
	"quimica_commerce/internal/api/middleware"
	quoterouter "quimica_commerce/internal/api/quote/router"
	quotesvc "quimica_commerce/internal/api/quote/service"
	apirouter "quimica_commerce/internal/api/router"
	"quimica_commerce/internal/common"
	"quimica_commerce/internal/global"
	"quimica_commerce/internal/logger"
	"quimica_commerce/internal/notification"
	"quimica_commerce/internal/pdf"
	"quimica_commerce/internal/storage"
	"quimica_commerce/internal/utility"
)

// InitFiberApp builds the Fiber application: middleware stack, auth gate and
// all domain routes.
func InitFiberApp() (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:       "Quimica Commerce API",
		ServerHeader:  "Quimica Commerce API",
		StrictRouting: false,
		CaseSensitive: true,

		// Uploads carry up to five 3MB image parts plus the JSON data field
		BodyLimit:   20 * 1024 * 1024,
		ReadTimeout: 15 * time.Second,
		// Quote submission waits on PDF render and two SMTP sends
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := common.MsgInternalError
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusNotFound:
					errorCode = common.ErrCodeDatabaseQuery.Code
				}
			}

			logger.WithRequest(c).WithFields(map[string]interface{}{
				"code":      code,
				"errorCode": errorCode,
				"message":   message,
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"status":  "error",
			})
		},
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	corsOrigins := global.ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
		},
		AllowCredentials: global.ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic": e,
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":    common.ErrCodeInternalServer.Code,
				"message": common.MsgInternalError,
				"status":  "error",
			})
		},
	}))

	// Auth gate: everything outside the public prefixes needs a bearer token
	app.Use(middleware.AuthMiddleware())

	if err := setupRoutes(app); err != nil {
		return nil, err
	}

	return app, nil
}

// setupRoutes wires the domain route registrations with their dependencies.
func setupRoutes(app *fiber.App) error {
	cfg := global.ServerConfig

	uploader := storage.NewUploader(
		utility.GetStorageBucket(),
		cfg.FirebaseStorageBucket,
		cfg.UploadMaxFileSize,
		storage.NormalizeOptions{
			MaxDimension: cfg.UploadMaxDimension,
			JPEGQuality:  cfg.UploadJPEGQuality,
		},
	)

	renderer := pdf.NewRenderer(pdf.CompanyInfo{
		Name:    cfg.CompanyName,
		Email:   cfg.CompanyEmail,
		Phone:   cfg.CompanyPhone,
		Address: cfg.CompanyAddress,
	})

	mailer := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
		FromName: cfg.CompanyName,
	})

	systemRoutes := func(v1 fiber.Router, r *apirouter.Router) error {
		systemHandler, err := basehdl.NewSystemHandler()
		if err != nil {
			return fmt.Errorf("create system handler: %w", err)
		}
		v1.Get("/system/health", systemHandler.HandleHealth)
		return nil
	}

	return apirouter.SetupRoutes(app,
		systemRoutes,
		catalogrouter.Register(uploader),
		quoterouter.Register(renderer, mailer, quotesvc.PipelineConfig{
			CompanyName:  cfg.CompanyName,
			CompanyEmail: cfg.CompanyEmail,
		}),
	)
}
