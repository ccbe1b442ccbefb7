package main

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"quimica_commerce/internal/global"
	"quimica_commerce/internal/logger"
)

// initLogger initializes the application logger before anything else logs.
func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// main_thread builds the Fiber app and serves it on the main goroutine.
func main_thread() {
	log := logger.GetAppLogger()

	app, err := InitFiberApp()
	if err != nil {
		log.Fatalf("Failed to initialize Fiber app: %v", err)
	}

	address := ":" + global.ServerConfig.Address
	log.WithFields(map[string]interface{}{
		"address": address,
	}).Info("Starting Fiber server")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

func main() {
	initLogger()
	InitGlobal()
	InitRegistry()
	main_thread()
}
