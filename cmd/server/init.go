package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"quimica_commerce/config"
	"quimica_commerce/internal/database"
	"quimica_commerce/internal/global"
	"quimica_commerce/internal/sites"
	"quimica_commerce/internal/utility"
)

// InitGlobal initializes the process-wide singletons in dependency order.
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initActiveSites()
	initDatabase_MongoDB()
	initFirebase()
}

// initColNames sets the MongoDB collection names.
func initColNames() {
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Presentations = "presentations"
	global.MongoDB_ColNames.Banners = "banners"
	global.MongoDB_ColNames.Quotes = "quotes"

	logrus.Info("Initialized collection names")
}

// initValidator registers the validator with the custom site validations.
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig reads the server configuration from the environment.
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initActiveSites parses the sites this deployment serves.
func initActiveSites() {
	activeSites, err := sites.ParseList(global.ServerConfig.SiteIDs)
	if err != nil {
		logrus.Fatalf("Failed to parse SITE_IDS: %v", err)
	}
	global.ActiveSites = activeSites
	logrus.Infof("Serving sites: %v", activeSites)
}

// initDatabase_MongoDB connects to MongoDB and ensures the indexes.
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := global.MongoDB_Session.Database(global.ServerConfig.MongoDB_DBName)
	err = database.EnsureAllIndexes(ctx, db, database.CollectionNames{
		Products:      global.MongoDB_ColNames.Products,
		Categories:    global.MongoDB_ColNames.Categories,
		Presentations: global.MongoDB_ColNames.Presentations,
		Banners:       global.MongoDB_ColNames.Banners,
		Quotes:        global.MongoDB_ColNames.Quotes,
	})
	if err != nil {
		logrus.Fatalf("Failed to ensure indexes: %v", err)
	}
}

// initFirebase initializes the Firebase Admin SDK (token verification and
// the storage bucket). The server still runs without it, with uploads and
// admin routes unavailable.
func initFirebase() {
	cfg := global.ServerConfig

	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config incomplete, skipping Firebase initialization")
		return
	}

	err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath, cfg.FirebaseStorageBucket)
	if err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		return
	}

	logrus.Info("Firebase initialized successfully")
}
