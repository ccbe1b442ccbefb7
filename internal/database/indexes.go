package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"quimica_commerce/internal/logger"
)

// CollectionNames carries the application collection names into the index
// bootstrap without importing the global package.
type CollectionNames struct {
	Products      string
	Categories    string
	Presentations string
	Banners       string
	Quotes        string
}

// indexSpec describes one index to ensure on a collection.
type indexSpec struct {
	Keys   bson.D
	Unique bool
}

// collectionIndexes lists the indexes each collection needs. Category and
// presentation names are unique; quotes are sorted by creation time on every
// dashboard read.
func collectionIndexes(names CollectionNames) map[string][]indexSpec {
	return map[string][]indexSpec{
		names.Products: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "frontends", Value: 1}}},
		},
		names.Categories: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Unique: true},
		},
		names.Presentations: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Unique: true},
		},
		names.Banners: {
			{Keys: bson.D{{Key: "site", Value: 1}}},
		},
		names.Quotes: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "site.id", Value: 1}, {Key: "status", Value: 1}}},
		},
	}
}

// EnsureIndexes creates the indexes for the given collection. Index creation
// is idempotent; existing identical indexes are left alone by the server.
func EnsureIndexes(ctx context.Context, collection *mongo.Collection, specs []indexSpec) error {
	if len(specs) == 0 {
		return nil
	}

	models := make([]mongo.IndexModel, 0, len(specs))
	for _, spec := range specs {
		opts := options.Index()
		if spec.Unique {
			opts.SetUnique(true)
		}
		models = append(models, mongo.IndexModel{Keys: spec.Keys, Options: opts})
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := collection.Indexes().CreateMany(ctx, models); err != nil {
		logger.GetAppLogger().WithError(err).
			WithField("collection", collection.Name()).
			Error("Failed to create indexes")
		return err
	}
	return nil
}

// EnsureAllIndexes bootstraps the index set for every application collection.
func EnsureAllIndexes(ctx context.Context, db *mongo.Database, names CollectionNames) error {
	for name, specs := range collectionIndexes(names) {
		if err := EnsureIndexes(ctx, db.Collection(name), specs); err != nil {
			return err
		}
	}
	logger.GetAppLogger().Info("Ensured collection indexes")
	return nil
}
