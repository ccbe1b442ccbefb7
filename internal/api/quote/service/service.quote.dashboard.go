package quotesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	quotemodels "quimica_commerce/internal/api/quote/models"
	"quimica_commerce/internal/common"
)

// Dashboard aggregations over the quotes collection. All of them tolerate an
// empty collection and return empty slices, never an error.

// statusCounter builds the conditional counter of one status.
func statusCounter(status string) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$status", status}}, 1, 0}}}
}

// DashboardStats returns the per-site quote rollup.
func (s *QuoteService) DashboardStats(ctx context.Context) ([]quotemodels.SiteStats, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":             "$site.id",
			"totalQuotes":     bson.M{"$sum": 1},
			"pendingQuotes":   statusCounter(quotemodels.StatusPending),
			"approvedQuotes":  statusCounter(quotemodels.StatusApproved),
			"rejectedQuotes":  statusCounter(quotemodels.StatusRejected),
			"completedQuotes": statusCounter(quotemodels.StatusCompleted),
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []quotemodels.SiteStats{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// QuotesByStatus returns quote counts grouped by status.
func (s *QuoteService) QuotesByStatus(ctx context.Context) ([]quotemodels.StatusCount, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []quotemodels.StatusCount{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// QuotesBySite returns quote counts grouped by site.
func (s *QuoteService) QuotesBySite(ctx context.Context) ([]quotemodels.SiteCount, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$site.id", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []quotemodels.SiteCount{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// RecentQuotes returns the latest submitted quotes, newest first.
func (s *QuoteService) RecentQuotes(ctx context.Context, limit int64) ([]quotemodels.Quote, error) {
	if limit <= 0 {
		limit = 10
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return s.Find(ctx, bson.D{}, opts)
}
