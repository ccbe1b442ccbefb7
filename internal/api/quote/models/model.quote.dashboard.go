package quotemodels

// SiteStats is the per-site quote rollup of the dashboard.
type SiteStats struct {
	SiteID          string `json:"siteId" bson:"_id"`
	TotalQuotes     int64  `json:"totalQuotes" bson:"totalQuotes"`
	PendingQuotes   int64  `json:"pendingQuotes" bson:"pendingQuotes"`
	ApprovedQuotes  int64  `json:"approvedQuotes" bson:"approvedQuotes"`
	RejectedQuotes  int64  `json:"rejectedQuotes" bson:"rejectedQuotes"`
	CompletedQuotes int64  `json:"completedQuotes" bson:"completedQuotes"`
}

// StatusCount is a quote count grouped by status.
type StatusCount struct {
	Status string `json:"status" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}

// SiteCount is a quote count grouped by site.
type SiteCount struct {
	SiteID string `json:"siteId" bson:"_id"`
	Count  int64  `json:"count" bson:"count"`
}
