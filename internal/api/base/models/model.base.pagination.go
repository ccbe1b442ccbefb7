// Package models holds types shared by the repository/base layer.
package models

// PaginateResult represents one page of a paginated query.
type PaginateResult[T any] struct {
	// Current page
	Page int64 `json:"page" bson:"page"`
	// Items per page
	Limit int64 `json:"limit" bson:"limit"`
	// Number of items in this page
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// The items
	Items []T `json:"items" bson:"items"`
	// Total matching items
	Total int64 `json:"total" bson:"total"`
	// Total pages
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
