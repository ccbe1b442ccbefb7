// Package quotesvc contains the quote services: persistence, the submission
// pipeline and the dashboard aggregations.
package quotesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "quimica_commerce/internal/api/base/service"
	quotemodels "quimica_commerce/internal/api/quote/models"
	"quimica_commerce/internal/common"
	"quimica_commerce/internal/global"
)

// QuoteService manages quote documents.
type QuoteService struct {
	*basesvc.BaseServiceMongoImpl[quotemodels.Quote]
}

// NewQuoteService creates a QuoteService.
func NewQuoteService() (*QuoteService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Quotes)
	if !exist {
		return nil, fmt.Errorf("failed to get quotes collection: %v", common.ErrNotFound)
	}

	return &QuoteService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[quotemodels.Quote](collection),
	}, nil
}

// UpdateStatus moves a quote to a new status. The value is checked against
// the status enum before anything is written.
func (s *QuoteService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (quotemodels.Quote, error) {
	if !quotemodels.ValidStatus(status) {
		return quotemodels.Quote{}, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Status '%s' is not valid, expected one of %v", status, quotemodels.Statuses),
			common.StatusBadRequest,
			nil,
		)
	}

	return s.UpdateById(ctx, id, basesvc.UpdateData{
		Set: map[string]interface{}{"status": status},
	})
}
