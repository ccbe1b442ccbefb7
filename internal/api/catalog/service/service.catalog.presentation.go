package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	catalogmodels "quimica_commerce/internal/api/catalog/models"
	basesvc "quimica_commerce/internal/api/base/service"
	"quimica_commerce/internal/common"
	"quimica_commerce/internal/global"
	"quimica_commerce/internal/sites"
)

// PresentationService manages product presentations.
type PresentationService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Presentation]
}

// NewPresentationService creates a PresentationService.
func NewPresentationService() (*PresentationService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Presentations)
	if !exist {
		return nil, fmt.Errorf("failed to get presentations collection: %v", common.ErrNotFound)
	}

	return &PresentationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Presentation](collection),
	}, nil
}

// FindForSite returns all presentations flattened for one site.
func (s *PresentationService) FindForSite(ctx context.Context, site sites.Site) ([]catalogmodels.PresentationSiteView, error) {
	presentations, err := s.Find(ctx, bson.D{}, nil)
	if err != nil {
		return nil, err
	}
	return ProjectPresentationList(presentations, site), nil
}
