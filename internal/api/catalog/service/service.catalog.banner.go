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

// BannerService manages site banners.
type BannerService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Banner]
}

// NewBannerService creates a BannerService.
func NewBannerService() (*BannerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Banners)
	if !exist {
		return nil, fmt.Errorf("failed to get banners collection: %v", common.ErrNotFound)
	}

	return &BannerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Banner](collection),
	}, nil
}

// FindForSite returns the banners of one site.
func (s *BannerService) FindForSite(ctx context.Context, site sites.Site) ([]catalogmodels.Banner, error) {
	return s.Find(ctx, bson.M{"site": site}, nil)
}
