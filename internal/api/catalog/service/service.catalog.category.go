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

// CategoryService manages catalog categories.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
}

// NewCategoryService creates a CategoryService.
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](collection),
	}, nil
}

// FindForSite returns all categories flattened for one site.
func (s *CategoryService) FindForSite(ctx context.Context, site sites.Site) ([]catalogmodels.CategorySiteView, error) {
	categories, err := s.Find(ctx, bson.D{}, nil)
	if err != nil {
		return nil, err
	}
	return ProjectCategoryList(categories, site), nil
}
