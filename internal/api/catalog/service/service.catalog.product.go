package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	catalogmodels "quimica_commerce/internal/api/catalog/models"
	basesvc "quimica_commerce/internal/api/base/service"
	"quimica_commerce/internal/common"
	"quimica_commerce/internal/global"
	"quimica_commerce/internal/sites"
)

// ProductService manages catalog products.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService creates a ProductService.
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](collection),
	}, nil
}

// FindForSite returns the site-projected product list: only products
// published on the site, flattened to that site's content.
func (s *ProductService) FindForSite(ctx context.Context, site sites.Site) ([]catalogmodels.ProductSiteView, error) {
	products, err := s.Find(ctx, bson.M{"frontends": site}, nil)
	if err != nil {
		return nil, err
	}
	return ProjectProductList(products, site), nil
}

// FindOneForSite returns one product flattened for a site, or a not-found
// outcome when the product is not published or has no content for it.
func (s *ProductService) FindOneForSite(ctx context.Context, id primitive.ObjectID, site sites.Site) (catalogmodels.ProductSiteView, error) {
	product, err := s.FindOneById(ctx, id)
	if err != nil {
		return catalogmodels.ProductSiteView{}, err
	}
	return ProjectProductDetail(product, site)
}

// SearchByName finds products whose name matches the query, case
// insensitive.
func (s *ProductService) SearchByName(ctx context.Context, query string) ([]catalogmodels.Product, error) {
	filter := bson.M{"name": bson.M{"$regex": query, "$options": "i"}}
	return s.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}
