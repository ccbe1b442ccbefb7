// Package cataloghdl contains the HTTP handlers of the catalog domain.
package cataloghdl

import (
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "quimica_commerce/internal/api/base/handler"
	basesvc "quimica_commerce/internal/api/base/service"
	catalogdto "quimica_commerce/internal/api/catalog/dto"
	catalogmodels "quimica_commerce/internal/api/catalog/models"
	catalogsvc "quimica_commerce/internal/api/catalog/service"
	"quimica_commerce/internal/common"
	"quimica_commerce/internal/sites"
	"quimica_commerce/internal/storage"
)

// parseMultipartForm reads the multipart form off the request.
func parseMultipartForm(c fiber.Ctx) (*multipart.Form, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			"Request must be multipart/form-data",
			common.StatusBadRequest,
			err,
		)
	}
	return form, nil
}

// ProductHandler handles product requests.
type ProductHandler struct {
	basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	service  *catalogsvc.ProductService
	uploader *storage.Uploader
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(uploader *storage.Uploader) (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	h := &ProductHandler{
		BaseHandler: *baseHandler,
		service:     productService,
		uploader:    uploader,
	}
	h.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists", "$regex",
		},
		MaxFields: 10,
	})
	return h, nil
}

// Create creates a product from a multipart form: the "data" field carries
// the JSON document, images[siteN] parts carry the per-site images.
func (h *ProductHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		form, err := parseMultipartForm(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input catalogdto.ProductCreateInput
		if err := catalogdto.ParseMultipartData(form, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := input.ToModel()
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		images, err := h.uploader.UploadSiteImages(c.Context(), form, "products", product.Name, sites.PerSite[string]{})
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		product.Images = images

		created, err := h.service.InsertOne(c.Context(), product)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// Update updates a product from a multipart form. Sites without a new image
// part keep their stored URL.
func (h *ProductHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		form, err := parseMultipartForm(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input catalogdto.ProductUpdateInput
		if err := catalogdto.ParseMultipartData(form, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		set, err := input.ToSet()
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		existing, err := h.service.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		name := existing.Name
		if input.Name != nil {
			name = *input.Name
		}

		images, err := h.uploader.UploadSiteImages(c.Context(), form, "products", name, existing.Images)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		set["images"] = images

		updated, err := h.service.UpdateById(c.Context(), id, basesvc.UpdateData{Set: set})
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// FindPublic lists products for a storefront. With ?site= the list is
// filtered to that site's published products and flattened; without it the
// full multi-site documents are returned.
func (h *ProductHandler) FindPublic(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		siteParam := c.Query("site", "")
		if siteParam == "" {
			data, err := h.service.Find(c.Context(), bson.D{}, nil)
			h.HandleResponse(c, data, err)
			return nil
		}

		site, err := sites.Parse(siteParam)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		views, err := h.service.FindForSite(c.Context(), site)
		h.HandleResponse(c, views, err)
		return nil
	})
}

// FindOneBySite returns one product flattened for the site in the URL.
func (h *ProductHandler) FindOneBySite(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		site, err := sites.Parse(c.Params("site"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		view, err := h.service.FindOneForSite(c.Context(), id, site)
		h.HandleResponse(c, view, err)
		return nil
	})
}

// Search finds products by name, case insensitive.
func (h *ProductHandler) Search(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := c.Query("q", "")
		if query == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Query parameter 'q' is required",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.service.SearchByName(c.Context(), query)
		h.HandleResponse(c, data, err)
		return nil
	})
}
