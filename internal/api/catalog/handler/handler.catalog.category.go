package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "quimica_commerce/internal/api/base/handler"
	basesvc "quimica_commerce/internal/api/base/service"
	catalogdto "quimica_commerce/internal/api/catalog/dto"
	catalogmodels "quimica_commerce/internal/api/catalog/models"
	catalogsvc "quimica_commerce/internal/api/catalog/service"
	"quimica_commerce/internal/sites"
	"quimica_commerce/internal/storage"
)

// CategoryHandler handles category requests.
type CategoryHandler struct {
	basehdl.BaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	service  *catalogsvc.CategoryService
	uploader *storage.Uploader
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(uploader *storage.Uploader) (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService)
	h := &CategoryHandler{
		BaseHandler: *baseHandler,
		service:     categoryService,
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

// Create creates a category from a multipart form.
func (h *CategoryHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		form, err := parseMultipartForm(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input catalogdto.CategoryCreateInput
		if err := catalogdto.ParseMultipartData(form, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := input.ToModel()
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		images, err := h.uploader.UploadSiteImages(c.Context(), form, "categories", category.Name, sites.PerSite[string]{})
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		category.Images = images

		created, err := h.service.InsertOne(c.Context(), category)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// Update updates a category from a multipart form.
func (h *CategoryHandler) Update(c fiber.Ctx) error {
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

		var input catalogdto.CategoryUpdateInput
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

		images, err := h.uploader.UploadSiteImages(c.Context(), form, "categories", name, existing.Images)
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

// FindPublic lists categories, flattened when ?site= is given.
func (h *CategoryHandler) FindPublic(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		siteParam := c.Query("site", "")
		if siteParam == "" {
			data, err := h.service.Find(c.Context(), nil, nil)
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
