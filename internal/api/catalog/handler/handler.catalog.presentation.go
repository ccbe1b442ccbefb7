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

// PresentationHandler handles presentation requests.
type PresentationHandler struct {
	basehdl.BaseHandler[catalogmodels.Presentation, catalogdto.PresentationCreateInput, catalogdto.PresentationUpdateInput]
	service  *catalogsvc.PresentationService
	uploader *storage.Uploader
}

// NewPresentationHandler creates a PresentationHandler.
func NewPresentationHandler(uploader *storage.Uploader) (*PresentationHandler, error) {
	presentationService, err := catalogsvc.NewPresentationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create presentation service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Presentation, catalogdto.PresentationCreateInput, catalogdto.PresentationUpdateInput](presentationService)
	h := &PresentationHandler{
		BaseHandler: *baseHandler,
		service:     presentationService,
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

// Create creates a presentation from a multipart form.
func (h *PresentationHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		form, err := parseMultipartForm(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input catalogdto.PresentationCreateInput
		if err := catalogdto.ParseMultipartData(form, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		presentation, err := input.ToModel()
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		images, err := h.uploader.UploadSiteImages(c.Context(), form, "presentations", presentation.Name, sites.PerSite[string]{})
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		presentation.Images = images

		created, err := h.service.InsertOne(c.Context(), presentation)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// Update updates a presentation from a multipart form.
func (h *PresentationHandler) Update(c fiber.Ctx) error {
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

		var input catalogdto.PresentationUpdateInput
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

		images, err := h.uploader.UploadSiteImages(c.Context(), form, "presentations", name, existing.Images)
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

// FindPublic lists presentations, flattened when ?site= is given.
func (h *PresentationHandler) FindPublic(c fiber.Ctx) error {
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
