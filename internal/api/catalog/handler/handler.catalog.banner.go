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

// BannerHandler handles banner requests.
type BannerHandler struct {
	basehdl.BaseHandler[catalogmodels.Banner, catalogdto.BannerCreateInput, catalogdto.BannerUpdateInput]
	service  *catalogsvc.BannerService
	uploader *storage.Uploader
}

// NewBannerHandler creates a BannerHandler.
func NewBannerHandler(uploader *storage.Uploader) (*BannerHandler, error) {
	bannerService, err := catalogsvc.NewBannerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create banner service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Banner, catalogdto.BannerCreateInput, catalogdto.BannerUpdateInput](bannerService)
	h := &BannerHandler{
		BaseHandler: *baseHandler,
		service:     bannerService,
		uploader:    uploader,
	}
	h.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$in", "$nin", "$exists",
		},
		MaxFields: 5,
	})
	return h, nil
}

// Create creates a banner from a multipart form. The image may arrive as an
// images[siteN] part for the banner's site or as an imageUrl in the body.
func (h *BannerHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		form, err := parseMultipartForm(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input catalogdto.BannerCreateInput
		if err := catalogdto.ParseMultipartData(form, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		banner, err := input.ToModel()
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var previous sites.PerSite[string]
		previous.Set(banner.Site, banner.ImageURL)
		urls, err := h.uploader.UploadSiteImages(c.Context(), form, "banners", banner.Name, previous)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		banner.ImageURL = urls.Get(banner.Site)

		created, err := h.service.InsertOne(c.Context(), banner)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// Update updates a banner from a multipart form.
func (h *BannerHandler) Update(c fiber.Ctx) error {
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

		var input catalogdto.BannerUpdateInput
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
		site := existing.Site
		if input.Site != nil {
			site, err = sites.Parse(*input.Site)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		var previous sites.PerSite[string]
		previous.Set(site, existing.ImageURL)
		urls, err := h.uploader.UploadSiteImages(c.Context(), form, "banners", name, previous)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if url := urls.Get(site); url != "" {
			set["imageUrl"] = url
		}

		updated, err := h.service.UpdateById(c.Context(), id, basesvc.UpdateData{Set: set})
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// FindPublic lists banners, filtered to one site when ?site= is given.
func (h *BannerHandler) FindPublic(c fiber.Ctx) error {
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

		data, err := h.service.FindForSite(c.Context(), site)
		h.HandleResponse(c, data, err)
		return nil
	})
}
