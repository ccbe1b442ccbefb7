package quotehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "quimica_commerce/internal/api/base/handler"
	quotemodels "quimica_commerce/internal/api/quote/models"
	quotesvc "quimica_commerce/internal/api/quote/service"
)

// DashboardHandler serves the quote dashboard aggregations.
type DashboardHandler struct {
	basehdl.BaseHandler[quotemodels.Quote, struct{}, struct{}]
	service *quotesvc.QuoteService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(service *quotesvc.QuoteService) (*DashboardHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("dashboard handler requires a quote service")
	}
	baseHandler := basehdl.NewBaseHandler[quotemodels.Quote, struct{}, struct{}](service)
	return &DashboardHandler{
		BaseHandler: *baseHandler,
		service:     service,
	}, nil
}

// Stats returns the per-site quote rollup.
func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		stats, err := h.service.DashboardStats(c.Context())
		h.HandleResponse(c, stats, err)
		return nil
	})
}

// QuotesByStatus returns quote counts grouped by status.
func (h *DashboardHandler) QuotesByStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		counts, err := h.service.QuotesByStatus(c.Context())
		h.HandleResponse(c, counts, err)
		return nil
	})
}

// QuotesBySite returns quote counts grouped by site.
func (h *DashboardHandler) QuotesBySite(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		counts, err := h.service.QuotesBySite(c.Context())
		h.HandleResponse(c, counts, err)
		return nil
	})
}

// RecentQuotes returns the latest ten submitted quotes.
func (h *DashboardHandler) RecentQuotes(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		quotes, err := h.service.RecentQuotes(c.Context(), 10)
		h.HandleResponse(c, quotes, err)
		return nil
	})
}
