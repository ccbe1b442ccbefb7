// Package quotehdl contains the HTTP handlers of the quote domain.
package quotehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "quimica_commerce/internal/api/base/handler"
	"quimica_commerce/internal/api/middleware"
	quotedto "quimica_commerce/internal/api/quote/dto"
	quotemodels "quimica_commerce/internal/api/quote/models"
	quotesvc "quimica_commerce/internal/api/quote/service"
)

// QuoteHandler handles quote submissions and administration.
type QuoteHandler struct {
	basehdl.BaseHandler[quotemodels.Quote, quotedto.QuoteCreateInput, quotedto.QuoteStatusUpdateInput]
	service  *quotesvc.QuoteService
	pipeline *quotesvc.Pipeline
}

// NewQuoteHandler creates a QuoteHandler over an already built pipeline.
func NewQuoteHandler(service *quotesvc.QuoteService, pipeline *quotesvc.Pipeline) (*QuoteHandler, error) {
	if service == nil || pipeline == nil {
		return nil, fmt.Errorf("quote handler requires a service and a pipeline")
	}

	baseHandler := basehdl.NewBaseHandler[quotemodels.Quote, quotedto.QuoteCreateInput, quotedto.QuoteStatusUpdateInput](service)
	h := &QuoteHandler{
		BaseHandler: *baseHandler,
		service:     service,
		pipeline:    pipeline,
	}
	h.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{"metadata"},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 10,
	})
	return h, nil
}

// localString reads a string local, empty when unset.
func localString(c fiber.Ctx, key string) string {
	if value, ok := c.Locals(key).(string); ok {
		return value
	}
	return ""
}

// Submit validates a quote request and runs it through the pipeline:
// persist, render the PDF, send both notification emails.
func (h *QuoteHandler) Submit(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input quotedto.QuoteCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		metadata := quotemodels.QuoteMetadata{
			IP:        localString(c, middleware.LocalClientIP),
			UserAgent: localString(c, middleware.LocalUserAgent),
			Language:  localString(c, middleware.LocalLanguage),
		}

		quote, err := input.ToModel(metadata)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.pipeline.Submit(c.Context(), quote)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// UpdateStatus moves a quote between the accepted statuses.
func (h *QuoteHandler) UpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.ParseObjectID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input quotedto.QuoteStatusUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.service.UpdateStatus(c.Context(), id, input.Status)
		h.HandleResponse(c, updated, err)
		return nil
	})
}
