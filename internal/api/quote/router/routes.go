// Package router registers the quote routes: public submission, quote
// administration and the dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"quimica_commerce/internal/api/middleware"
	quotehdl "quimica_commerce/internal/api/quote/handler"
	quotesvc "quimica_commerce/internal/api/quote/service"
	apirouter "quimica_commerce/internal/api/router"
	"quimica_commerce/internal/notification"
)

// Register builds the quote route registration. The renderer, sender and
// company identity come from the bootstrap so tests can swap them out.
func Register(renderer quotesvc.Renderer, sender notification.Sender, cfg quotesvc.PipelineConfig) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		quoteService, err := quotesvc.NewQuoteService()
		if err != nil {
			return fmt.Errorf("create quote service: %w", err)
		}
		pipeline := quotesvc.NewPipeline(quoteService, renderer, sender, cfg)

		quoteHandler, err := quotehdl.NewQuoteHandler(quoteService, pipeline)
		if err != nil {
			return fmt.Errorf("create quote handler: %w", err)
		}
		dashboardHandler, err := quotehdl.NewDashboardHandler(quoteService)
		if err != nil {
			return fmt.Errorf("create dashboard handler: %w", err)
		}

		// Public submission (no auth), with request provenance captured
		apirouter.RegisterRouteWithMiddleware(v1, "/public/quotes", "POST", "/",
			[]fiber.Handler{middleware.CaptureMetadata()}, quoteHandler.Submit)

		// Quotes (admin)
		v1.Get("/quotes", quoteHandler.FindWithPagination)
		v1.Get("/quotes/:id", quoteHandler.FindOneById)
		v1.Patch("/quotes/:id/status", quoteHandler.UpdateStatus)

		// Dashboard (admin)
		v1.Get("/dashboard/stats", dashboardHandler.Stats)
		v1.Get("/dashboard/quotes-by-status", dashboardHandler.QuotesByStatus)
		v1.Get("/dashboard/quotes-by-site", dashboardHandler.QuotesBySite)
		v1.Get("/dashboard/recent-quotes", dashboardHandler.RecentQuotes)

		return nil
	}
}
