// Package router registers the catalog routes: products, categories,
// presentations and banners.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "quimica_commerce/internal/api/catalog/handler"
	apirouter "quimica_commerce/internal/api/router"
	"quimica_commerce/internal/storage"
)

// Register builds the catalog route registration. Storefront reads live
// under /public and bypass the auth gate; everything else requires a token.
func Register(uploader *storage.Uploader) apirouter.RegisterFunc {
	return func(v1 fiber.Router, r *apirouter.Router) error {
		productHandler, err := cataloghdl.NewProductHandler(uploader)
		if err != nil {
			return fmt.Errorf("create product handler: %w", err)
		}
		categoryHandler, err := cataloghdl.NewCategoryHandler(uploader)
		if err != nil {
			return fmt.Errorf("create category handler: %w", err)
		}
		presentationHandler, err := cataloghdl.NewPresentationHandler(uploader)
		if err != nil {
			return fmt.Errorf("create presentation handler: %w", err)
		}
		bannerHandler, err := cataloghdl.NewBannerHandler(uploader)
		if err != nil {
			return fmt.Errorf("create banner handler: %w", err)
		}

		// Storefront reads (no auth)
		v1.Get("/public/products", productHandler.FindPublic)
		v1.Get("/public/products/:id/:site", productHandler.FindOneBySite)
		v1.Get("/public/categories", categoryHandler.FindPublic)
		v1.Get("/public/presentations", presentationHandler.FindPublic)
		v1.Get("/public/banners", bannerHandler.FindPublic)

		// Products (admin)
		v1.Get("/products", productHandler.Find)
		v1.Get("/products/paginate", productHandler.FindWithPagination)
		v1.Get("/products/search", productHandler.Search)
		v1.Get("/products/count", productHandler.CountDocuments)
		v1.Get("/products/:id", productHandler.FindOneById)
		v1.Get("/products/:id/:site", productHandler.FindOneBySite)
		v1.Post("/products", productHandler.Create)
		v1.Put("/products/:id", productHandler.Update)
		v1.Delete("/products/:id", productHandler.DeleteById)

		// Categories (admin)
		v1.Get("/categories", categoryHandler.Find)
		v1.Get("/categories/:id", categoryHandler.FindOneById)
		v1.Post("/categories", categoryHandler.Create)
		v1.Put("/categories/:id", categoryHandler.Update)
		v1.Delete("/categories/:id", categoryHandler.DeleteById)

		// Presentations (admin)
		v1.Get("/presentations", presentationHandler.Find)
		v1.Get("/presentations/:id", presentationHandler.FindOneById)
		v1.Post("/presentations", presentationHandler.Create)
		v1.Put("/presentations/:id", presentationHandler.Update)
		v1.Delete("/presentations/:id", presentationHandler.DeleteById)

		// Banners (admin)
		v1.Get("/banners", bannerHandler.Find)
		v1.Get("/banners/:id", bannerHandler.FindOneById)
		v1.Post("/banners", bannerHandler.Create)
		v1.Put("/banners/:id", bannerHandler.Update)
		v1.Delete("/banners/:id", bannerHandler.DeleteById)

		return nil
	}
}
