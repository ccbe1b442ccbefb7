package router

import (
	"github.com/gofiber/fiber/v3"
)

// NOTE on Fiber v3 middleware registration: middleware passed inline to a
// route method (router.Get(path, middleware, handler)) is NOT invoked.
// Middleware must be registered on a group via .Use(). Every route with
// middleware goes through RegisterRouteWithMiddleware below.

// RoutePrefix holds the base API prefixes.
type RoutePrefix struct {
	Base string // Base prefix (/api)
	V1   string // Version 1 prefix (/api/v1)
}

// NewRoutePrefix creates the default RoutePrefix.
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// Router manages route registration for the API.
type Router struct {
	app *fiber.App
}

// NewRouter creates a new Router.
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware registers a route whose middleware is applied
// through a group's .Use() method, the only registration form Fiber v3
// honors for middleware.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "PATCH":
		routeGroup.Patch(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc registers one domain's routes (exported by the domain's
// router package).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes wires all application routes. The caller passes each domain's
// Register function to avoid import cycles.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
