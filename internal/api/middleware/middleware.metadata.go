package middleware

import (
	"github.com/gofiber/fiber/v3"
)

// Locals keys set by CaptureMetadata.
const (
	LocalClientIP  = "clientIp"
	LocalUserAgent = "userAgent"
	LocalLanguage  = "language"
)

// CaptureMetadata records request provenance into locals so handlers can
// persist it without touching transport details.
func CaptureMetadata() fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals(LocalClientIP, c.IP())
		c.Locals(LocalUserAgent, c.Get("User-Agent"))
		c.Locals(LocalLanguage, c.Get("Accept-Language"))
		return c.Next()
	}
}
