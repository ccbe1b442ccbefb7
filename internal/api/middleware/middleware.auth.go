package middleware

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"quimica_commerce/internal/common"
	"quimica_commerce/internal/logger"
	"quimica_commerce/internal/utility"
)

// publicPrefixes lists the route prefixes that never require authentication:
// storefront catalog reads, quote submission and the health check.
var publicPrefixes = []string{
	"/api/v1/public/",
	"/api/v1/system/health",
}

var (
	tokenCache     *utility.Cache
	tokenCacheOnce sync.Once
)

// getTokenCache returns the verified-token cache. Entries live for five
// minutes so the same ID token is not re-verified on every request.
func getTokenCache() *utility.Cache {
	tokenCacheOnce.Do(func() {
		tokenCache = utility.NewCache(5*time.Minute, 10*time.Minute)
	})
	return tokenCache
}

// cachedClaims is what the token cache stores per verified token.
type cachedClaims struct {
	UID    string
	Claims map[string]interface{}
}

// IsPublicPath reports whether path is served without authentication.
func IsPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthMiddleware verifies the Firebase ID token on every non-public route.
// On success the decoded UID and claims are stored in request locals
// ("uid", "claims"). Every failure mode answers 401 with a generic reason.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if IsPublicPath(c.Path()) {
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		idToken := parts[1]

		cache := getTokenCache()
		if cached, found := cache.Get(idToken); found {
			claims := cached.(cachedClaims)
			c.Locals("uid", claims.UID)
			c.Locals("claims", claims.Claims)
			return c.Next()
		}

		token, err := utility.VerifyIDToken(c.Context(), idToken)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).WithError(err).Warn("Token verification failed")
			// Generic reason only, the client never learns why the token failed
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		cache.Set(idToken, cachedClaims{UID: token.UID, Claims: token.Claims})

		c.Locals("uid", token.UID)
		c.Locals("claims", token.Claims)
		return c.Next()
	}
}
