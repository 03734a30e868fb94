package middleware

import (
	"net/http"
	"regexp"
	"strings"

	"bookease-backend/internal/domain/identity"

	"github.com/labstack/echo/v4"
)

// The auth gateway terminates token verification and forwards the verified
// caller in these headers. The core trusts them and never sees credentials.
const (
	HeaderUserID = "X-User-Id"
	HeaderAdmin  = "X-User-Admin"

	// IdentityKey is the echo context key the resolved identity is stored
	// under; must match the handlers' lookup key.
	IdentityKey = "identity"
)

var reUserID = regexp.MustCompile(`^[a-f0-9]{32}$`)

// ResolveIdentity rejects requests without a well-formed caller id and
// stores the capability object for the handlers.
func ResolveIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.ToLower(strings.TrimSpace(c.Request().Header.Get(HeaderUserID)))
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + HeaderUserID})
			}
			if !reUserID.MatchString(uid) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid " + HeaderUserID})
			}
			admin := false
			switch strings.ToLower(strings.TrimSpace(c.Request().Header.Get(HeaderAdmin))) {
			case "1", "true", "yes":
				admin = true
			}
			c.Set(IdentityKey, identity.Identity{UserID: uid, Admin: admin})
			return next(c)
		}
	}
}

// RequireAdmin gates a route on the resolved identity's admin capability.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := c.Get(IdentityKey).(identity.Identity)
			if !ok || !ident.Admin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
			}
			return next(c)
		}
	}
}
