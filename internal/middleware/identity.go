package middleware

// identity.go holds the helper shared by the cache and rate-limit middleware
// for reading the authenticated user out of the Echo context. JWTAuth stores
// the UUID as a plain string; before authentication (or on public routes)
// there is no user and "anon" is used.

import "github.com/labstack/echo/v4"

// contextUserID returns the authenticated user's UUID from context, or
// "anon" when the request is unauthenticated.
func contextUserID(c echo.Context) string {
    if v := c.Get(UserIDKey); v != nil {
        if s, ok := v.(string); ok && s != "" {
            return s
        }
    }
    return "anon"
}
