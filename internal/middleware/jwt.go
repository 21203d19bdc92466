package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
    "github.com/google/uuid"       // uuid validates the subject claim shape
    "github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// UserIDKey is the context key under which the authenticated user's UUID is
// stored for handlers.
const UserIDKey = "user_id"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// issued by the identity provider and injects the token's subject (the
// user's UUID) into the request context.  This service never issues tokens
// itself; the provided secret is the HS256 key shared with the provider.
// Handlers behind this middleware read the user via c.Get("user_id").
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header is "Bearer <jwt>".  Anything else is an
            // unauthenticated request.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Parse with the shared secret, accepting only HMAC signatures.
            // A token signed with a different algorithm is rejected outright.
            tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
                if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
                    return nil, echo.ErrUnauthorized
                }
                return []byte(secret), nil
            })
            if err != nil || !tok.Valid {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            claims, ok := tok.Claims.(jwt.MapClaims)
            if !ok {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
            }

            // The identity provider puts the user's UUID in the subject
            // claim.  Every owned row is keyed by this value, so a token
            // without a well-formed subject is useless and rejected here
            // rather than in every handler.
            sub, _ := claims["sub"].(string)
            uid, err := uuid.Parse(sub)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid subject"})
            }

            c.Set(UserIDKey, uid.String())
            return next(c)
        }
    }
}
