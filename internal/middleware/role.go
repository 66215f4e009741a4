package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireAuthority returns a middleware function that enforces that the
// authenticated user holds one of the specified authority strings.  The
// values should correspond to the entries of the JWT's "authorities"
// claim (e.g. "ROLE_MEMBER").  If none of the user's authorities is in
// the allowed set, the request is aborted with a 403 Forbidden response.
// It assumes a previous middleware has extracted the authorities into the
// context under the key "authorities".
func RequireAuthority(authorities ...string) echo.MiddlewareFunc {
    // Build a set of allowed authorities for constant‑time lookups.  The
    // map value is a boolean and is always true when present.
    allowed := make(map[string]bool, len(authorities))
    for _, a := range authorities {
        allowed[a] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Retrieve the authority list from context.  It should have
            // been stored by JWTAuth middleware as a []string.  If not
            // present or of wrong type, treat as missing.
            v := c.Get("authorities")
            granted, ok := v.([]string)
            if !ok {
                return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
            }
            for _, g := range granted {
                if allowed[g] {
                    // Authority matched; call the next handler in the chain.
                    return next(c)
                }
            }
            // No granted authority was in the allowed set.
            return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
        }
    }
}
