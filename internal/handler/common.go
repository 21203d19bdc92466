package handler // handler defines http handlers

import (
    "errors"  // errors provides sentinel values used in helpers
    "fmt"     // fmt formats validation messages
    "strconv" // strconv converts strings to numeric types
    "time"    // time validates calendar date parameters

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/avelez/workout-tracker/internal/middleware" // middleware defines the user context key
)

const dateLayout = "2006-01-02"

// Upper bounds for log metrics.  The original client coerced whatever the
// form produced; here out-of-range values are rejected before any write.
const (
    maxWeight = 5000
    maxReps   = 1000
    maxSets   = 100
)

// maxTextLen matches the VARCHAR(255) width of every free-text column.
const maxTextLen = 255

// getUserID extracts the authenticated user's UUID from echo.Context.  The
// JWT middleware stores it as a string; anything else means the route was
// wired without authentication and the request is treated as anonymous.
func getUserID(c echo.Context) (string, error) {
    if s, ok := c.Get(middleware.UserIDKey).(string); ok && s != "" {
        return s, nil
    }
    return "", errors.New("no authenticated user in context")
}

// parseID parses a numeric path parameter into uint64.
func parseID(c echo.Context, name string) (uint64, error) {
    return strconv.ParseUint(c.Param(name), 10, 64)
}

// parseDateRange reads and validates the from/to query parameters used by
// the calendar endpoints.  Both are required YYYY-MM-DD dates and from must
// not be after to.
func parseDateRange(c echo.Context) (from, to string, err error) {
    from = c.QueryParam("from")
    to = c.QueryParam("to")
    f, err := time.Parse(dateLayout, from)
    if err != nil {
        return "", "", fmt.Errorf("invalid from date %q", from)
    }
    t, err := time.Parse(dateLayout, to)
    if err != nil {
        return "", "", fmt.Errorf("invalid to date %q", to)
    }
    if f.After(t) {
        return "", "", errors.New("from must not be after to")
    }
    return from, to, nil
}

// validateMetric checks an optional numeric log field: nil is fine (not
// recorded), negatives are rejected, and values beyond max are rejected as
// implausible.
func validateMetric(name string, v *int, max int) error {
    if v == nil {
        return nil
    }
    if *v < 0 {
        return fmt.Errorf("%s must not be negative", name)
    }
    if *v > max {
        return fmt.Errorf("%s must not exceed %d", name, max)
    }
    return nil
}

// validateText checks an optional free-text field against the column width so
// an oversized value reads as a 400 with a named field instead of surfacing
// as a database error.
func validateText(name string, v *string, max int) error {
    if v == nil {
        return nil
    }
    if len(*v) > max {
        return fmt.Errorf("%s must not exceed %d characters", name, max)
    }
    return nil
}
