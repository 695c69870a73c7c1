package handlers

import (
	"github.com/labstack/echo/v4"

	"projecthub/internal/breadcrumb"
)

// pageData builds the map every page template consumes: title, active nav
// item, the breadcrumb trail derived from the request path, and the signed-in
// user. Page handlers add their own keys on top.
func pageData(c echo.Context, title, activeNav string) map[string]interface{} {
	return map[string]interface{}{
		"Title":     title,
		"ActiveNav": activeNav,
		"Trail":     breadcrumb.Trail(c.Request().URL.Path),
		"UserEmail": getStringFromContext(c, "userEmail"),
		"UserUID":   getStringFromContext(c, "userUID"),
	}
}

// Helper to safely get string from context
func getStringFromContext(c echo.Context, key string) string {
	val := c.Get(key)
	if val == nil {
		return ""
	}
	strVal, ok := val.(string)
	if !ok {
		return ""
	}
	return strVal
}
