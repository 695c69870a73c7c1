package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"projecthub/internal/breadcrumb"
)

// CustomErrorHandler creates a custom error handler for Echo
func CustomErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	errorTitle := "Internal Server Error"
	errorMessage := ""

	// Check if it's an Echo HTTPError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code

		// Try to extract message from HTTPError
		if msg, ok := he.Message.(string); ok && msg != "" {
			errorMessage = msg
		}

		// Set title and default message if no custom message provided
		switch code {
		case http.StatusNotFound:
			errorTitle = "Page Not Found"
			if errorMessage == "" {
				errorMessage = "The page you're looking for doesn't exist."
			}
		case http.StatusForbidden:
			errorTitle = "Access Denied"
			if errorMessage == "" {
				errorMessage = "You don't have permission to access this resource."
			}
		case http.StatusUnauthorized:
			errorTitle = "Unauthorized"
			if errorMessage == "" {
				errorMessage = "Please log in to continue."
			}
		case http.StatusBadRequest:
			errorTitle = "Bad Request"
			if errorMessage == "" {
				errorMessage = "The request could not be processed."
			}
		default:
			if errorMessage == "" {
				errorMessage = "Something went wrong. Please try again later."
			}
		}
	} else {
		// Non-HTTPError, use default
		errorMessage = "Something went wrong. Please try again later."
	}

	// Log the error
	c.Logger().Error(err)

	// Try to get user context (may not be available for all errors)
	userEmail := ""
	if val := c.Get("userEmail"); val != nil {
		if email, ok := val.(string); ok {
			userEmail = email
		}
	}

	path := c.Request().URL.Path

	data := map[string]interface{}{
		"Title":        errorTitle,
		"ActiveNav":    "",
		"Trail":        breadcrumb.Trail(path),
		"UserEmail":    userEmail,
		"ErrorTitle":   errorTitle,
		"ErrorMessage": errorMessage,
	}

	// Set status code
	c.Response().Status = code

	// Login, auth and static paths render without the authenticated layout
	isPublic := strings.HasPrefix(path, "/login") ||
		strings.HasPrefix(path, "/auth") ||
		strings.HasPrefix(path, "/static")

	template := "error.html"
	if isPublic {
		template = "public_error.html"
	}

	if renderErr := c.Render(code, template, data); renderErr != nil {
		// Fallback to plain text if template fails
		c.Logger().Error(fmt.Errorf("failed to render error page: %w", renderErr))
		c.String(code, errorMessage)
	}
}
