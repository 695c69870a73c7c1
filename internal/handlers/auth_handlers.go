package handlers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	authMiddleware "projecthub/internal/middleware"
)

// sessionTTL is how long a login session stays valid
const sessionTTL = 5 * 24 * time.Hour

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authClient *auth.Client
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authClient *auth.Client) *AuthHandler {
	return &AuthHandler{authClient: authClient}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(c echo.Context) error {
	data := map[string]interface{}{
		"FirebaseAPIKey":     os.Getenv("FIREBASE_API_KEY"),
		"FirebaseAuthDomain": os.Getenv("FIREBASE_AUTH_DOMAIN"),
		"FirebaseProjectID":  os.Getenv("FIREBASE_PROJECT_ID"),
	}
	return c.Render(http.StatusOK, "login.html", data)
}

// HandleLogin verifies the Firebase ID token from the login page and trades
// it for a session cookie. The response tells the page where to go next.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	if h.authClient == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Sign-in is not configured on this server")
	}

	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing ID token")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return echo.NewHTTPError(http.StatusUnauthorized, "Malformed authorization header")
	}

	if _, err := h.authClient.VerifyIDToken(c.Request().Context(), tokenString); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid ID token")
	}

	cookieValue, err := h.authClient.SessionCookie(c.Request().Context(), tokenString, sessionTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session")
	}

	c.SetCookie(&http.Cookie{
		Name:     authMiddleware.SessionCookieName,
		Value:    cookieValue,
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   os.Getenv("ENV") == "production",
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, map[string]string{
		"status":   "success",
		"redirect": "/projects",
	})
}

// HandleLogout clears the session cookie and returns to the login page
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	authMiddleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/login")
}
