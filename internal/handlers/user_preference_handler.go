package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"projecthub/internal/models"
)

type UserPreferenceHandler struct {
	db *gorm.DB
}

func NewUserPreferenceHandler(db *gorm.DB) *UserPreferenceHandler {
	return &UserPreferenceHandler{db: db}
}

// PreferencePage renders the reminder preference form for a user
func (h *UserPreferenceHandler) PreferencePage(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	var user models.User
	if err := h.db.First(&user, uint(userID)).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	var pref models.UserNotifPreference
	if err := h.db.Where("user_id = ?", uint(userID)).First(&pref).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching preference")
		}
		// Defaults for users who never saved a preference
		pref = models.UserNotifPreference{
			UserID:  uint(userID),
			Channel: models.NotificationChannelEmail,
		}
	}

	data := pageData(c, "Reminder Preference", "users")
	data["User"] = user
	data["Preference"] = pref

	return c.Render(http.StatusOK, "preference.html", data)
}

// UpdatePreference handles the preference form submission
func (h *UserPreferenceHandler) UpdatePreference(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	// Upsert preference
	var pref models.UserNotifPreference
	if err := h.db.Where("user_id = ?", uint(userID)).First(&pref).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
		}
		pref = models.UserNotifPreference{UserID: uint(userID)}
	}

	pref.Channel = models.NotificationChannel(c.FormValue("channel"))
	pref.WebhookChannelID = c.FormValue("webhook_channel_id")

	if err := h.db.Save(&pref).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save preference")
	}

	return c.Redirect(http.StatusSeeOther, "/users")
}
