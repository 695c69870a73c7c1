package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"projecthub/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// ListUsers renders the list of users
func (h *UserHandler) ListUsers(c echo.Context) error {
	var users []models.User
	if err := h.db.Find(&users).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch users")
	}

	data := pageData(c, "User Management", "users")
	data["Users"] = users

	return c.Render(http.StatusOK, "users_list.html", data)
}

// NewUserPage renders the create user form
func (h *UserHandler) NewUserPage(c echo.Context) error {
	data := pageData(c, "New User", "users")
	data["IsEdit"] = false

	return c.Render(http.StatusOK, "user_form.html", data)
}

// StoreUser handles the creation of a new user
func (h *UserHandler) StoreUser(c echo.Context) error {
	user := models.User{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Phone:    c.FormValue("phone"),
		UserType: models.UserType(c.FormValue("user_type")),
	}

	if user.UserType == "" {
		user.UserType = models.UserTypeMember
	}

	if err := h.db.Create(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create user")
	}

	return c.Redirect(http.StatusSeeOther, "/users")
}

// EditUserPage renders the edit user form
func (h *UserHandler) EditUserPage(c echo.Context) error {
	var user models.User
	if err := h.db.First(&user, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	data := pageData(c, "Edit User", "users")
	data["IsEdit"] = true
	data["User"] = user

	return c.Render(http.StatusOK, "user_form.html", data)
}

// UpdateUser handles updating an existing user
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var user models.User
	if err := h.db.First(&user, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	user.Name = c.FormValue("name")
	user.Email = c.FormValue("email")
	user.Phone = c.FormValue("phone")
	user.UserType = models.UserType(c.FormValue("user_type"))

	if err := h.db.Save(&user).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update user")
	}

	return c.Redirect(http.StatusSeeOther, "/users")
}

// DeleteUser handles deleting a user
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id := c.Param("id")

	// Drop project memberships first
	if err := h.db.Where("user_id = ?", id).Delete(&models.ProjectAttendee{}).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to remove memberships")
	}

	if err := h.db.Delete(&models.User{}, id).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete user")
	}
	return c.Redirect(http.StatusSeeOther, "/users")
}
