package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"projecthub/internal/models"
	"projecthub/internal/services"
)

type AttendeeHandler struct {
	db    *gorm.DB
	cache *services.RedisCache
}

func NewAttendeeHandler(db *gorm.DB, cache *services.RedisCache) *AttendeeHandler {
	return &AttendeeHandler{db: db, cache: cache}
}

// invalidateDetail drops the project's cached detail page after a roster change
func (h *AttendeeHandler) invalidateDetail(c echo.Context, id string) {
	if h.cache != nil {
		_ = h.cache.Delete(c.Request().Context(), projectCacheKey(id))
	}
}

func (h *AttendeeHandler) findProject(c echo.Context) (*models.Project, error) {
	var project models.Project
	if err := h.db.Preload("Attendees.User").Where("uuid = ?", c.Param("uuid")).First(&project).Error; err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Project not found")
	}
	return &project, nil
}

// AttendeesPage renders the attendee management page for a project
func (h *AttendeeHandler) AttendeesPage(c echo.Context) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}

	// Users not yet on the project, for the add form
	attendeeIDs := make([]uint, 0, len(project.Attendees))
	for _, a := range project.Attendees {
		attendeeIDs = append(attendeeIDs, a.UserID)
	}
	var available []models.User
	query := h.db
	if len(attendeeIDs) > 0 {
		query = query.Where("id NOT IN ?", attendeeIDs)
	}
	if err := query.Find(&available).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch users")
	}

	data := pageData(c, "Attendee Management", "projects")
	data["Project"] = project
	data["AvailableUsers"] = available

	return c.Render(http.StatusOK, "attendees.html", data)
}

// AddAttendee adds a user to the project, or updates their role if already on it
func (h *AttendeeHandler) AddAttendee(c echo.Context) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}

	userID, err := strconv.ParseUint(c.FormValue("user_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	role := models.AttendeeRole(c.FormValue("role"))
	if role == "" {
		role = models.AttendeeRoleContributor
	}

	var attendee models.ProjectAttendee
	err = h.db.Where("project_id = ? AND user_id = ?", project.ID, uint(userID)).First(&attendee).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
		}
		attendee = models.ProjectAttendee{ProjectID: project.ID, UserID: uint(userID)}
	}
	attendee.Role = role

	if err := h.db.Save(&attendee).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to add attendee")
	}

	h.invalidateDetail(c, project.UUID)

	return c.Redirect(http.StatusSeeOther, "/projects/"+project.UUID+"/attendees")
}

// RemoveAttendee removes a user from the project
func (h *AttendeeHandler) RemoveAttendee(c echo.Context) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}

	attendeeID, err := strconv.ParseUint(c.FormValue("attendee_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid attendee ID")
	}

	if err := h.db.Where("project_id = ?", project.ID).Delete(&models.ProjectAttendee{}, uint(attendeeID)).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to remove attendee")
	}

	h.invalidateDetail(c, project.UUID)

	return c.Redirect(http.StatusSeeOther, "/projects/"+project.UUID+"/attendees")
}
