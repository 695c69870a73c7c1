package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"projecthub/internal/models"
	"projecthub/internal/services"
)

const projectListCacheKey = "projects:list"

// projectCacheKey is the detail-cache key for a single project, by route UUID
func projectCacheKey(id string) string {
	return "projects:detail:" + id
}

type ProjectHandler struct {
	db    *gorm.DB
	cache *services.RedisCache
}

func NewProjectHandler(db *gorm.DB, cache *services.RedisCache) *ProjectHandler {
	return &ProjectHandler{db: db, cache: cache}
}

// fetchProjects loads the project list, read-through cached for a minute
func (h *ProjectHandler) fetchProjects(ctx context.Context) ([]models.Project, error) {
	load := func() ([]models.Project, error) {
		var projects []models.Project
		err := h.db.Preload("ScheduledTask").Order("created_at DESC").Find(&projects).Error
		return projects, err
	}
	return services.GetOrSet(h.cache, ctx, projectListCacheKey, time.Minute, load)
}

// fetchProject loads a single project with its detail relations, read-through
// cached per UUID for a minute
func (h *ProjectHandler) fetchProject(c echo.Context) (*models.Project, error) {
	id := c.Param("uuid")
	load := func() (models.Project, error) {
		var project models.Project
		err := h.db.Preload("Attendees.User").Preload("Features").Preload("ScheduledTask").
			Where("uuid = ?", id).First(&project).Error
		return project, err
	}
	project, err := services.GetOrSet(h.cache, c.Request().Context(), projectCacheKey(id), time.Minute, load)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Project not found")
	}
	return &project, nil
}

// invalidateProject drops the list cache and the project's detail cache
func (h *ProjectHandler) invalidateProject(ctx context.Context, id string) {
	if h.cache != nil {
		_ = h.cache.Delete(ctx, projectListCacheKey)
		_ = h.cache.Delete(ctx, projectCacheKey(id))
	}
}

// findProject loads a project by its route UUID
func (h *ProjectHandler) findProject(c echo.Context, preloads ...string) (*models.Project, error) {
	query := h.db
	for _, p := range preloads {
		query = query.Preload(p)
	}
	var project models.Project
	if err := query.Where("uuid = ?", c.Param("uuid")).First(&project).Error; err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Project not found")
	}
	return &project, nil
}

// ListProjects renders the project list
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.fetchProjects(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch projects")
	}

	data := pageData(c, "Projects", "projects")
	data["Projects"] = projects

	return c.Render(http.StatusOK, "projects_list.html", data)
}

// NewProjectPage renders the create project form
func (h *ProjectHandler) NewProjectPage(c echo.Context) error {
	var users []models.User
	h.db.Find(&users)

	data := pageData(c, "New Project", "projects")
	data["IsEdit"] = false
	data["FormattedStartDate"] = time.Now().Format("2006-01-02")
	data["AllUsers"] = users

	return c.Render(http.StatusOK, "project_form.html", data)
}

// StoreProject handles the creation of a new project
func (h *ProjectHandler) StoreProject(c echo.Context) error {
	startDate, err := timeFromForm(c.FormValue("start_date"))
	if err != nil {
		startDate = time.Now()
	}

	schedule := c.FormValue("meeting_schedule")
	var schedulePtr *string
	if schedule != "" {
		schedulePtr = &schedule
	}

	status := models.ProjectStatus(c.FormValue("status"))
	if status == "" {
		status = models.ProjectStatusPlanning
	}

	project := models.Project{
		UUID:            uuid.NewString(),
		Name:            c.FormValue("name"),
		Description:     c.FormValue("description"),
		Status:          status,
		StartDate:       startDate,
		MeetingSchedule: schedulePtr,
	}

	if err := h.db.Create(&project).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create project")
	}

	h.invalidateProject(c.Request().Context(), project.UUID)

	return c.Redirect(http.StatusSeeOther, "/projects/"+project.UUID)
}

// ShowProject renders the project detail page
func (h *ProjectHandler) ShowProject(c echo.Context) error {
	project, err := h.fetchProject(c)
	if err != nil {
		return err
	}

	data := pageData(c, project.Name, "projects")
	data["Project"] = project
	data["NextMeeting"] = project.NextMeeting()

	return c.Render(http.StatusOK, "project_detail.html", data)
}

// EditProjectPage renders the edit project form
func (h *ProjectHandler) EditProjectPage(c echo.Context) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}

	data := pageData(c, "Edit Project", "projects")
	data["IsEdit"] = true
	data["Project"] = project
	data["FormattedStartDate"] = project.StartDate.Format("2006-01-02")

	return c.Render(http.StatusOK, "project_form.html", data)
}

// UpdateProject handles updating an existing project
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}

	project.Name = c.FormValue("name")
	project.Description = c.FormValue("description")
	if status := models.ProjectStatus(c.FormValue("status")); status != "" {
		project.Status = status
	}

	if startDateStr := c.FormValue("start_date"); startDateStr != "" {
		if startDate, err := timeFromForm(startDateStr); err == nil {
			project.StartDate = startDate
		}
	}

	schedule := c.FormValue("meeting_schedule")
	if schedule != "" {
		project.MeetingSchedule = &schedule
	} else {
		project.MeetingSchedule = nil
	}

	if err := h.db.Save(project).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update project")
	}

	h.invalidateProject(c.Request().Context(), project.UUID)

	return c.Redirect(http.StatusSeeOther, "/projects/"+project.UUID)
}

// DeleteProject handles deleting a project
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectAttendee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Feature{}).Error; err != nil {
			return err
		}
		return tx.Delete(project).Error
	}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete project")
	}

	h.invalidateProject(c.Request().Context(), project.UUID)

	return c.Redirect(http.StatusSeeOther, "/projects")
}

// ScheduleReminders enables meeting reminders for a project
func (h *ProjectHandler) ScheduleReminders(c echo.Context) error {
	project, err := h.findProject(c, "ScheduledTask")
	if err != nil {
		return err
	}

	taskName := "process_meeting_schedule"
	arguments := map[string]interface{}{"project_id": project.ID}
	due := project.NextMeeting()

	var taskType models.ScheduledTaskType
	if project.MeetingSchedule != nil && *project.MeetingSchedule != "" {
		taskType = models.ScheduledTaskTypeRecurring
	} else {
		taskType = models.ScheduledTaskTypeOneTime
	}

	if project.ScheduledTaskID == nil || project.ScheduledTask == nil {
		task := models.ScheduledTask{
			TaskName:          taskName,
			Arguments:         arguments,
			Due:               due,
			RecurringInterval: project.MeetingSchedule,
			Status:            models.ScheduledTaskStatusActive,
			TaskType:          taskType,
			MaxAttempt:        3,
		}
		if err := h.db.Create(&task).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create scheduled task")
		}

		project.ScheduledTaskID = &task.ID
		if err := h.db.Save(project).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update project")
		}
	} else {
		task := project.ScheduledTask
		task.TaskName = taskName
		task.Arguments = arguments
		task.Due = due
		task.RecurringInterval = project.MeetingSchedule
		task.Status = models.ScheduledTaskStatusActive
		task.TaskType = taskType
		task.MaxAttempt = 3
		task.LastRun = nil // Reset last run

		if err := h.db.Save(task).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update scheduled task")
		}
	}

	h.invalidateProject(c.Request().Context(), project.UUID)

	return c.Redirect(http.StatusSeeOther, "/projects/"+project.UUID)
}

// DisableReminders turns off a project's meeting reminders
func (h *ProjectHandler) DisableReminders(c echo.Context) error {
	project, err := h.findProject(c, "ScheduledTask")
	if err != nil {
		return err
	}

	if project.ScheduledTaskID != nil && project.ScheduledTask != nil {
		project.ScheduledTask.Status = models.ScheduledTaskStatusDisabled
		if err := h.db.Save(project.ScheduledTask).Error; err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to disable reminders")
		}
	}

	h.invalidateProject(c.Request().Context(), project.UUID)

	return c.Redirect(http.StatusSeeOther, "/projects/"+project.UUID)
}

// Helper to parse date from HTML input type="date"
func timeFromForm(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
