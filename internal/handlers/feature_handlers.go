package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"projecthub/internal/models"
	"projecthub/internal/services"
)

type FeatureHandler struct {
	db    *gorm.DB
	cache *services.RedisCache
}

func NewFeatureHandler(db *gorm.DB, cache *services.RedisCache) *FeatureHandler {
	return &FeatureHandler{db: db, cache: cache}
}

// invalidateDetail drops the project's cached detail page after a feature change
func (h *FeatureHandler) invalidateDetail(c echo.Context, id string) {
	if h.cache != nil {
		_ = h.cache.Delete(c.Request().Context(), projectCacheKey(id))
	}
}

func (h *FeatureHandler) findProject(c echo.Context) (*models.Project, error) {
	var project models.Project
	if err := h.db.Where("uuid = ?", c.Param("uuid")).First(&project).Error; err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Project not found")
	}
	return &project, nil
}

// FeaturesPage renders the feature management page for a project
func (h *FeatureHandler) FeaturesPage(c echo.Context) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}

	var features []models.Feature
	if err := h.db.Where("project_id = ?", project.ID).
		Order("priority DESC, created_at ASC").Find(&features).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch features")
	}

	data := pageData(c, "Feature Management", "projects")
	data["Project"] = project
	data["Features"] = features

	return c.Render(http.StatusOK, "features.html", data)
}

// AddFeature creates a new feature on the project
func (h *FeatureHandler) AddFeature(c echo.Context) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	if title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Feature title is required")
	}

	priority := 0
	if p, err := strconv.Atoi(c.FormValue("priority")); err == nil {
		priority = p
	}

	feature := models.Feature{
		ProjectID:   project.ID,
		Title:       title,
		Description: c.FormValue("description"),
		Status:      models.FeatureStatusPlanned,
		Priority:    priority,
	}

	if err := h.db.Create(&feature).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create feature")
	}

	h.invalidateDetail(c, project.UUID)

	return c.Redirect(http.StatusSeeOther, "/projects/"+project.UUID+"/features")
}

// UpdateFeatureStatus moves a feature through its lifecycle
func (h *FeatureHandler) UpdateFeatureStatus(c echo.Context) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}

	var feature models.Feature
	if err := h.db.Where("project_id = ?", project.ID).First(&feature, c.Param("fid")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Feature not found")
	}

	switch status := models.FeatureStatus(c.FormValue("status")); status {
	case models.FeatureStatusPlanned, models.FeatureStatusInProgress, models.FeatureStatusDone:
		feature.Status = status
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid feature status")
	}

	if err := h.db.Save(&feature).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update feature")
	}

	h.invalidateDetail(c, project.UUID)

	return c.Redirect(http.StatusSeeOther, "/projects/"+project.UUID+"/features")
}

// DeleteFeature removes a feature from the project
func (h *FeatureHandler) DeleteFeature(c echo.Context) error {
	project, err := h.findProject(c)
	if err != nil {
		return err
	}

	if err := h.db.Where("project_id = ?", project.ID).Delete(&models.Feature{}, c.Param("fid")).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete feature")
	}

	h.invalidateDetail(c, project.UUID)

	return c.Redirect(http.StatusSeeOther, "/projects/"+project.UUID+"/features")
}
