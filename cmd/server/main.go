package main

import (
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"projecthub/internal/handlers"
	authMiddleware "projecthub/internal/middleware"
	"projecthub/internal/services"
)

// TemplateRenderer is a custom html/template renderer for Echo
// Uses per-page template cloning to allow each page to define its own blocks
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// NewTemplateRenderer creates a template renderer with per-page cloning
func NewTemplateRenderer() *TemplateRenderer {
	templates := make(map[string]*template.Template)

	// Parse base layout and partials as the foundation
	baseTemplate := template.Must(template.ParseGlob("web/templates/layouts/*.html"))
	template.Must(baseTemplate.ParseGlob("web/templates/partials/*.html"))

	// Find all page templates and clone base for each
	pages, err := filepath.Glob("web/templates/pages/*.html")
	if err != nil {
		log.Fatal(err)
	}

	for _, page := range pages {
		pageName := filepath.Base(page)
		// Clone the base template for this page
		pageTemplate := template.Must(baseTemplate.Clone())
		// Parse the page-specific template
		template.Must(pageTemplate.ParseFiles(page))
		templates[pageName] = pageTemplate
	}

	// Also parse standalone templates (like login) that don't use the base layout
	standalonePages, _ := filepath.Glob("web/templates/*.html")
	for _, page := range standalonePages {
		pageName := filepath.Base(page)
		if _, exists := templates[pageName]; !exists {
			templates[pageName] = template.Must(template.ParseFiles(page))
		}
	}

	return &TemplateRenderer{templates: templates}
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}
	// Check if this template has a "base" definition (page templates)
	// or should be rendered directly (standalone templates like login)
	if tmpl.Lookup("base") != nil {
		// Auto-inject user data from context if data is a map
		if dataMap, ok := data.(map[string]interface{}); ok {
			if _, exists := dataMap["UserEmail"]; !exists {
				dataMap["UserEmail"] = c.Get("userEmail")
			}
			if _, exists := dataMap["UserUID"]; !exists {
				dataMap["UserUID"] = c.Get("userUID")
			}
		} else if data == nil {
			// If data is nil, initialize it with user data
			data = map[string]interface{}{
				"UserEmail": c.Get("userEmail"),
				"UserUID":   c.Get("userUID"),
			}
		}

		return tmpl.ExecuteTemplate(w, "base", data)
	}
	// Standalone template - execute directly
	return tmpl.Execute(w, data)
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize Firebase
	credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credPath == "" {
		credPath = "./firebase-service-account.json"
	}

	authClient, err := services.InitFirebase(credPath)
	if err != nil {
		log.Printf("Warning: Firebase initialization failed: %v", err)
		log.Println("Auth features will not work until valid credentials are provided")
	}

	// Initialize Database
	var db *gorm.DB
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL != "" {
		var err error
		db, err = services.InitDB(databaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		// Run auto-migration
		if err := services.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
	} else {
		log.Println("Warning: DATABASE_URL not set, database features disabled")
	}

	// Initialize Redis cache (optional)
	var cache *services.RedisCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cache, err = services.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Redis initialization failed: %v", err)
			cache = nil
		}
	} else {
		log.Println("Warning: REDIS_URL not set, caching disabled")
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Custom error pages
	e.HTTPErrorHandler = authMiddleware.CustomErrorHandler

	// Template renderer with per-page cloning
	e.Renderer = NewTemplateRenderer()

	// Static file serving
	e.Static("/static", "web/static")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authClient)
	projectHandler := handlers.NewProjectHandler(db, cache)
	attendeeHandler := handlers.NewAttendeeHandler(db, cache)
	featureHandler := handlers.NewFeatureHandler(db, cache)
	userHandler := handlers.NewUserHandler(db)
	prefHandler := handlers.NewUserPreferenceHandler(db)

	// Public routes
	e.GET("/login", authHandler.LoginPage)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.POST("/auth/logout", authHandler.HandleLogout)

	// Protected routes
	protected := e.Group("")
	protected.Use(authMiddleware.RequireAuth(authClient))

	// Project routes
	protected.GET("/projects", projectHandler.ListProjects)
	protected.GET("/projects/new", projectHandler.NewProjectPage)
	protected.POST("/projects", projectHandler.StoreProject)
	protected.GET("/projects/:uuid", projectHandler.ShowProject)
	protected.GET("/projects/:uuid/edit", projectHandler.EditProjectPage)
	protected.POST("/projects/:uuid/update", projectHandler.UpdateProject)
	protected.POST("/projects/:uuid/delete", projectHandler.DeleteProject)
	protected.POST("/projects/:uuid/schedule", projectHandler.ScheduleReminders)
	protected.POST("/projects/:uuid/schedule/disable", projectHandler.DisableReminders)

	// Attendee management
	protected.GET("/projects/:uuid/attendees", attendeeHandler.AttendeesPage)
	protected.POST("/projects/:uuid/attendees", attendeeHandler.AddAttendee)
	protected.POST("/projects/:uuid/attendees/remove", attendeeHandler.RemoveAttendee)

	// Feature management
	protected.GET("/projects/:uuid/features", featureHandler.FeaturesPage)
	protected.POST("/projects/:uuid/features", featureHandler.AddFeature)
	protected.POST("/projects/:uuid/features/:fid/status", featureHandler.UpdateFeatureStatus)
	protected.POST("/projects/:uuid/features/:fid/delete", featureHandler.DeleteFeature)

	// User routes
	protected.GET("/users", userHandler.ListUsers)
	protected.GET("/users/new", userHandler.NewUserPage)
	protected.POST("/users", userHandler.StoreUser)
	protected.GET("/users/:id/edit", userHandler.EditUserPage)
	protected.POST("/users/:id/update", userHandler.UpdateUser)
	protected.POST("/users/:id/delete", userHandler.DeleteUser)
	protected.GET("/users/:id/preference", prefHandler.PreferencePage)
	protected.POST("/users/:id/preference", prefHandler.UpdatePreference)

	// Redirect root to the project list (or login if not authenticated)
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusTemporaryRedirect, "/projects")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
