// Package folio is a personal-portfolio site with an admin content panel,
// built with Go, Echo, and templ. Every content section (hero, expertise,
// skills, education, works, services, testimonials, blog, header, footer)
// is editable from the admin dashboard and stored in SQLite.
package folio

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the central folio application. It wires together the store,
// handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store

	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init validates config, opens the store, seeds the admin credential record,
// and registers middleware and routes. It is split from Start so tests can
// drive the Echo instance without binding a listener.
func (a *App) Init() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("folio: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store

	// Seeding must complete before the login handler can run.
	if err := store.SeedAdmin(a.Config.AdminUsername, a.Config.AdminPassword); err != nil {
		return fmt.Errorf("folio: seed admin: %w", err)
	}

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and runs the server.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.Static("/uploads", a.Config.UploadsDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public routes
	e.GET("/", a.handleHome)
	e.GET("/privacy-policy", a.handlePrivacyPolicy)
	e.GET("/blog/:id", a.handleBlogPost)
	e.POST("/order-service", a.handleOrderService)

	// Login stays outside the gated group so anonymous users can reach it.
	e.GET("/admin/login", a.handleLoginForm)
	e.POST("/admin/login", a.handleLogin)
	e.GET("/admin/logout", a.handleLogout)

	admin := e.Group("/admin", requireAdmin)
	admin.GET("/dashboard", a.handleDashboard)

	admin.GET("/hero", a.handleHeroForm)
	admin.POST("/hero", a.handleHeroSave)

	admin.GET("/expertise", a.handleExpertiseList)
	admin.POST("/expertise", a.handleExpertiseCreate)
	admin.POST("/expertise/edit/:id", a.handleExpertiseEdit)
	admin.POST("/expertise/delete/:id", a.handleExpertiseDelete)

	admin.GET("/skills", a.handleSkillList)
	admin.POST("/skills", a.handleSkillCreate)
	admin.POST("/skills/delete/:id", a.handleSkillDelete)

	admin.GET("/education", a.handleEducationList)
	admin.POST("/education", a.handleEducationCreate)
	admin.POST("/education/edit/:id", a.handleEducationEdit)
	admin.POST("/education/delete/:id", a.handleEducationDelete)

	admin.GET("/works", a.handleWorkList)
	admin.POST("/works", a.handleWorkCreate)
	admin.POST("/works/edit/:id", a.handleWorkEdit)
	admin.POST("/works/delete/:id", a.handleWorkDelete)

	admin.GET("/services", a.handleServiceList)
	admin.POST("/services", a.handleServiceCreate)
	admin.POST("/services/delete/:id", a.handleServiceDelete)

	admin.GET("/testimonials", a.handleTestimonialList)
	admin.POST("/testimonials", a.handleTestimonialCreate)
	admin.POST("/testimonials/delete/:id", a.handleTestimonialDelete)

	admin.GET("/blogs", a.handleBlogList)
	admin.POST("/blogs", a.handleBlogCreate)
	admin.POST("/blogs/delete/:id", a.handleBlogDelete)

	admin.GET("/header", a.handleHeaderForm)
	admin.POST("/header", a.handleHeaderSave)

	admin.GET("/footer", a.handleFooterForm)
	admin.POST("/footer", a.handleFooterSave)

	admin.GET("/orders", a.handleOrderList)
	admin.POST("/orders/update-status/:id", a.handleOrderStatus)

	admin.GET("/settings", a.handleSettingsForm)
	admin.POST("/settings", a.handleSettingsSave)
	admin.POST("/change-credentials", a.handleChangeCredentials)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
