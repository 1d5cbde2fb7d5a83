package folio

import (
	"log"
	"os"

	"github.com/eringen/folio/views"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:5000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name shown on blog posts without one

	Addr         string // Listen address (default ":5000")
	DatabasePath string // SQLite path (default "data/folio.db")
	UploadsDir   string // Upload storage dir (default "public/uploads")

	AdminUsername string // Seed admin username (default "admin")
	AdminPassword string // Required: seed admin password
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:5000"
	}
	if c.Addr == "" {
		c.Addr = ":5000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.UploadsDir == "" {
		c.UploadsDir = "public/uploads"
	}
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
	}
}

// site returns the subset of config the templates consume.
func (c SiteConfig) site() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithCustomRoutes registers additional routes on the Echo instance before
// the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("folio: required environment variable %s is not set", key)
	}
	return v
}
