package main

import (
	"log"

	"github.com/eringen/folio"
)

func main() {
	app := folio.New(folio.SiteConfig{
		Name:          folio.EnvOr("SITE_NAME", "Portfolio"),
		URL:           folio.EnvOr("SITE_URL", "http://localhost:5000"),
		Description:   folio.EnvOr("SITE_DESCRIPTION", ""),
		Author:        folio.EnvOr("SITE_AUTHOR", ""),
		Addr:          folio.EnvOr("ADDR", ":5000"),
		DatabasePath:  folio.EnvOr("DATABASE_PATH", "data/folio.db"),
		UploadsDir:    folio.EnvOr("UPLOADS_DIR", "public/uploads"),
		AdminUsername: folio.EnvOr("ADMIN_USERNAME", "admin"),
		AdminPassword: folio.MustEnv("ADMIN_PASSWORD"),
		SessionSecret: folio.MustEnv("ADMIN_SESSION_SECRET"),
		CookieSecure:  folio.EnvOr("COOKIE_SECURE", "") == "true",
	})
	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
