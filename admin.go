package folio

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/eringen/folio/views"
)

func (a *App) handleLoginForm(c echo.Context) error {
	if IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	}
	return Render(c, views.AdminLogin(a.Config.site(), false, CsrfToken(c)))
}

// handleLogin checks username and password against the stored credential
// record. On mismatch it re-renders the login form with a generic message that
// never says which factor was wrong.
func (a *App) handleLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")

	admin, err := a.Store.GetAdmin(username)
	if err != nil && err != sql.ErrNoRows {
		return err
	}
	if err == nil && bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) == nil {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
	}
	a.loginLimiter.Record(c.RealIP())
	return Render(c, views.AdminLogin(a.Config.site(), true, CsrfToken(c)))
}

func (a *App) handleLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}

func (a *App) handleDashboard(c echo.Context) error {
	stats, err := a.Store.Stats()
	if err != nil {
		return err
	}
	return Render(c, views.AdminDashboard(a.Config.site(), stats, CsrfToken(c)))
}

func (a *App) handleSettingsForm(c echo.Context) error {
	settings, err := a.Store.GetSettings()
	if err != nil {
		return err
	}
	admin, err := a.Store.FirstAdmin()
	if err != nil {
		return err
	}
	if settings == nil {
		settings = &views.Settings{}
	}
	settings.Username = admin.Username
	return Render(c, views.AdminSettings(a.Config.site(), *settings, CsrfToken(c)))
}

func (a *App) handleSettingsSave(c echo.Context) error {
	settings := views.Settings{
		Email:              strings.TrimSpace(c.FormValue("email")),
		PayPalClientID:     strings.TrimSpace(c.FormValue("paypalClientId")),
		PayPalClientSecret: strings.TrimSpace(c.FormValue("paypalClientSecret")),
		PayPalSandbox:      c.FormValue("paypalSandbox") == "on",
	}
	admin, err := a.Store.FirstAdmin()
	if err != nil {
		return err
	}
	settings.Username = admin.Username
	if err := a.Store.SaveSettings(settings); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/settings")
}

// handleChangeCredentials updates the admin username and optionally the
// password. A username change invalidates the session and forces a fresh
// login under the new identity.
func (a *App) handleChangeCredentials(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if username == "" {
		return c.Redirect(http.StatusSeeOther, "/admin/settings")
	}

	admin, err := a.Store.FirstAdmin()
	if err != nil {
		if err == sql.ErrNoRows {
			return c.String(http.StatusNotFound, "Admin not found")
		}
		return err
	}
	if err := a.Store.UpdateAdminCredentials(admin.ID, username, password); err != nil {
		return err
	}

	if username != admin.Username {
		if err := clearAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/login")
	}
	return c.Redirect(http.StatusSeeOther, "/admin/settings")
}
