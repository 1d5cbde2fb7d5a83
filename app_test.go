package folio

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/folio/views"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	app := New(SiteConfig{
		Name:          "Test Site",
		URL:           "http://localhost:5000",
		Author:        "Tester",
		AdminUsername: "admin",
		AdminPassword: "secret123",
		SessionSecret: "0123456789abcdef",
		DatabasePath:  filepath.Join(dir, "test.db"),
		UploadsDir:    filepath.Join(dir, "uploads"),
	})
	require.NoError(t, app.Init())
	t.Cleanup(func() { app.Close() })
	return app
}

func doRequest(app *App, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	app.Echo.ServeHTTP(rec, req)
	return rec
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/admin/dashboard", "/admin/hero", "/admin/expertise", "/admin/orders", "/admin/settings"} {
		rec := doRequest(app, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"), path)
	}

	// An anonymous mutation never reaches the store. Without a CSRF token the
	// middleware rejects it before the auth gate even runs.
	form := url.Values{"title": {"Sneaky"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/expertise", strings.NewReader(form.Encode()))
	req.Header.Set(echoContentType, echoFormContentType)
	rec := doRequest(app, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	list, err := app.Store.ListExpertise()
	require.NoError(t, err)
	assert.Empty(t, list)
}

const (
	echoContentType     = "Content-Type"
	echoFormContentType = "application/x-www-form-urlencoded"
)

func TestOrderIntake(t *testing.T) {
	app := newTestApp(t)

	svcID, err := app.Store.CreateService(views.Service{Title: "Logo Design", Price: 150})
	require.NoError(t, err)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/order-service", strings.NewReader(body))
		req.Header.Set(echoContentType, "application/json")
		return doRequest(app, req)
	}

	t.Run("unknown service", func(t *testing.T) {
		rec := post(`{"serviceId":"no-such-id","customerName":"Ada"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Service not found")

		orders, err := app.Store.ListOrders()
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("missing service id", func(t *testing.T) {
		rec := post(`{"customerName":"Ada"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid order snapshots price", func(t *testing.T) {
		rec := post(`{"serviceId":"` + svcID + `","customerName":"Ada","customerEmail":"ada@example.com"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Contains(t, rec.Body.String(), `"orderId"`)

		orders, err := app.Store.ListOrders()
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, 150.0, orders[0].Amount)
		assert.Equal(t, views.OrderPending, orders[0].Status)
		assert.Equal(t, "Ada", orders[0].CustomerName)
	})
}

func TestPublicPages(t *testing.T) {
	app := newTestApp(t)

	_, err := app.Store.CreateBlog(views.BlogPost{Title: "First Post", Content: "# Heading\n\nBody text."})
	require.NoError(t, err)
	posts, err := app.Store.ListBlogs(1)
	require.NoError(t, err)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Test Site")
	assert.Contains(t, rec.Body.String(), "First Post")

	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/blog/"+posts[0].ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Heading</h1>")

	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/blog/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http://localhost:5000/blog/"+posts[0].ID)

	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/feed.xml", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "First Post")

	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /admin")
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var csrf *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "_csrf" {
			csrf = c
		}
	}
	require.NotNil(t, csrf, "login page must issue a CSRF cookie")

	login := func(username, password string) *httptest.ResponseRecorder {
		form := url.Values{"username": {username}, "password": {password}}
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
		req.Header.Set(echoContentType, echoFormContentType)
		req.Header.Set("X-CSRF-Token", csrf.Value)
		return doRequest(app, req, csrf)
	}

	// Wrong password re-renders the form without a session.
	rec = login("admin", "wrong")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, sessionName, c.Name, "failed login must not set a session cookie")
	}

	rec = login("admin", "secret123")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	var sess *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionName {
			sess = c
		}
	}
	require.NotNil(t, sess, "successful login must set the session cookie")

	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), sess)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dashboard")

	// Logout invalidates the cookie and the gate closes again.
	rec = doRequest(app, httptest.NewRequest(http.MethodGet, "/admin/logout", nil), sess)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestChangeCredentialsForcesRelogin(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	var csrf *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "_csrf" {
			csrf = c
		}
	}
	require.NotNil(t, csrf)

	form := url.Values{"username": {"admin"}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set(echoContentType, echoFormContentType)
	req.Header.Set("X-CSRF-Token", csrf.Value)
	rec = doRequest(app, req, csrf)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	var sess *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionName {
			sess = c
		}
	}
	require.NotNil(t, sess)

	form = url.Values{"username": {"boss"}, "password": {""}}
	req = httptest.NewRequest(http.MethodPost, "/admin/change-credentials", strings.NewReader(form.Encode()))
	req.Header.Set(echoContentType, echoFormContentType)
	req.Header.Set("X-CSRF-Token", csrf.Value)
	rec = doRequest(app, req, csrf, sess)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionName {
			cleared = c
		}
	}
	require.NotNil(t, cleared, "username change must invalidate the session cookie")
	assert.Less(t, cleared.MaxAge, 0)

	// The rename took effect; the old password still works under the new name.
	renamed, err := app.Store.GetAdmin("boss")
	require.NoError(t, err)
	assert.Equal(t, "boss", renamed.Username)
}

func TestLoginRateLimit(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(app, httptest.NewRequest(http.MethodGet, "/admin/login", nil))
	var csrf *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "_csrf" {
			csrf = c
		}
	}
	require.NotNil(t, csrf)

	attempt := func() *httptest.ResponseRecorder {
		form := url.Values{"username": {"admin"}, "password": {"wrong"}}
		req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
		req.Header.Set(echoContentType, echoFormContentType)
		req.Header.Set("X-CSRF-Token", csrf.Value)
		return doRequest(app, req, csrf)
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, attempt().Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, attempt().Code)
}
