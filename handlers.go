package folio

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

// handleHome aggregates every public content section into one page render.
func (a *App) handleHome(c echo.Context) error {
	data, err := a.homeData()
	if err != nil {
		return err
	}
	return Render(c, views.Home(a.Config.site(), data))
}

func (a *App) homeData() (views.HomeData, error) {
	var data views.HomeData
	var err error
	if data.Hero, err = a.Store.GetHero(); err != nil {
		return data, err
	}
	if data.Expertise, err = a.Store.ListExpertise(); err != nil {
		return data, err
	}
	if data.Skills, err = a.Store.ListSkills(); err != nil {
		return data, err
	}
	if data.Education, err = a.Store.ListEducation(); err != nil {
		return data, err
	}
	if data.Works, err = a.Store.ListWorks(); err != nil {
		return data, err
	}
	if data.Services, err = a.Store.ListServices(); err != nil {
		return data, err
	}
	if data.Testimonials, err = a.Store.ListTestimonials(); err != nil {
		return data, err
	}
	// The home page shows only the three newest posts.
	if data.Blogs, err = a.Store.ListBlogs(3); err != nil {
		return data, err
	}
	if data.Header, err = a.Store.GetHeader(); err != nil {
		return data, err
	}
	if data.Footer, err = a.Store.GetFooter(); err != nil {
		return data, err
	}
	return data, nil
}

func (a *App) handlePrivacyPolicy(c echo.Context) error {
	header, err := a.Store.GetHeader()
	if err != nil {
		return err
	}
	footer, err := a.Store.GetFooter()
	if err != nil {
		return err
	}
	return Render(c, views.PrivacyPolicy(a.Config.site(), header, footer))
}

func (a *App) handleBlogPost(c echo.Context) error {
	post, err := a.Store.GetBlog(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.site()))
		}
		return err
	}
	header, err := a.Store.GetHeader()
	if err != nil {
		return err
	}
	footer, err := a.Store.GetFooter()
	if err != nil {
		return err
	}
	return Render(c, views.Blog(a.Config.site(), post, header, footer))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

// handleRobots generates robots.txt dynamically from the canonical URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.Config.site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
