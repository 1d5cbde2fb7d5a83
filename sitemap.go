package folio

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// handleSitemap lists the public pages: home, privacy policy, and blog posts.
func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Store.ListBlogs(0)
	if err != nil {
		return err
	}
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: buildURL(base)},
		{Loc: buildURL(base, "privacy-policy")},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     buildURL(base, "blog", p.ID),
			LastMod: p.Date.Format("2006-01-02"),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

// buildURL joins a base URL with path segments.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if u.Path != "" && !strings.HasPrefix(u.Path, "/") {
		u.Path = "/" + u.Path
	}
	return u.String()
}
