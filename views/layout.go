package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"
)

// pageOpen writes the document head and the site header. Header is nil until
// the admin saves one; the site name stands in for a missing logo.
func pageOpen(b *bytes.Buffer, cfg SiteConfig, header *Header, title string) {
	b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"/>")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	fmt.Fprintf(b, "<title>%s</title>", esc(title))
	if cfg.Description != "" {
		fmt.Fprintf(b, `<meta name="description" content="%s"/>`, esc(cfg.Description))
	}
	b.WriteString(`<link rel="stylesheet" href="/public/styles.css"/>`)
	b.WriteString(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"/>`)
	b.WriteString("</head><body>")

	b.WriteString(`<header class="site-header"><nav><a href="/" class="logo">`)
	switch {
	case header != nil && header.Logo != "":
		fmt.Fprintf(b, `<img src="%s" alt="%s"/>`, uploadSrc(header.Logo), esc(logoText(cfg, header)))
	default:
		b.WriteString(esc(logoText(cfg, header)))
	}
	b.WriteString(`</a><ul class="nav-items">`)
	if header != nil {
		for _, item := range header.NavigationItems {
			fmt.Fprintf(b, `<li><a href="%s">%s</a></li>`, esc(item.Link), esc(item.Name))
		}
	}
	b.WriteString("</ul></nav></header>")
}

func logoText(cfg SiteConfig, header *Header) string {
	if header != nil && header.LogoText != "" {
		return header.LogoText
	}
	return cfg.Name
}

// pageClose writes the site footer and closes the document.
func pageClose(b *bytes.Buffer, footer *Footer) {
	b.WriteString(`<footer class="site-footer">`)
	if footer != nil {
		if footer.AboutText != "" {
			fmt.Fprintf(b, `<div class="footer-about"><p>%s</p></div>`, esc(footer.AboutText))
		}
		b.WriteString(`<div class="footer-contact">`)
		if footer.ContactEmail != "" {
			fmt.Fprintf(b, `<a href="mailto:%s">%s</a>`, esc(footer.ContactEmail), esc(footer.ContactEmail))
		}
		if footer.ContactPhone != "" {
			fmt.Fprintf(b, `<a href="tel:%s">%s</a>`, esc(footer.ContactPhone), esc(footer.ContactPhone))
		}
		if footer.ContactAddress != "" {
			fmt.Fprintf(b, "<span>%s</span>", esc(footer.ContactAddress))
		}
		b.WriteString("</div>")
		if len(footer.SocialLinks) > 0 {
			b.WriteString(`<ul class="social-links">`)
			for _, s := range footer.SocialLinks {
				fmt.Fprintf(b, `<li><a href="%s" rel="noopener noreferrer"><i class="%s"></i>%s</a></li>`,
					esc(s.URL), esc(s.Icon), esc(s.Platform))
			}
			b.WriteString("</ul>")
		}
		if len(footer.QuickLinks) > 0 {
			b.WriteString(`<ul class="quick-links">`)
			for _, q := range footer.QuickLinks {
				fmt.Fprintf(b, `<li><a href="%s">%s</a></li>`, esc(q.URL), esc(q.Name))
			}
			b.WriteString("</ul>")
		}
		if footer.MapEmbedURL != "" {
			fmt.Fprintf(b, `<div class="footer-map"><iframe src="%s" loading="lazy"></iframe></div>`, esc(footer.MapEmbedURL))
		}
		if footer.PrivacyPolicyContent != "" {
			b.WriteString(`<a href="/privacy-policy">Privacy Policy</a>`)
		}
	}
	b.WriteString("</footer></body></html>")
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return component(func(b *bytes.Buffer) {
		pageOpen(b, cfg, nil, "Not Found - "+cfg.Name)
		b.WriteString(`<main class="error-page"><h1>404</h1><p>Page not found.</p><a href="/">Back to home</a></main>`)
		pageClose(b, nil)
	})
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return component(func(b *bytes.Buffer) {
		pageOpen(b, cfg, nil, "Server Error - "+cfg.Name)
		b.WriteString(`<main class="error-page"><h1>500</h1><p>Something went wrong. Please try again later.</p><a href="/">Back to home</a></main>`)
		pageClose(b, nil)
	})
}
