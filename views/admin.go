package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"
)

var adminNav = []NavItem{
	{Name: "Dashboard", Link: "/admin/dashboard"},
	{Name: "Hero", Link: "/admin/hero"},
	{Name: "Expertise", Link: "/admin/expertise"},
	{Name: "Skills", Link: "/admin/skills"},
	{Name: "Education", Link: "/admin/education"},
	{Name: "Works", Link: "/admin/works"},
	{Name: "Services", Link: "/admin/services"},
	{Name: "Testimonials", Link: "/admin/testimonials"},
	{Name: "Blogs", Link: "/admin/blogs"},
	{Name: "Header", Link: "/admin/header"},
	{Name: "Footer", Link: "/admin/footer"},
	{Name: "Orders", Link: "/admin/orders"},
	{Name: "Settings", Link: "/admin/settings"},
}

// adminPage wraps a body writer in the admin chrome: sidebar navigation,
// page title, logout link.
func adminPage(cfg SiteConfig, title string, body func(b *bytes.Buffer)) templ.Component {
	return component(func(b *bytes.Buffer) {
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"/>")
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		fmt.Fprintf(b, "<title>%s - Admin - %s</title>", esc(title), esc(cfg.Name))
		b.WriteString(`<link rel="stylesheet" href="/public/admin.css"/>`)
		b.WriteString("</head><body class=\"admin\">")
		b.WriteString(`<aside class="admin-nav"><nav><ul>`)
		for _, item := range adminNav {
			cls := ""
			if item.Name == title {
				cls = ` class="active"`
			}
			fmt.Fprintf(b, `<li><a href="%s"%s>%s</a></li>`, esc(item.Link), cls, esc(item.Name))
		}
		b.WriteString(`</ul><a href="/admin/logout" class="logout">Log out</a></nav></aside>`)
		fmt.Fprintf(b, `<main class="admin-main"><h1>%s</h1>`, esc(title))
		body(b)
		b.WriteString("</main></body></html>")
	})
}

// AdminLogin renders the login form. showError is a generic invalid-credentials
// message that never says which factor was wrong.
func AdminLogin(cfg SiteConfig, showError bool, csrfToken string) templ.Component {
	return component(func(b *bytes.Buffer) {
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"/>")
		fmt.Fprintf(b, "<title>Admin Login - %s</title>", esc(cfg.Name))
		b.WriteString(`<link rel="stylesheet" href="/public/admin.css"/>`)
		b.WriteString("</head><body class=\"admin login\">")
		b.WriteString(`<main class="login-box"><h1>Admin Login</h1>`)
		if showError {
			b.WriteString(`<p class="error">Invalid credentials</p>`)
		}
		b.WriteString(`<form method="post" action="/admin/login">`)
		csrfField(b, csrfToken)
		b.WriteString(`<label>Username<input type="text" name="username" autocomplete="username" required/></label>`)
		b.WriteString(`<label>Password<input type="password" name="password" autocomplete="current-password" required/></label>`)
		b.WriteString(`<button type="submit">Log in</button></form></main></body></html>`)
	})
}

// AdminDashboard shows the per-collection record counts.
func AdminDashboard(cfg SiteConfig, stats DashboardStats, csrfToken string) templ.Component {
	return adminPage(cfg, "Dashboard", func(b *bytes.Buffer) {
		cards := []struct {
			label string
			count int
			link  string
		}{
			{"Expertise", stats.Expertise, "/admin/expertise"},
			{"Skills", stats.Skills, "/admin/skills"},
			{"Education", stats.Education, "/admin/education"},
			{"Works", stats.Works, "/admin/works"},
			{"Services", stats.Services, "/admin/services"},
			{"Testimonials", stats.Testimonials, "/admin/testimonials"},
			{"Blogs", stats.Blogs, "/admin/blogs"},
			{"Orders", stats.Orders, "/admin/orders"},
		}
		b.WriteString(`<div class="stat-cards">`)
		for _, card := range cards {
			fmt.Fprintf(b, `<a class="stat-card" href="%s"><span class="count">%d</span><span class="label">%s</span></a>`,
				esc(card.link), card.count, esc(card.label))
		}
		b.WriteString("</div>")
	})
}
