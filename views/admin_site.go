package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"
)

// AdminHeader renders the header singleton form with the navigation rows.
func AdminHeader(cfg SiteConfig, header *Header, csrfToken string) templ.Component {
	return adminPage(cfg, "Header", func(b *bytes.Buffer) {
		h := Header{}
		if header != nil {
			h = *header
		}
		b.WriteString(`<form method="post" action="/admin/header" enctype="multipart/form-data">`)
		csrfField(b, csrfToken)
		textInput(b, "text", "logoText", "Logo text", h.LogoText)
		writeImageField(b, "logo", "Logo image", h.Logo)
		b.WriteString(`<fieldset class="rows"><legend>Navigation</legend>`)
		for _, item := range h.NavigationItems {
			writeNavRow(b, item)
		}
		writeNavRow(b, NavItem{})
		b.WriteString(`</fieldset><button type="submit">Save</button></form>`)
	})
}

func writeNavRow(b *bytes.Buffer, item NavItem) {
	b.WriteString(`<div class="row">`)
	textInput(b, "text", "navNames", "Name", item.Name)
	textInput(b, "text", "navLinks", "Link", item.Link)
	b.WriteString(`</div>`)
}

// AdminFooter renders the footer singleton form with social link and quick
// link rows.
func AdminFooter(cfg SiteConfig, footer *Footer, csrfToken string) templ.Component {
	return adminPage(cfg, "Footer", func(b *bytes.Buffer) {
		f := Footer{}
		if footer != nil {
			f = *footer
		}
		b.WriteString(`<form method="post" action="/admin/footer">`)
		csrfField(b, csrfToken)
		textArea(b, "aboutText", "About text", f.AboutText, 3)
		textInput(b, "email", "contactEmail", "Contact email", f.ContactEmail)
		textInput(b, "text", "contactPhone", "Contact phone", f.ContactPhone)
		textInput(b, "text", "contactAddress", "Contact address", f.ContactAddress)
		textInput(b, "url", "mapEmbedUrl", "Map embed URL", f.MapEmbedURL)
		b.WriteString(`<fieldset class="rows"><legend>Social links</legend>`)
		for _, s := range f.SocialLinks {
			writeSocialRow(b, s)
		}
		writeSocialRow(b, SocialLink{})
		b.WriteString(`</fieldset><fieldset class="rows"><legend>Quick links</legend>`)
		for _, q := range f.QuickLinks {
			writeQuickLinkRow(b, q)
		}
		writeQuickLinkRow(b, QuickLink{})
		b.WriteString(`</fieldset>`)
		textArea(b, "privacyPolicyContent", "Privacy policy (Markdown)", f.PrivacyPolicyContent, 10)
		b.WriteString(`<button type="submit">Save</button></form>`)
	})
}

func writeSocialRow(b *bytes.Buffer, s SocialLink) {
	b.WriteString(`<div class="row">`)
	textInput(b, "text", "socialPlatforms", "Platform", s.Platform)
	textInput(b, "url", "socialUrls", "URL", s.URL)
	textInput(b, "text", "socialIcons", "Icon class", s.Icon)
	b.WriteString(`</div>`)
}

func writeQuickLinkRow(b *bytes.Buffer, q QuickLink) {
	b.WriteString(`<div class="row">`)
	textInput(b, "text", "quickLinkNames", "Name", q.Name)
	textInput(b, "url", "quickLinkUrls", "URL", q.URL)
	b.WriteString(`</div>`)
}

// AdminOrders renders the order table with a status select per row.
func AdminOrders(cfg SiteConfig, orders []Order, csrfToken string) templ.Component {
	return adminPage(cfg, "Orders", func(b *bytes.Buffer) {
		if len(orders) == 0 {
			b.WriteString(`<p>No orders yet.</p>`)
			return
		}
		b.WriteString(`<table><thead><tr><th>Date</th><th>Service</th><th>Customer</th><th>Amount</th><th>Payment</th><th>Status</th></tr></thead><tbody>`)
		for _, o := range orders {
			serviceTitle := o.ServiceID
			if o.Service != nil {
				serviceTitle = o.Service.Title
			}
			fmt.Fprintf(b, `<tr><td>%s</td><td>%s</td><td>%s<br/><a href="mailto:%s">%s</a></td><td>%s</td><td>%s</td><td>`,
				esc(o.CreatedAt.Format("2006-01-02 15:04")), esc(serviceTitle),
				esc(o.CustomerName), esc(o.CustomerEmail), esc(o.CustomerEmail),
				Money(o.Amount), esc(o.PaymentStatus))
			fmt.Fprintf(b, `<form method="post" action="/admin/orders/update-status/%s">`, esc(o.ID))
			csrfField(b, csrfToken)
			b.WriteString(`<select name="status">`)
			for _, s := range OrderStatuses {
				if s == o.Status {
					fmt.Fprintf(b, `<option value="%s" selected>%s</option>`, esc(s), esc(s))
				} else {
					fmt.Fprintf(b, `<option value="%s">%s</option>`, esc(s), esc(s))
				}
			}
			b.WriteString(`</select><button type="submit">Update</button></form>`)
			if o.Message != "" {
				fmt.Fprintf(b, `<details><summary>Message</summary><p>%s</p></details>`, esc(o.Message))
			}
			b.WriteString(`</td></tr>`)
		}
		b.WriteString(`</tbody></table>`)
	})
}

// AdminSettings renders the payment settings form and the credentials form.
func AdminSettings(cfg SiteConfig, settings Settings, csrfToken string) templ.Component {
	return adminPage(cfg, "Settings", func(b *bytes.Buffer) {
		b.WriteString(`<h2>Payments</h2><form method="post" action="/admin/settings">`)
		csrfField(b, csrfToken)
		textInput(b, "email", "email", "Contact email", settings.Email)
		textInput(b, "text", "paypalClientId", "PayPal client ID", settings.PayPalClientID)
		textInput(b, "password", "paypalClientSecret", "PayPal client secret", settings.PayPalClientSecret)
		checked := ""
		if settings.PayPalSandbox {
			checked = " checked"
		}
		fmt.Fprintf(b, `<label><input type="checkbox" name="paypalSandbox"%s/> Use PayPal sandbox</label>`, checked)
		b.WriteString(`<button type="submit">Save</button></form>`)

		b.WriteString(`<h2>Admin credentials</h2><form method="post" action="/admin/change-credentials">`)
		csrfField(b, csrfToken)
		textInput(b, "text", "username", "Username", settings.Username)
		textInput(b, "password", "password", "New password (blank keeps current)", "")
		b.WriteString(`<button type="submit">Update</button></form>`)
	})
}
