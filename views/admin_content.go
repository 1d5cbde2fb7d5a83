package views

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/a-h/templ"
)

// AdminHero renders the hero singleton form. hero is nil before the first save.
func AdminHero(cfg SiteConfig, hero *Hero, csrfToken string) templ.Component {
	return adminPage(cfg, "Hero", func(b *bytes.Buffer) {
		h := Hero{}
		if hero != nil {
			h = *hero
		}
		b.WriteString(`<form method="post" action="/admin/hero" enctype="multipart/form-data">`)
		csrfField(b, csrfToken)
		textInput(b, "text", "title", "Title", h.Title)
		b.WriteString(`<fieldset class="repeat" data-field="subtitles"><legend>Subtitles</legend>`)
		for _, s := range h.Subtitles {
			textInput(b, "text", "subtitles", "Subtitle", s)
		}
		textInput(b, "text", "subtitles", "Subtitle", "")
		b.WriteString(`</fieldset>`)
		textArea(b, "description", "Description", h.Description, 4)
		textInput(b, "url", "resumeLink", "Resume link", h.ResumeLink)
		writeImageField(b, "image", "Image", h.Image)
		b.WriteString(`<button type="submit">Save</button></form>`)
	})
}

// writeImageField renders a file input plus the currently stored image, if
// any. Leaving the input empty on save preserves the stored file.
func writeImageField(b *bytes.Buffer, name, label, current string) {
	fmt.Fprintf(b, `<label>%s<input type="file" name="%s" accept="image/*"/></label>`, esc(label), esc(name))
	if current != "" {
		fmt.Fprintf(b, `<img class="current-image" src="%s" alt="current"/>`, uploadSrc(current))
	}
}

// AdminExpertise renders the expertise list with inline edit forms and the
// create form.
func AdminExpertise(cfg SiteConfig, expertise []Expertise, csrfToken string) templ.Component {
	return adminPage(cfg, "Expertise", func(b *bytes.Buffer) {
		for _, e := range expertise {
			b.WriteString(`<details class="record"><summary>` + esc(e.Title) + `</summary>`)
			fmt.Fprintf(b, `<form method="post" action="/admin/expertise/edit/%s">`, esc(e.ID))
			csrfField(b, csrfToken)
			writeExpertiseFields(b, e)
			b.WriteString(`<button type="submit">Update</button></form>`)
			deleteForm(b, "/admin/expertise/delete/"+esc(e.ID), csrfToken)
			b.WriteString(`</details>`)
		}
		b.WriteString(`<h2>Add expertise</h2><form method="post" action="/admin/expertise">`)
		csrfField(b, csrfToken)
		writeExpertiseFields(b, Expertise{})
		b.WriteString(`<button type="submit">Create</button></form>`)
	})
}

func writeExpertiseFields(b *bytes.Buffer, e Expertise) {
	textInput(b, "text", "title", "Title", e.Title)
	textArea(b, "description", "Description", e.Description, 3)
	b.WriteString(`<fieldset class="repeat" data-field="descriptionPoints"><legend>Points</legend>`)
	for _, p := range e.DescriptionPoints {
		textInput(b, "text", "descriptionPoints", "Point", p)
	}
	textInput(b, "text", "descriptionPoints", "Point", "")
	b.WriteString(`</fieldset>`)
	textInput(b, "text", "icon", "Icon class", e.Icon)
	textInput(b, "url", "link", "Link", e.Link)
}

// AdminSkills renders the skill list and create form.
func AdminSkills(cfg SiteConfig, skills []Skill, csrfToken string) templ.Component {
	return adminPage(cfg, "Skills", func(b *bytes.Buffer) {
		if len(skills) > 0 {
			b.WriteString(`<table><thead><tr><th>Name</th><th>Category</th><th>Percentage</th><th></th></tr></thead><tbody>`)
			for _, s := range skills {
				fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td><td>%d%%</td><td>", esc(s.Name), esc(s.Category), s.Percentage)
				deleteForm(b, "/admin/skills/delete/"+esc(s.ID), csrfToken)
				b.WriteString("</td></tr>")
			}
			b.WriteString("</tbody></table>")
		}
		b.WriteString(`<h2>Add skill</h2><form method="post" action="/admin/skills">`)
		csrfField(b, csrfToken)
		textInput(b, "text", "name", "Name", "")
		textInput(b, "number", "percentage", "Percentage (0-100)", "")
		textInput(b, "text", "category", "Category", "")
		textInput(b, "text", "icon", "Icon class", "")
		b.WriteString(`<button type="submit">Create</button></form>`)
	})
}

// AdminEducation renders the education list with inline edit forms.
func AdminEducation(cfg SiteConfig, education []Education, csrfToken string) templ.Component {
	return adminPage(cfg, "Education", func(b *bytes.Buffer) {
		for _, e := range education {
			b.WriteString(`<details class="record"><summary>` + esc(e.Degree) + `</summary>`)
			fmt.Fprintf(b, `<form method="post" action="/admin/education/edit/%s">`, esc(e.ID))
			csrfField(b, csrfToken)
			writeEducationFields(b, e)
			b.WriteString(`<button type="submit">Update</button></form>`)
			deleteForm(b, "/admin/education/delete/"+esc(e.ID), csrfToken)
			b.WriteString(`</details>`)
		}
		b.WriteString(`<h2>Add education</h2><form method="post" action="/admin/education">`)
		csrfField(b, csrfToken)
		writeEducationFields(b, Education{})
		b.WriteString(`<button type="submit">Create</button></form>`)
	})
}

func writeEducationFields(b *bytes.Buffer, e Education) {
	textInput(b, "text", "degree", "Degree", e.Degree)
	textInput(b, "text", "institution", "Institution", e.Institution)
	textInput(b, "text", "year", "Year", e.Year)
	textArea(b, "description", "Description", e.Description, 3)
	textInput(b, "url", "link", "Link", e.Link)
}

// AdminWorks renders the works list with inline edit forms and image replace.
func AdminWorks(cfg SiteConfig, works []Work, csrfToken string) templ.Component {
	return adminPage(cfg, "Works", func(b *bytes.Buffer) {
		for _, w := range works {
			b.WriteString(`<details class="record"><summary>` + esc(w.Title) + `</summary>`)
			fmt.Fprintf(b, `<form method="post" action="/admin/works/edit/%s" enctype="multipart/form-data">`, esc(w.ID))
			csrfField(b, csrfToken)
			writeWorkFields(b, w)
			b.WriteString(`<button type="submit">Update</button></form>`)
			deleteForm(b, "/admin/works/delete/"+esc(w.ID), csrfToken)
			b.WriteString(`</details>`)
		}
		b.WriteString(`<h2>Add work</h2><form method="post" action="/admin/works" enctype="multipart/form-data">`)
		csrfField(b, csrfToken)
		writeWorkFields(b, Work{})
		b.WriteString(`<button type="submit">Create</button></form>`)
	})
}

func writeWorkFields(b *bytes.Buffer, w Work) {
	textInput(b, "text", "title", "Title", w.Title)
	textInput(b, "text", "category", "Category", w.Category)
	textArea(b, "description", "Description", w.Description, 3)
	textInput(b, "url", "link", "Link", w.Link)
	writeImageField(b, "image", "Image", w.Image)
}

// AdminServices renders the service list and create form.
func AdminServices(cfg SiteConfig, services []Service, csrfToken string) templ.Component {
	return adminPage(cfg, "Services", func(b *bytes.Buffer) {
		if len(services) > 0 {
			b.WriteString(`<table><thead><tr><th>Title</th><th>Price</th><th>Features</th><th></th></tr></thead><tbody>`)
			for _, s := range services {
				fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>",
					esc(s.Title), Money(s.Price), esc(strings.Join(s.Features, ", ")))
				deleteForm(b, "/admin/services/delete/"+esc(s.ID), csrfToken)
				b.WriteString("</td></tr>")
			}
			b.WriteString("</tbody></table>")
		}
		b.WriteString(`<h2>Add service</h2><form method="post" action="/admin/services">`)
		csrfField(b, csrfToken)
		textInput(b, "text", "title", "Title", "")
		textArea(b, "description", "Description", "", 3)
		textInput(b, "number", "price", "Price", "")
		textInput(b, "text", "features", "Features (comma separated)", "")
		textInput(b, "text", "icon", "Icon class", "")
		b.WriteString(`<button type="submit">Create</button></form>`)
	})
}

// AdminTestimonials renders the testimonial list and create form.
func AdminTestimonials(cfg SiteConfig, testimonials []Testimonial, csrfToken string) templ.Component {
	return adminPage(cfg, "Testimonials", func(b *bytes.Buffer) {
		if len(testimonials) > 0 {
			b.WriteString(`<table><thead><tr><th>Name</th><th>Company</th><th>Rating</th><th></th></tr></thead><tbody>`)
			for _, t := range testimonials {
				fmt.Fprintf(b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>", esc(t.Name), esc(t.Company), Stars(t.Rating))
				deleteForm(b, "/admin/testimonials/delete/"+esc(t.ID), csrfToken)
				b.WriteString("</td></tr>")
			}
			b.WriteString("</tbody></table>")
		}
		b.WriteString(`<h2>Add testimonial</h2><form method="post" action="/admin/testimonials" enctype="multipart/form-data">`)
		csrfField(b, csrfToken)
		textInput(b, "text", "name", "Name", "")
		textInput(b, "text", "position", "Position", "")
		textInput(b, "text", "company", "Company", "")
		textArea(b, "message", "Message", "", 3)
		textInput(b, "number", "rating", "Rating (1-5)", "5")
		writeImageField(b, "image", "Photo", "")
		b.WriteString(`<button type="submit">Create</button></form>`)
	})
}

// AdminBlogs renders the post list (newest first) and create form.
func AdminBlogs(cfg SiteConfig, posts []BlogPost, csrfToken string) templ.Component {
	return adminPage(cfg, "Blogs", func(b *bytes.Buffer) {
		if len(posts) > 0 {
			b.WriteString(`<table><thead><tr><th>Title</th><th>Category</th><th>Date</th><th></th></tr></thead><tbody>`)
			for _, p := range posts {
				fmt.Fprintf(b, `<tr><td><a href="/blog/%s">%s</a></td><td>%s</td><td>%s</td><td>`,
					esc(p.ID), esc(p.Title), esc(p.Category), esc(p.Date.Format("2006-01-02")))
				deleteForm(b, "/admin/blogs/delete/"+esc(p.ID), csrfToken)
				b.WriteString("</td></tr>")
			}
			b.WriteString("</tbody></table>")
		}
		b.WriteString(`<h2>Add post</h2><form method="post" action="/admin/blogs" enctype="multipart/form-data">`)
		csrfField(b, csrfToken)
		textInput(b, "text", "title", "Title", "")
		textArea(b, "excerpt", "Excerpt", "", 2)
		textArea(b, "content", "Content (Markdown)", "", 10)
		textInput(b, "text", "author", "Author", "")
		textInput(b, "date", "date", "Date (defaults to today)", "")
		textInput(b, "text", "category", "Category", "")
		writeImageField(b, "image", "Cover image", "")
		b.WriteString(`<button type="submit">Create</button></form>`)
	})
}
