package folio

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/views"
)

// Admin content handlers. The flow is the same everywhere: parse the form,
// optionally save an upload, issue one store call, redirect back to the
// section. Singleton saves assemble a full replacement payload and merge in
// the stored image reference when no new file was uploaded.

// --- Hero ---

func (a *App) handleHeroForm(c echo.Context) error {
	hero, err := a.Store.GetHero()
	if err != nil {
		return err
	}
	return Render(c, views.AdminHero(a.Config.site(), hero, CsrfToken(c)))
}

func (a *App) handleHeroSave(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return err
	}
	hero := views.Hero{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Subtitles:   filterEmpty(form["subtitles"]),
		Description: c.FormValue("description"),
		ResumeLink:  strings.TrimSpace(c.FormValue("resumeLink")),
	}
	image, err := a.saveUpload(c, "image")
	if err != nil {
		return err
	}
	if image != "" {
		hero.Image = image
	} else if prev, err := a.Store.GetHero(); err != nil {
		return err
	} else if prev != nil {
		hero.Image = prev.Image
	}
	if err := a.Store.SaveHero(hero); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/hero")
}

// --- Expertise ---

func (a *App) handleExpertiseList(c echo.Context) error {
	expertise, err := a.Store.ListExpertise()
	if err != nil {
		return err
	}
	return Render(c, views.AdminExpertise(a.Config.site(), expertise, CsrfToken(c)))
}

func expertiseFromForm(c echo.Context) (views.Expertise, error) {
	form, err := c.FormParams()
	if err != nil {
		return views.Expertise{}, err
	}
	return views.Expertise{
		Title:             strings.TrimSpace(c.FormValue("title")),
		Description:       c.FormValue("description"),
		DescriptionPoints: filterEmpty(form["descriptionPoints"]),
		Icon:              strings.TrimSpace(c.FormValue("icon")),
		Link:              strings.TrimSpace(c.FormValue("link")),
	}, nil
}

func (a *App) handleExpertiseCreate(c echo.Context) error {
	e, err := expertiseFromForm(c)
	if err != nil {
		return err
	}
	if _, err := a.Store.CreateExpertise(e); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/expertise")
}

func (a *App) handleExpertiseEdit(c echo.Context) error {
	e, err := expertiseFromForm(c)
	if err != nil {
		return err
	}
	if err := a.Store.UpdateExpertise(c.Param("id"), e); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/expertise")
}

func (a *App) handleExpertiseDelete(c echo.Context) error {
	if err := a.Store.DeleteExpertise(c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/expertise")
}

// --- Skills ---

func (a *App) handleSkillList(c echo.Context) error {
	skills, err := a.Store.ListSkills()
	if err != nil {
		return err
	}
	return Render(c, views.AdminSkills(a.Config.site(), skills, CsrfToken(c)))
}

func (a *App) handleSkillCreate(c echo.Context) error {
	percentage, _ := strconv.Atoi(strings.TrimSpace(c.FormValue("percentage")))
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	skill := views.Skill{
		Name:       strings.TrimSpace(c.FormValue("name")),
		Percentage: percentage,
		Category:   strings.TrimSpace(c.FormValue("category")),
		Icon:       strings.TrimSpace(c.FormValue("icon")),
	}
	if _, err := a.Store.CreateSkill(skill); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/skills")
}

func (a *App) handleSkillDelete(c echo.Context) error {
	if err := a.Store.DeleteSkill(c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/skills")
}

// --- Education ---

func (a *App) handleEducationList(c echo.Context) error {
	education, err := a.Store.ListEducation()
	if err != nil {
		return err
	}
	return Render(c, views.AdminEducation(a.Config.site(), education, CsrfToken(c)))
}

func educationFromForm(c echo.Context) views.Education {
	return views.Education{
		Degree:      strings.TrimSpace(c.FormValue("degree")),
		Institution: strings.TrimSpace(c.FormValue("institution")),
		Year:        strings.TrimSpace(c.FormValue("year")),
		Description: c.FormValue("description"),
		Link:        strings.TrimSpace(c.FormValue("link")),
	}
}

func (a *App) handleEducationCreate(c echo.Context) error {
	if _, err := a.Store.CreateEducation(educationFromForm(c)); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/education")
}

func (a *App) handleEducationEdit(c echo.Context) error {
	if err := a.Store.UpdateEducation(c.Param("id"), educationFromForm(c)); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/education")
}

func (a *App) handleEducationDelete(c echo.Context) error {
	if err := a.Store.DeleteEducation(c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/education")
}

// --- Works ---

func (a *App) handleWorkList(c echo.Context) error {
	works, err := a.Store.ListWorks()
	if err != nil {
		return err
	}
	return Render(c, views.AdminWorks(a.Config.site(), works, CsrfToken(c)))
}

func workFromForm(c echo.Context) views.Work {
	return views.Work{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Category:    strings.TrimSpace(c.FormValue("category")),
		Description: c.FormValue("description"),
		Link:        strings.TrimSpace(c.FormValue("link")),
	}
}

func (a *App) handleWorkCreate(c echo.Context) error {
	work := workFromForm(c)
	image, err := a.saveUpload(c, "image")
	if err != nil {
		return err
	}
	work.Image = image
	if _, err := a.Store.CreateWork(work); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/works")
}

func (a *App) handleWorkEdit(c echo.Context) error {
	work := workFromForm(c)
	image, err := a.saveUpload(c, "image")
	if err != nil {
		return err
	}
	if image != "" {
		work.Image = image
	} else if prev, err := a.Store.GetWork(c.Param("id")); err == nil {
		work.Image = prev.Image
	}
	if err := a.Store.UpdateWork(c.Param("id"), work); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/works")
}

func (a *App) handleWorkDelete(c echo.Context) error {
	if err := a.Store.DeleteWork(c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/works")
}

// --- Services ---

func (a *App) handleServiceList(c echo.Context) error {
	services, err := a.Store.ListServices()
	if err != nil {
		return err
	}
	return Render(c, views.AdminServices(a.Config.site(), services, CsrfToken(c)))
}

func (a *App) handleServiceCreate(c echo.Context) error {
	price, _ := strconv.ParseFloat(strings.TrimSpace(c.FormValue("price")), 64)
	service := views.Service{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: c.FormValue("description"),
		Price:       price,
		Features:    splitCommaList(c.FormValue("features")),
		Icon:        strings.TrimSpace(c.FormValue("icon")),
	}
	if _, err := a.Store.CreateService(service); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/services")
}

func (a *App) handleServiceDelete(c echo.Context) error {
	if err := a.Store.DeleteService(c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/services")
}

// --- Testimonials ---

func (a *App) handleTestimonialList(c echo.Context) error {
	testimonials, err := a.Store.ListTestimonials()
	if err != nil {
		return err
	}
	return Render(c, views.AdminTestimonials(a.Config.site(), testimonials, CsrfToken(c)))
}

func (a *App) handleTestimonialCreate(c echo.Context) error {
	rating, _ := strconv.Atoi(strings.TrimSpace(c.FormValue("rating")))
	if rating < 1 || rating > 5 {
		rating = 5
	}
	t := views.Testimonial{
		Name:     strings.TrimSpace(c.FormValue("name")),
		Position: strings.TrimSpace(c.FormValue("position")),
		Company:  strings.TrimSpace(c.FormValue("company")),
		Message:  c.FormValue("message"),
		Rating:   rating,
	}
	image, err := a.saveUpload(c, "image")
	if err != nil {
		return err
	}
	t.Image = image
	if _, err := a.Store.CreateTestimonial(t); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/testimonials")
}

func (a *App) handleTestimonialDelete(c echo.Context) error {
	if err := a.Store.DeleteTestimonial(c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/testimonials")
}

// --- Blogs ---

func (a *App) handleBlogList(c echo.Context) error {
	blogs, err := a.Store.ListBlogs(0)
	if err != nil {
		return err
	}
	return Render(c, views.AdminBlogs(a.Config.site(), blogs, CsrfToken(c)))
}

func (a *App) handleBlogCreate(c echo.Context) error {
	post := views.BlogPost{
		Title:    strings.TrimSpace(c.FormValue("title")),
		Excerpt:  c.FormValue("excerpt"),
		Content:  c.FormValue("content"),
		Author:   strings.TrimSpace(c.FormValue("author")),
		Category: strings.TrimSpace(c.FormValue("category")),
	}
	if post.Author == "" {
		post.Author = a.Config.Author
	}
	if date := strings.TrimSpace(c.FormValue("date")); date != "" {
		if t, err := time.Parse("2006-01-02", date); err == nil {
			post.Date = t
		}
	}
	image, err := a.saveUpload(c, "image")
	if err != nil {
		return err
	}
	post.Image = image
	if _, err := a.Store.CreateBlog(post); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/blogs")
}

func (a *App) handleBlogDelete(c echo.Context) error {
	if err := a.Store.DeleteBlog(c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/blogs")
}

// --- Header ---

func (a *App) handleHeaderForm(c echo.Context) error {
	header, err := a.Store.GetHeader()
	if err != nil {
		return err
	}
	return Render(c, views.AdminHeader(a.Config.site(), header, CsrfToken(c)))
}

func (a *App) handleHeaderSave(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return err
	}
	header := views.Header{
		LogoText: strings.TrimSpace(c.FormValue("logoText")),
	}
	for _, row := range formRows(form, []string{"navNames", "navLinks"}, []string{"navNames", "navLinks"}) {
		header.NavigationItems = append(header.NavigationItems, views.NavItem{
			Name: row["navNames"],
			Link: row["navLinks"],
		})
	}
	logo, err := a.saveUpload(c, "logo")
	if err != nil {
		return err
	}
	if logo != "" {
		header.Logo = logo
	} else if prev, err := a.Store.GetHeader(); err != nil {
		return err
	} else if prev != nil {
		header.Logo = prev.Logo
	}
	if err := a.Store.SaveHeader(header); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/header")
}

// --- Footer ---

func (a *App) handleFooterForm(c echo.Context) error {
	footer, err := a.Store.GetFooter()
	if err != nil {
		return err
	}
	return Render(c, views.AdminFooter(a.Config.site(), footer, CsrfToken(c)))
}

func (a *App) handleFooterSave(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return err
	}
	footer := views.Footer{
		AboutText:            c.FormValue("aboutText"),
		ContactEmail:         strings.TrimSpace(c.FormValue("contactEmail")),
		ContactPhone:         strings.TrimSpace(c.FormValue("contactPhone")),
		ContactAddress:       strings.TrimSpace(c.FormValue("contactAddress")),
		MapEmbedURL:          strings.TrimSpace(c.FormValue("mapEmbedUrl")),
		PrivacyPolicyContent: c.FormValue("privacyPolicyContent"),
	}
	socialFields := []string{"socialPlatforms", "socialUrls", "socialIcons"}
	for _, row := range formRows(form, socialFields, socialFields) {
		footer.SocialLinks = append(footer.SocialLinks, views.SocialLink{
			Platform: row["socialPlatforms"],
			URL:      row["socialUrls"],
			Icon:     row["socialIcons"],
		})
	}
	quickFields := []string{"quickLinkNames", "quickLinkUrls"}
	for _, row := range formRows(form, quickFields, quickFields) {
		footer.QuickLinks = append(footer.QuickLinks, views.QuickLink{
			Name: row["quickLinkNames"],
			URL:  row["quickLinkUrls"],
		})
	}
	if err := a.Store.SaveFooter(footer); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/footer")
}
