package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/eringen/folio/markdown"
)

// Home renders the single-page public site: every content section in order,
// skipping sections with no records.
func Home(cfg SiteConfig, data HomeData) templ.Component {
	return component(func(b *bytes.Buffer) {
		pageOpen(b, cfg, data.Header, cfg.Name)
		b.WriteString(`<main>`)
		writeHeroSection(b, data.Hero)
		writeExpertiseSection(b, data.Expertise)
		writeSkillsSection(b, data.Skills)
		writeEducationSection(b, data.Education)
		writeWorksSection(b, data.Works)
		writeServicesSection(b, data.Services)
		writeTestimonialsSection(b, data.Testimonials)
		writeBlogSection(b, data.Blogs)
		b.WriteString(`</main>`)
		writeOrderScript(b)
		pageClose(b, data.Footer)
	})
}

func writeHeroSection(b *bytes.Buffer, hero *Hero) {
	if hero == nil {
		return
	}
	b.WriteString(`<section id="hero" class="hero">`)
	if hero.Image != "" {
		fmt.Fprintf(b, `<img class="hero-image" src="%s" alt="%s"/>`, uploadSrc(hero.Image), esc(hero.Title))
	}
	fmt.Fprintf(b, "<h1>%s</h1>", esc(hero.Title))
	if len(hero.Subtitles) > 0 {
		b.WriteString(`<ul class="hero-subtitles">`)
		for _, s := range hero.Subtitles {
			fmt.Fprintf(b, "<li>%s</li>", esc(s))
		}
		b.WriteString("</ul>")
	}
	if hero.Description != "" {
		fmt.Fprintf(b, "<p>%s</p>", esc(hero.Description))
	}
	if hero.ResumeLink != "" {
		fmt.Fprintf(b, `<a class="button" href="%s">Download Resume</a>`, esc(hero.ResumeLink))
	}
	b.WriteString("</section>")
}

func writeExpertiseSection(b *bytes.Buffer, expertise []Expertise) {
	if len(expertise) == 0 {
		return
	}
	b.WriteString(`<section id="expertise"><h2>Expertise</h2><div class="cards">`)
	for _, e := range expertise {
		b.WriteString(`<article class="card">`)
		if e.Icon != "" {
			fmt.Fprintf(b, `<i class="%s"></i>`, esc(e.Icon))
		}
		fmt.Fprintf(b, "<h3>%s</h3><p>%s</p>", esc(e.Title), esc(e.Description))
		if len(e.DescriptionPoints) > 0 {
			b.WriteString("<ul>")
			for _, p := range e.DescriptionPoints {
				fmt.Fprintf(b, "<li>%s</li>", esc(p))
			}
			b.WriteString("</ul>")
		}
		if e.Link != "" {
			fmt.Fprintf(b, `<a href="%s">Learn more</a>`, esc(e.Link))
		}
		b.WriteString("</article>")
	}
	b.WriteString("</div></section>")
}

func writeSkillsSection(b *bytes.Buffer, skills []Skill) {
	if len(skills) == 0 {
		return
	}
	b.WriteString(`<section id="skills"><h2>Skills</h2><div class="skills">`)
	for _, s := range skills {
		fmt.Fprintf(b, `<div class="skill"><span class="skill-name">%s</span>`, esc(s.Name))
		if s.Category != "" {
			fmt.Fprintf(b, `<span class="skill-category">%s</span>`, esc(s.Category))
		}
		fmt.Fprintf(b, `<div class="skill-bar"><div class="skill-fill" style="width:%d%%"></div></div><span class="skill-pct">%d%%</span></div>`,
			s.Percentage, s.Percentage)
	}
	b.WriteString("</div></section>")
}

func writeEducationSection(b *bytes.Buffer, education []Education) {
	if len(education) == 0 {
		return
	}
	b.WriteString(`<section id="education"><h2>Education</h2><ol class="timeline">`)
	for _, e := range education {
		fmt.Fprintf(b, `<li><span class="year">%s</span><h3>%s</h3><p class="institution">%s</p>`,
			esc(e.Year), esc(e.Degree), esc(e.Institution))
		if e.Description != "" {
			fmt.Fprintf(b, "<p>%s</p>", esc(e.Description))
		}
		if e.Link != "" {
			fmt.Fprintf(b, `<a href="%s">Details</a>`, esc(e.Link))
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ol></section>")
}

func writeWorksSection(b *bytes.Buffer, works []Work) {
	if len(works) == 0 {
		return
	}
	b.WriteString(`<section id="works"><h2>Work</h2><div class="cards">`)
	for _, w := range works {
		b.WriteString(`<article class="card work">`)
		if w.Image != "" {
			fmt.Fprintf(b, `<img src="%s" alt="%s" loading="lazy"/>`, uploadSrc(w.Image), esc(w.Title))
		}
		fmt.Fprintf(b, `<h3>%s</h3><span class="category">%s</span><p>%s</p>`,
			esc(w.Title), esc(w.Category), esc(w.Description))
		if w.Link != "" {
			fmt.Fprintf(b, `<a href="%s" rel="noopener noreferrer">View project</a>`, esc(w.Link))
		}
		b.WriteString("</article>")
	}
	b.WriteString("</div></section>")
}

func writeServicesSection(b *bytes.Buffer, services []Service) {
	if len(services) == 0 {
		return
	}
	b.WriteString(`<section id="services"><h2>Services</h2><div class="cards">`)
	for _, s := range services {
		fmt.Fprintf(b, `<article class="card service" data-service-id="%s">`, esc(s.ID))
		if s.Icon != "" {
			fmt.Fprintf(b, `<i class="%s"></i>`, esc(s.Icon))
		}
		fmt.Fprintf(b, `<h3>%s</h3><p class="price">%s</p><p>%s</p>`,
			esc(s.Title), Money(s.Price), esc(s.Description))
		if len(s.Features) > 0 {
			b.WriteString("<ul>")
			for _, f := range s.Features {
				fmt.Fprintf(b, "<li>%s</li>", esc(f))
			}
			b.WriteString("</ul>")
		}
		writeOrderForm(b, s)
		b.WriteString("</article>")
	}
	b.WriteString("</div></section>")
}

// writeOrderForm emits the intake form posted as JSON to /order-service.
func writeOrderForm(b *bytes.Buffer, s Service) {
	fmt.Fprintf(b, `<form class="order-form" data-service-id="%s">`, esc(s.ID))
	b.WriteString(`<input type="text" name="customerName" placeholder="Your name" required/>`)
	b.WriteString(`<input type="email" name="customerEmail" placeholder="Email" required/>`)
	b.WriteString(`<input type="tel" name="customerPhone" placeholder="Phone"/>`)
	b.WriteString(`<textarea name="message" placeholder="Tell me about your project"></textarea>`)
	b.WriteString(`<button type="submit">Order</button><p class="order-result" hidden></p></form>`)
}

func writeOrderScript(b *bytes.Buffer) {
	b.WriteString(`<script>
document.querySelectorAll('.order-form').forEach(function (form) {
  form.addEventListener('submit', function (ev) {
    ev.preventDefault();
    var data = Object.fromEntries(new FormData(form));
    data.serviceId = form.dataset.serviceId;
    var result = form.querySelector('.order-result');
    fetch('/order-service', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify(data)
    }).then(function (r) { return r.json(); }).then(function (body) {
      result.hidden = false;
      result.textContent = body.success ? 'Order received! Reference: ' + body.orderId : (body.error || 'Something went wrong.');
    }).catch(function () {
      result.hidden = false;
      result.textContent = 'Something went wrong.';
    });
  });
});
</script>`)
}

func writeTestimonialsSection(b *bytes.Buffer, testimonials []Testimonial) {
	if len(testimonials) == 0 {
		return
	}
	b.WriteString(`<section id="testimonials"><h2>Testimonials</h2><div class="cards">`)
	for _, t := range testimonials {
		b.WriteString(`<blockquote class="testimonial">`)
		if t.Image != "" {
			fmt.Fprintf(b, `<img src="%s" alt="%s" loading="lazy"/>`, uploadSrc(t.Image), esc(t.Name))
		}
		fmt.Fprintf(b, `<p>%s</p><footer><cite>%s</cite>, %s at %s <span class="stars">%s</span></footer>`,
			esc(t.Message), esc(t.Name), esc(t.Position), esc(t.Company), Stars(t.Rating))
		b.WriteString("</blockquote>")
	}
	b.WriteString("</div></section>")
}

func writeBlogSection(b *bytes.Buffer, posts []BlogPost) {
	if len(posts) == 0 {
		return
	}
	b.WriteString(`<section id="blog"><h2>Latest Posts</h2><div class="cards">`)
	for _, p := range posts {
		b.WriteString(`<article class="card post">`)
		if p.Image != "" {
			fmt.Fprintf(b, `<img src="%s" alt="%s" loading="lazy"/>`, uploadSrc(p.Image), esc(p.Title))
		}
		fmt.Fprintf(b, `<h3><a href="/blog/%s">%s</a></h3>`, esc(p.ID), esc(p.Title))
		fmt.Fprintf(b, `<p class="meta">%s · %s</p>`, esc(p.Date.Format("Jan 2, 2006")), esc(p.Category))
		fmt.Fprintf(b, "<p>%s</p>", esc(p.Excerpt))
		b.WriteString("</article>")
	}
	b.WriteString("</div></section>")
}

// Blog renders a full blog post with Markdown content.
func Blog(cfg SiteConfig, post BlogPost, header *Header, footer *Footer) templ.Component {
	return component(func(b *bytes.Buffer) {
		pageOpen(b, cfg, header, post.Title+" - "+cfg.Name)
		b.WriteString(`<main class="post-page"><article>`)
		if post.Image != "" {
			fmt.Fprintf(b, `<img class="post-image" src="%s" alt="%s"/>`, uploadSrc(post.Image), esc(post.Title))
		}
		fmt.Fprintf(b, "<h1>%s</h1>", esc(post.Title))
		fmt.Fprintf(b, `<p class="meta">%s · %s · %s</p>`,
			esc(post.Author), esc(post.Date.Format("January 2, 2006")), esc(post.Category))
		b.WriteString(`<div class="post-content">`)
		markdown.Render(b, post.Content)
		b.WriteString("</div></article></main>")
		pageClose(b, footer)
	})
}

// PrivacyPolicy renders the footer-managed privacy policy content.
func PrivacyPolicy(cfg SiteConfig, header *Header, footer *Footer) templ.Component {
	return component(func(b *bytes.Buffer) {
		pageOpen(b, cfg, header, "Privacy Policy - "+cfg.Name)
		b.WriteString(`<main class="policy-page"><h1>Privacy Policy</h1><div class="policy-content">`)
		if footer != nil && footer.PrivacyPolicyContent != "" {
			markdown.Render(b, footer.PrivacyPolicyContent)
		} else {
			b.WriteString("<p>No privacy policy has been published yet.</p>")
		}
		b.WriteString("</div></main>")
		pageClose(b, footer)
	})
}
