package folio

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/eringen/folio/views"
)

// Singleton accessors. Each entity lives in a fixed id=1 row; Get returns
// (nil, nil) when the row has never been written, and Save replaces the whole
// row. Handlers assemble the complete payload first; preserve-on-absence
// merging for image fields happens in the handler, not here.

// GetHero returns the hero section, or nil if it has never been saved.
func (s *Store) GetHero() (*views.Hero, error) {
	var h views.Hero
	var subtitles string
	err := s.db.QueryRow(`SELECT title, subtitles, description, image, resume_link FROM hero WHERE id = 1`).
		Scan(&h.Title, &subtitles, &h.Description, &h.Image, &h.ResumeLink)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := decodeList(subtitles, &h.Subtitles); err != nil {
		return nil, err
	}
	return &h, nil
}

// SaveHero upserts the hero singleton with a full replacement payload.
func (s *Store) SaveHero(h views.Hero) error {
	_, err := s.db.Exec(`INSERT INTO hero (id, title, subtitles, description, image, resume_link)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			subtitles = excluded.subtitles,
			description = excluded.description,
			image = excluded.image,
			resume_link = excluded.resume_link`,
		h.Title, encodeList(h.Subtitles), h.Description, h.Image, h.ResumeLink)
	return err
}

// GetHeader returns the header configuration, or nil if never saved.
func (s *Store) GetHeader() (*views.Header, error) {
	var h views.Header
	var navItems string
	err := s.db.QueryRow(`SELECT logo, logo_text, nav_items FROM header WHERE id = 1`).
		Scan(&h.Logo, &h.LogoText, &navItems)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := decodeList(navItems, &h.NavigationItems); err != nil {
		return nil, err
	}
	return &h, nil
}

// SaveHeader upserts the header singleton.
func (s *Store) SaveHeader(h views.Header) error {
	_, err := s.db.Exec(`INSERT INTO header (id, logo, logo_text, nav_items)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			logo = excluded.logo,
			logo_text = excluded.logo_text,
			nav_items = excluded.nav_items`,
		h.Logo, h.LogoText, encodeList(h.NavigationItems))
	return err
}

// GetFooter returns the footer configuration, or nil if never saved.
func (s *Store) GetFooter() (*views.Footer, error) {
	var f views.Footer
	var socials, quicks string
	err := s.db.QueryRow(`SELECT about_text, contact_email, contact_phone, contact_address, map_embed_url, social_links, quick_links, privacy_policy FROM footer WHERE id = 1`).
		Scan(&f.AboutText, &f.ContactEmail, &f.ContactPhone, &f.ContactAddress, &f.MapEmbedURL, &socials, &quicks, &f.PrivacyPolicyContent)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := decodeList(socials, &f.SocialLinks); err != nil {
		return nil, err
	}
	if err := decodeList(quicks, &f.QuickLinks); err != nil {
		return nil, err
	}
	return &f, nil
}

// SaveFooter upserts the footer singleton.
func (s *Store) SaveFooter(f views.Footer) error {
	_, err := s.db.Exec(`INSERT INTO footer (id, about_text, contact_email, contact_phone, contact_address, map_embed_url, social_links, quick_links, privacy_policy)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			about_text = excluded.about_text,
			contact_email = excluded.contact_email,
			contact_phone = excluded.contact_phone,
			contact_address = excluded.contact_address,
			map_embed_url = excluded.map_embed_url,
			social_links = excluded.social_links,
			quick_links = excluded.quick_links,
			privacy_policy = excluded.privacy_policy`,
		f.AboutText, f.ContactEmail, f.ContactPhone, f.ContactAddress, f.MapEmbedURL,
		encodeList(f.SocialLinks), encodeList(f.QuickLinks), f.PrivacyPolicyContent)
	return err
}

// Collection CRUD. Create assigns a uuid and returns it; Update and Delete
// by id are silent no-ops when the id does not exist.

// CreateExpertise inserts a new expertise card and returns its id.
func (s *Store) CreateExpertise(e views.Expertise) (string, error) {
	e.ID = uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO expertise (id, title, description, points, icon, link) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Description, encodeList(e.DescriptionPoints), e.Icon, e.Link)
	return e.ID, err
}

// UpdateExpertise replaces the fields of the expertise card matching id.
func (s *Store) UpdateExpertise(id string, e views.Expertise) error {
	_, err := s.db.Exec(`UPDATE expertise SET title = ?, description = ?, points = ?, icon = ?, link = ? WHERE id = ?`,
		e.Title, e.Description, encodeList(e.DescriptionPoints), e.Icon, e.Link, id)
	return err
}

// DeleteExpertise removes an expertise card. Deleting a missing id is not an error.
func (s *Store) DeleteExpertise(id string) error {
	_, err := s.db.Exec(`DELETE FROM expertise WHERE id = ?`, id)
	return err
}

// GetExpertise returns a single expertise card by id.
func (s *Store) GetExpertise(id string) (views.Expertise, error) {
	var e views.Expertise
	var points string
	err := s.db.QueryRow(`SELECT id, title, description, points, icon, link FROM expertise WHERE id = ?`, id).
		Scan(&e.ID, &e.Title, &e.Description, &points, &e.Icon, &e.Link)
	if err != nil {
		return views.Expertise{}, err
	}
	if err := decodeList(points, &e.DescriptionPoints); err != nil {
		return views.Expertise{}, err
	}
	return e, nil
}

// ListExpertise returns every expertise card in insertion order.
func (s *Store) ListExpertise() ([]views.Expertise, error) {
	rows, err := s.db.Query(`SELECT id, title, description, points, icon, link FROM expertise ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []views.Expertise
	for rows.Next() {
		var e views.Expertise
		var points string
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &points, &e.Icon, &e.Link); err != nil {
			return nil, err
		}
		if err := decodeList(points, &e.DescriptionPoints); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CreateSkill inserts a new skill and returns its id.
func (s *Store) CreateSkill(sk views.Skill) (string, error) {
	sk.ID = uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO skills (id, name, percentage, category, icon) VALUES (?, ?, ?, ?, ?)`,
		sk.ID, sk.Name, sk.Percentage, sk.Category, sk.Icon)
	return sk.ID, err
}

// DeleteSkill removes a skill by id.
func (s *Store) DeleteSkill(id string) error {
	_, err := s.db.Exec(`DELETE FROM skills WHERE id = ?`, id)
	return err
}

// ListSkills returns every skill in insertion order.
func (s *Store) ListSkills() ([]views.Skill, error) {
	rows, err := s.db.Query(`SELECT id, name, percentage, category, icon FROM skills ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []views.Skill
	for rows.Next() {
		var sk views.Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Percentage, &sk.Category, &sk.Icon); err != nil {
			return nil, err
		}
		out = append(out, sk)
	}
	return out, rows.Err()
}

// CreateEducation inserts a new education entry and returns its id.
func (s *Store) CreateEducation(e views.Education) (string, error) {
	e.ID = uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO education (id, degree, institution, year, description, link) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Degree, e.Institution, e.Year, e.Description, e.Link)
	return e.ID, err
}

// UpdateEducation replaces the fields of the education entry matching id.
func (s *Store) UpdateEducation(id string, e views.Education) error {
	_, err := s.db.Exec(`UPDATE education SET degree = ?, institution = ?, year = ?, description = ?, link = ? WHERE id = ?`,
		e.Degree, e.Institution, e.Year, e.Description, e.Link, id)
	return err
}

// DeleteEducation removes an education entry by id.
func (s *Store) DeleteEducation(id string) error {
	_, err := s.db.Exec(`DELETE FROM education WHERE id = ?`, id)
	return err
}

// GetEducation returns a single education entry by id.
func (s *Store) GetEducation(id string) (views.Education, error) {
	var e views.Education
	err := s.db.QueryRow(`SELECT id, degree, institution, year, description, link FROM education WHERE id = ?`, id).
		Scan(&e.ID, &e.Degree, &e.Institution, &e.Year, &e.Description, &e.Link)
	return e, err
}

// ListEducation returns every education entry in insertion order.
func (s *Store) ListEducation() ([]views.Education, error) {
	rows, err := s.db.Query(`SELECT id, degree, institution, year, description, link FROM education ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []views.Education
	for rows.Next() {
		var e views.Education
		if err := rows.Scan(&e.ID, &e.Degree, &e.Institution, &e.Year, &e.Description, &e.Link); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CreateWork inserts a new portfolio piece and returns its id.
func (s *Store) CreateWork(w views.Work) (string, error) {
	w.ID = uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO works (id, title, category, image, description, link) VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID, w.Title, w.Category, w.Image, w.Description, w.Link)
	return w.ID, err
}

// UpdateWork replaces the fields of the work matching id.
func (s *Store) UpdateWork(id string, w views.Work) error {
	_, err := s.db.Exec(`UPDATE works SET title = ?, category = ?, image = ?, description = ?, link = ? WHERE id = ?`,
		w.Title, w.Category, w.Image, w.Description, w.Link, id)
	return err
}

// DeleteWork removes a work by id.
func (s *Store) DeleteWork(id string) error {
	_, err := s.db.Exec(`DELETE FROM works WHERE id = ?`, id)
	return err
}

// GetWork returns a single work by id.
func (s *Store) GetWork(id string) (views.Work, error) {
	var w views.Work
	err := s.db.QueryRow(`SELECT id, title, category, image, description, link FROM works WHERE id = ?`, id).
		Scan(&w.ID, &w.Title, &w.Category, &w.Image, &w.Description, &w.Link)
	return w, err
}

// ListWorks returns every work in insertion order.
func (s *Store) ListWorks() ([]views.Work, error) {
	rows, err := s.db.Query(`SELECT id, title, category, image, description, link FROM works ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []views.Work
	for rows.Next() {
		var w views.Work
		if err := rows.Scan(&w.ID, &w.Title, &w.Category, &w.Image, &w.Description, &w.Link); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// CreateService inserts a new service and returns its id.
func (s *Store) CreateService(sv views.Service) (string, error) {
	sv.ID = uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO services (id, title, description, price, features, icon) VALUES (?, ?, ?, ?, ?, ?)`,
		sv.ID, sv.Title, sv.Description, sv.Price, encodeList(sv.Features), sv.Icon)
	return sv.ID, err
}

// DeleteService removes a service by id. Existing orders keep their
// snapshotted amount and dangling service reference.
func (s *Store) DeleteService(id string) error {
	_, err := s.db.Exec(`DELETE FROM services WHERE id = ?`, id)
	return err
}

// GetService returns a single service by id.
func (s *Store) GetService(id string) (views.Service, error) {
	var sv views.Service
	var features string
	err := s.db.QueryRow(`SELECT id, title, description, price, features, icon FROM services WHERE id = ?`, id).
		Scan(&sv.ID, &sv.Title, &sv.Description, &sv.Price, &features, &sv.Icon)
	if err != nil {
		return views.Service{}, err
	}
	if err := decodeList(features, &sv.Features); err != nil {
		return views.Service{}, err
	}
	return sv, nil
}

// ListServices returns every service in insertion order.
func (s *Store) ListServices() ([]views.Service, error) {
	rows, err := s.db.Query(`SELECT id, title, description, price, features, icon FROM services ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []views.Service
	for rows.Next() {
		var sv views.Service
		var features string
		if err := rows.Scan(&sv.ID, &sv.Title, &sv.Description, &sv.Price, &features, &sv.Icon); err != nil {
			return nil, err
		}
		if err := decodeList(features, &sv.Features); err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

// CreateTestimonial inserts a new testimonial and returns its id.
func (s *Store) CreateTestimonial(t views.Testimonial) (string, error) {
	t.ID = uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO testimonials (id, name, position, company, message, image, rating) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Position, t.Company, t.Message, t.Image, t.Rating)
	return t.ID, err
}

// DeleteTestimonial removes a testimonial by id.
func (s *Store) DeleteTestimonial(id string) error {
	_, err := s.db.Exec(`DELETE FROM testimonials WHERE id = ?`, id)
	return err
}

// ListTestimonials returns every testimonial in insertion order.
func (s *Store) ListTestimonials() ([]views.Testimonial, error) {
	rows, err := s.db.Query(`SELECT id, name, position, company, message, image, rating FROM testimonials ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []views.Testimonial
	for rows.Next() {
		var t views.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Position, &t.Company, &t.Message, &t.Image, &t.Rating); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// CreateBlog inserts a new blog post and returns its id. A zero Date defaults
// to the current time.
func (s *Store) CreateBlog(b views.BlogPost) (string, error) {
	b.ID = uuid.NewString()
	if b.Date.IsZero() {
		b.Date = time.Now().UTC()
	}
	_, err := s.db.Exec(`INSERT INTO blogs (id, title, excerpt, content, image, author, date, category) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Excerpt, b.Content, b.Image, b.Author, b.Date.UTC().Format(time.RFC3339Nano), b.Category)
	return b.ID, err
}

// DeleteBlog removes a blog post by id.
func (s *Store) DeleteBlog(id string) error {
	_, err := s.db.Exec(`DELETE FROM blogs WHERE id = ?`, id)
	return err
}

// GetBlog returns a single blog post by id.
func (s *Store) GetBlog(id string) (views.BlogPost, error) {
	var b views.BlogPost
	var date string
	err := s.db.QueryRow(`SELECT id, title, excerpt, content, image, author, date, category FROM blogs WHERE id = ?`, id).
		Scan(&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.Image, &b.Author, &date, &b.Category)
	if err != nil {
		return views.BlogPost{}, err
	}
	b.Date, _ = time.Parse(time.RFC3339Nano, date)
	return b, nil
}

// ListBlogs returns blog posts newest-first. limit <= 0 means no limit.
func (s *Store) ListBlogs(limit int) ([]views.BlogPost, error) {
	q := `SELECT id, title, excerpt, content, image, author, date, category FROM blogs ORDER BY date DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.Query(q+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(q)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []views.BlogPost
	for rows.Next() {
		var b views.BlogPost
		var date string
		if err := rows.Scan(&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.Image, &b.Author, &date, &b.Category); err != nil {
			return nil, err
		}
		b.Date, _ = time.Parse(time.RFC3339Nano, date)
		out = append(out, b)
	}
	return out, rows.Err()
}

// Stats returns the per-collection counts for the admin dashboard.
func (s *Store) Stats() (views.DashboardStats, error) {
	var st views.DashboardStats
	counts := []struct {
		table string
		dst   *int
	}{
		{"expertise", &st.Expertise},
		{"skills", &st.Skills},
		{"education", &st.Education},
		{"works", &st.Works},
		{"services", &st.Services},
		{"testimonials", &st.Testimonials},
		{"blogs", &st.Blogs},
		{"orders", &st.Orders},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM ` + c.table).Scan(c.dst); err != nil {
			return views.DashboardStats{}, err
		}
	}
	return st, nil
}
