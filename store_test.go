package folio

import (
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eringen/folio/views"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHeroSingleton(t *testing.T) {
	s := newTestStore(t)

	h, err := s.GetHero()
	if err != nil {
		t.Fatalf("GetHero: %v", err)
	}
	if h != nil {
		t.Fatalf("expected nil hero before first save, got %+v", h)
	}

	first := views.Hero{Title: "Hello", Subtitles: []string{"Developer", "Designer"}, Description: "first"}
	if err := s.SaveHero(first); err != nil {
		t.Fatalf("SaveHero: %v", err)
	}
	second := views.Hero{Title: "Hi again", Subtitles: []string{"Engineer"}, Description: "second", Image: "1-hero.jpg"}
	if err := s.SaveHero(second); err != nil {
		t.Fatalf("SaveHero (second): %v", err)
	}

	h, err = s.GetHero()
	if err != nil {
		t.Fatalf("GetHero after save: %v", err)
	}
	if h == nil {
		t.Fatal("expected hero after save")
	}
	if h.Title != "Hi again" || h.Description != "second" || h.Image != "1-hero.jpg" {
		t.Errorf("second save did not replace the row: %+v", h)
	}
	if len(h.Subtitles) != 1 || h.Subtitles[0] != "Engineer" {
		t.Errorf("subtitles not replaced: %v", h.Subtitles)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM hero`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("singleton table has %d rows, want 1", count)
	}
}

func TestFooterRoundTrip(t *testing.T) {
	s := newTestStore(t)

	f := views.Footer{
		AboutText:    "about",
		ContactEmail: "me@example.com",
		SocialLinks: []views.SocialLink{
			{Platform: "GitHub", URL: "https://github.com/x", Icon: "fa-github"},
		},
		QuickLinks:           []views.QuickLink{{Name: "Home", URL: "/"}},
		PrivacyPolicyContent: "# Policy",
	}
	if err := s.SaveFooter(f); err != nil {
		t.Fatalf("SaveFooter: %v", err)
	}
	got, err := s.GetFooter()
	if err != nil {
		t.Fatalf("GetFooter: %v", err)
	}
	if got == nil {
		t.Fatal("expected footer")
	}
	if len(got.SocialLinks) != 1 || got.SocialLinks[0].Platform != "GitHub" {
		t.Errorf("social links lost: %+v", got.SocialLinks)
	}
	if len(got.QuickLinks) != 1 || got.QuickLinks[0].URL != "/" {
		t.Errorf("quick links lost: %+v", got.QuickLinks)
	}
}

func TestExpertiseCRUD(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateExpertise(views.Expertise{
		Title:             "Backend",
		DescriptionPoints: []string{"APIs", "Databases"},
	})
	if err != nil {
		t.Fatalf("CreateExpertise: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}

	if err := s.UpdateExpertise(id, views.Expertise{Title: "Backend Engineering", DescriptionPoints: []string{"APIs"}}); err != nil {
		t.Fatalf("UpdateExpertise: %v", err)
	}
	e, err := s.GetExpertise(id)
	if err != nil {
		t.Fatalf("GetExpertise: %v", err)
	}
	if e.Title != "Backend Engineering" || len(e.DescriptionPoints) != 1 {
		t.Errorf("update not applied: %+v", e)
	}

	if err := s.DeleteExpertise(id); err != nil {
		t.Fatalf("DeleteExpertise: %v", err)
	}
	if _, err := s.GetExpertise(id); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting again is a no-op, not an error.
	if err := s.DeleteExpertise(id); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestListBlogsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		_, err := s.CreateBlog(views.BlogPost{Title: title, Date: base.AddDate(0, 0, i)})
		if err != nil {
			t.Fatalf("CreateBlog %q: %v", title, err)
		}
	}

	posts, err := s.ListBlogs(0)
	if err != nil {
		t.Fatalf("ListBlogs: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts, want 3", len(posts))
	}
	if posts[0].Title != "newest" || posts[2].Title != "oldest" {
		t.Errorf("wrong order: %s, %s, %s", posts[0].Title, posts[1].Title, posts[2].Title)
	}

	limited, err := s.ListBlogs(2)
	if err != nil {
		t.Fatalf("ListBlogs(2): %v", err)
	}
	if len(limited) != 2 || limited[0].Title != "newest" {
		t.Errorf("limit not applied: %d posts, first %q", len(limited), limited[0].Title)
	}
}

func TestCreateBlogDefaultsDate(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateBlog(views.BlogPost{Title: "undated"})
	if err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}
	b, err := s.GetBlog(id)
	if err != nil {
		t.Fatalf("GetBlog: %v", err)
	}
	if b.Date.IsZero() {
		t.Error("expected date to default to now")
	}
}

func TestOrderAmountSnapshot(t *testing.T) {
	s := newTestStore(t)

	svcID, err := s.CreateService(views.Service{Title: "Web Design", Price: 500})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	orderID, err := s.CreateOrder(views.Order{ServiceID: svcID, CustomerName: "Ada", Amount: 500})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	orders, err := s.ListOrders()
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("got %d orders, want 1", len(orders))
	}
	if orders[0].Service == nil || orders[0].Service.Title != "Web Design" {
		t.Errorf("service not resolved: %+v", orders[0].Service)
	}
	if orders[0].Status != views.OrderPending || orders[0].PaymentStatus != views.PaymentPending {
		t.Errorf("defaults not applied: %s / %s", orders[0].Status, orders[0].PaymentStatus)
	}

	// Deleting the service must not disturb the recorded amount.
	if err := s.DeleteService(svcID); err != nil {
		t.Fatalf("DeleteService: %v", err)
	}
	o, err := s.GetOrder(orderID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if o.Amount != 500 {
		t.Errorf("amount changed after service delete: %v", o.Amount)
	}
	orders, err = s.ListOrders()
	if err != nil {
		t.Fatalf("ListOrders after delete: %v", err)
	}
	if orders[0].Service != nil {
		t.Errorf("expected nil service after delete, got %+v", orders[0].Service)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateOrder(views.Order{ServiceID: "svc", Amount: 10})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if err := s.UpdateOrderStatus(id, views.OrderCompleted); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	o, err := s.GetOrder(id)
	if err != nil {
		t.Fatal(err)
	}
	if o.Status != views.OrderCompleted {
		t.Errorf("status = %q, want completed", o.Status)
	}

	// Unknown statuses are ignored.
	if err := s.UpdateOrderStatus(id, "shipped-to-mars"); err != nil {
		t.Fatalf("UpdateOrderStatus (invalid): %v", err)
	}
	o, _ = s.GetOrder(id)
	if o.Status != views.OrderCompleted {
		t.Errorf("invalid status overwrote the order: %q", o.Status)
	}
}

func TestSeedAdminIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.SeedAdmin("admin", "secret123"); err != nil {
		t.Fatalf("SeedAdmin: %v", err)
	}
	if err := s.SeedAdmin("admin", "different-password"); err != nil {
		t.Fatalf("SeedAdmin (second): %v", err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("seeded %d admin rows, want 1", count)
	}

	a, err := s.GetAdmin("admin")
	if err != nil {
		t.Fatalf("GetAdmin: %v", err)
	}
	// The original password still matches; the re-seed did not overwrite it.
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("secret123")); err != nil {
		t.Errorf("original password no longer matches: %v", err)
	}
}

func TestUpdateAdminCredentials(t *testing.T) {
	s := newTestStore(t)

	if err := s.SeedAdmin("admin", "secret123"); err != nil {
		t.Fatal(err)
	}
	a, err := s.FirstAdmin()
	if err != nil {
		t.Fatal(err)
	}

	// Empty password keeps the existing hash.
	if err := s.UpdateAdminCredentials(a.ID, "boss", ""); err != nil {
		t.Fatalf("UpdateAdminCredentials: %v", err)
	}
	renamed, err := s.GetAdmin("boss")
	if err != nil {
		t.Fatalf("GetAdmin after rename: %v", err)
	}
	if renamed.PasswordHash != a.PasswordHash {
		t.Error("empty password replaced the hash")
	}

	if err := s.UpdateAdminCredentials(a.ID, "boss", "newpass"); err != nil {
		t.Fatalf("UpdateAdminCredentials (password): %v", err)
	}
	updated, _ := s.GetAdmin("boss")
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Errorf("new password does not match: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil settings before first save, got %+v", got)
	}

	if err := s.SaveSettings(views.Settings{Email: "pay@example.com", PayPalClientID: "cid", PayPalSandbox: true}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	if err := s.SaveSettings(views.Settings{Email: "pay@example.com", PayPalClientID: "cid", PayPalSandbox: false}); err != nil {
		t.Fatalf("SaveSettings (second): %v", err)
	}
	got, err = s.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.PayPalSandbox || got.PayPalClientID != "cid" {
		t.Errorf("settings not upserted: %+v", got)
	}
}

func TestStats(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateSkill(views.Skill{Name: "Go", Percentage: 90}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateSkill(views.Skill{Name: "SQL", Percentage: 80}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.CreateBlog(views.BlogPost{Title: "post"}); err != nil {
		t.Fatal(err)
	}

	st, err := s.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Skills != 2 || st.Blogs != 1 || st.Orders != 0 {
		t.Errorf("wrong counts: %+v", st)
	}
}
