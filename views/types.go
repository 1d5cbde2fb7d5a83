package views

import "time"

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "Portfolio")
	URL         string // SITE_URL   (default "http://localhost:5000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// Hero is the singleton landing section: one live record, created on first save.
type Hero struct {
	Title       string
	Subtitles   []string
	Description string
	Image       string // filename under /uploads, empty when none set
	ResumeLink  string
}

// Expertise is one card in the expertise section.
type Expertise struct {
	ID                string
	Title             string
	Description       string
	DescriptionPoints []string
	Icon              string
	Link              string
}

// Skill is a single skill bar with a 0-100 proficiency percentage.
type Skill struct {
	ID         string
	Name       string
	Percentage int
	Category   string
	Icon       string
}

// Education is one entry in the education timeline.
type Education struct {
	ID          string
	Degree      string
	Institution string
	Year        string
	Description string
	Link        string
}

// Work is a portfolio piece with an optional image.
type Work struct {
	ID          string
	Title       string
	Category    string
	Image       string
	Description string
	Link        string
}

// Service is a purchasable offering; orders snapshot its price at creation.
type Service struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Features    []string
	Icon        string
}

// Testimonial is a client quote with a 1-5 star rating.
type Testimonial struct {
	ID       string
	Name     string
	Position string
	Company  string
	Message  string
	Image    string
	Rating   int
}

// BlogPost is a blog entry. Content is Markdown, rendered on the post page.
type BlogPost struct {
	ID       string
	Title    string
	Excerpt  string
	Content  string
	Image    string
	Author   string
	Date     time.Time
	Category string
}

// NavItem is one entry in the header navigation.
type NavItem struct {
	Name string
	Link string
}

// Header is the singleton site header configuration.
type Header struct {
	Logo            string
	LogoText        string
	NavigationItems []NavItem
}

// SocialLink is one social profile shown in the footer.
type SocialLink struct {
	Platform string
	URL      string
	Icon     string
}

// QuickLink is one footer shortcut link.
type QuickLink struct {
	Name string
	URL  string
}

// Footer is the singleton site footer configuration.
type Footer struct {
	AboutText            string
	ContactEmail         string
	ContactPhone         string
	ContactAddress       string
	MapEmbedURL          string
	SocialLinks          []SocialLink
	QuickLinks           []QuickLink
	PrivacyPolicyContent string
}

// Order lifecycle states, mutated only from the admin panel.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// Payment states. No payment is processed in-app; the provider callback
// (out of scope here) would move an order to paid or failed.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// OrderStatuses lists the valid order states in display order.
var OrderStatuses = []string{OrderPending, OrderProcessing, OrderCompleted, OrderCancelled}

// Order is a purchase intent for a Service. Amount is copied from the
// service's price at creation and never recomputed.
type Order struct {
	ID            string
	ServiceID     string
	Service       *Service // resolved for admin display; nil if the service was deleted
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Message       string
	Status        string
	PaymentStatus string
	PayPalOrderID string
	Amount        float64
	CreatedAt     time.Time
}

// Settings is the singleton admin configuration. The PayPal fields are
// sensitive and must never reach a public-facing response.
type Settings struct {
	Username           string
	Email              string
	PayPalClientID     string
	PayPalClientSecret string
	PayPalSandbox      bool
}

// DashboardStats carries the per-collection counts shown on the admin dashboard.
type DashboardStats struct {
	Expertise    int
	Skills       int
	Education    int
	Works        int
	Services     int
	Testimonials int
	Blogs        int
	Orders       int
}

// HomeData aggregates everything the home page renders in one pass.
type HomeData struct {
	Hero         *Hero
	Expertise    []Expertise
	Skills       []Skill
	Education    []Education
	Works        []Work
	Services     []Service
	Testimonials []Testimonial
	Blogs        []BlogPost
	Header       *Header
	Footer       *Footer
}
