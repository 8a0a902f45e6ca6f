package backend

import "time"

// Admin is the signed-in console user as the backend reports it.
type Admin struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| Orders                                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

// Order statuses used by the console. "pending" and "payment_pending" are
// both counted as pending in the dashboard stats.
const (
	OrderPending        = "pending"
	OrderPaymentPending = "payment_pending"
	OrderDelivered      = "delivered"
)

type Order struct {
	ID                  string       `json:"_id"`
	OrderID             string       `json:"orderId"`
	Status              string       `json:"status"`
	PaymentMethod       string       `json:"paymentMethod"` // online | cod
	SpecialInstructions string       `json:"specialInstructions,omitempty"`
	OrderDate           time.Time    `json:"orderDate"`
	Pricing             Pricing      `json:"pricing"`
	Items               []OrderItem  `json:"items"`
	Customer            CustomerInfo `json:"customerInfo"`
}

type Pricing struct {
	Subtotal        float64 `json:"subtotal"`
	DeliveryCharges float64 `json:"deliveryCharges"`
	Total           float64 `json:"total"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
}

type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| Products                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

type Product struct {
	ID                string   `json:"_id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Price             float64  `json:"price"`
	OriginalPrice     float64  `json:"originalPrice,omitempty"`
	Stock             int      `json:"stock"`
	Description       string   `json:"description"`
	Use               string   `json:"use,omitempty"`
	Benefits          string   `json:"benefits,omitempty"`
	ApplicationMethod string   `json:"applicationMethod,omitempty"`
	Image             string   `json:"image"`
	Sections          []string `json:"sections,omitempty"`
	Featured          bool     `json:"featured"`
	Rating            float64  `json:"rating,omitempty"`
}

type ProductCategory struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| Appointments                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

type Appointment struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Purpose       string    `json:"purpose,omitempty"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| Messages & testimonials                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

type Message struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Subject       string    `json:"subject,omitempty"`
	Message       string    `json:"message"`
	Category      string    `json:"category,omitempty"`
	Status        string    `json:"status"` // read | unread
	Starred       bool      `json:"starred"`
	IsTestimonial bool      `json:"isTestimonial"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MessageStats is the server-computed summary shipped with message lists.
type MessageStats struct {
	Total        int `json:"total"`
	Unread       int `json:"unread"`
	Starred      int `json:"starred"`
	Testimonials int `json:"testimonials"`
}

type Testimonial struct {
	ID        string `json:"_id"`
	MessageID string `json:"messageId"`
	Name      string `json:"name"`
	Text      string `json:"text"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| Gallery                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

type GalleryCategory struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type GalleryItem struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| Content: hero banners & timeline                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// BannerPages are the site pages a hero banner can target.
var BannerPages = []string{"About us", "Shop", "Consultancy", "Contact us", "Gallery"}

type Banner struct {
	ID       string `json:"_id"`
	Page     string `json:"page"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image"`
	Active   bool   `json:"active"`
}

type TimelineItem struct {
	ID          string `json:"_id"`
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Achievement string `json:"achievement,omitempty"`
	Metric      string `json:"metric,omitempty"`
	Highlight   bool   `json:"highlight"`
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image,omitempty"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| Updates: marquee, news, videos, newsletters                                 |
*─────────────────────────────────────────────────────────────────────────────*/

type Marquee struct {
	ID     string `json:"_id"`
	Text   string `json:"text"`
	Active bool   `json:"active"`
}

type NewsItem struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content,omitempty"`
	Image     string    `json:"image,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

type Video struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

type Newsletter struct {
	ID        string    `json:"_id"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"` // active | inactive
	CreatedAt time.Time `json:"createdAt"`
}

type NewsletterSettings struct {
	WelcomeMessage string `json:"welcomeMessage"`
	GroupLink      string `json:"groupLink,omitempty"`
}
