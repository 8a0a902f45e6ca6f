package sharelink

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/krishivishwa/agriadmin/internal/backend"
)

func TestWhatsApp_DigitsOnlyPath(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		text  string
		want  string
	}{
		{"plain digits", "9876543210", "", "https://wa.me/9876543210"},
		{"formatted number", "+91 98765-43210", "", "https://wa.me/919876543210"},
		{"parens and spaces", "(098) 765 43210", "", "https://wa.me/09876543210"},
		{"with text", "9876543210", "hi there", "https://wa.me/9876543210?text=hi+there"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WhatsApp(tt.phone, tt.text); got != tt.want {
				t.Errorf("WhatsApp(%q, %q) = %q, want %q", tt.phone, tt.text, got, tt.want)
			}
		})
	}
}

func TestWhatsAppIN_PrefixesCountryCode(t *testing.T) {
	got := WhatsAppIN("98765-43210", "")
	if got != "https://wa.me/919876543210" {
		t.Errorf("WhatsAppIN = %q", got)
	}
}

func TestMailto(t *testing.T) {
	got := Mailto("farmer@example.com", "Welcome to Agricultural Community!", "Hello & welcome")
	if !strings.HasPrefix(got, "mailto:farmer@example.com?subject=") {
		t.Errorf("Mailto = %q", got)
	}
	if !strings.Contains(got, "&body=Hello+%26+welcome") {
		t.Errorf("body not encoded: %q", got)
	}
}

func sampleOrder() backend.Order {
	return backend.Order{
		OrderID:       "KV-1001",
		Status:        "pending",
		PaymentMethod: "cod",
		OrderDate:     time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
		Pricing:       backend.Pricing{Total: 1250},
		Items: []backend.OrderItem{
			{Name: "Neem Oil", Quantity: 2, Price: 400},
			{Name: "Vermicompost", Quantity: 1, Price: 450},
		},
		Customer: backend.CustomerInfo{
			FirstName: "Sunita", LastName: "Patil", Phone: "+91 98765 43210",
			Address: "12 Main Rd", City: "Pune", State: "MH", ZipCode: "411001",
		},
	}
}

func TestOrderMessage_English(t *testing.T) {
	msg := OrderMessage(sampleOrder(), English)

	for _, want := range []string{
		"Hello Sunita Patil",
		"Order ID: KV-1001",
		"Order Date: 20/8/2026",
		"Status: Pending",
		"1. Neem Oil",
		"Qty: 2",
		"Total: ₹800",
		"Payment Method: Cash on Delivery",
		"Total Amount: ₹1,250",
		"12 Main Rd, Pune, MH - 411001",
		"Krishivishwa Biotech Team",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("english message missing %q", want)
		}
	}
	if strings.Contains(msg, "Special Instructions") {
		t.Error("empty special instructions should be omitted")
	}
}

func TestOrderMessage_Marathi(t *testing.T) {
	o := sampleOrder()
	o.Status = "payment_pending"
	o.PaymentMethod = "online"
	o.SpecialInstructions = "Deliver before noon"
	msg := OrderMessage(o, Marathi)

	for _, want := range []string{
		"नमस्कार Sunita Patil",
		"कृषिविश्व बायोटेक",
		"ऑर्डर आयडी: KV-1001",
		"स्थिती: Payment Pending",
		"मात्रा: 2",
		"ऑनलाइन पेमेंट",
		"विशेष सूचना:",
		"Deliver before noon",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("marathi message missing %q", want)
		}
	}
}

func TestOrderMessage_EncodesForWhatsApp(t *testing.T) {
	o := sampleOrder()
	link := WhatsAppIN(o.Customer.Phone, OrderMessage(o, English))

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if u.Host != "wa.me" || u.Path != "/919876543210" {
		t.Errorf("link target = %s%s", u.Host, u.Path)
	}
	if !strings.Contains(u.Query().Get("text"), "KV-1001") {
		t.Error("encoded text lost the order id")
	}
}

func TestWelcomeMessage(t *testing.T) {
	got := WelcomeMessage(backend.NewsletterSettings{
		WelcomeMessage: "Welcome aboard",
		GroupLink:      "https://chat.whatsapp.com/abc",
	})
	want := "Welcome aboard\n\nWhatsApp Group: https://chat.whatsapp.com/abc"
	if got != want {
		t.Errorf("WelcomeMessage = %q", got)
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{450, "450"},
		{1250, "1,250"},
		{100000, "1,00,000"},
		{1234567, "12,34,567"},
		{999.5, "999.50"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatINR(tt.in); got != tt.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
