// Package sharelink builds the outbound contact links the console offers:
// WhatsApp chat URLs and mailto links, plus the canned message templates
// used for order updates, appointment follow-ups, and newsletter welcomes.
package sharelink

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/krishivishwa/agriadmin/internal/backend"
)

// WhatsApp returns a wa.me chat link. Everything but digits is stripped from
// the phone number; text (if any) is carried URL-encoded.
func WhatsApp(phone, text string) string {
	u := "https://wa.me/" + digits(phone)
	if text != "" {
		u += "?text=" + url.QueryEscape(text)
	}
	return u
}

// WhatsAppIN is WhatsApp with the Indian country code prefixed, used for
// order numbers stored without one.
func WhatsAppIN(phone, text string) string {
	return WhatsApp("91"+digits(phone), text)
}

// Mailto returns a mailto link with subject and body encoded.
func Mailto(addr, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		addr, url.QueryEscape(subject), url.QueryEscape(body))
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Language selects the order-message wording.
type Language string

const (
	English Language = "english"
	Marathi Language = "marathi"
)

// AppointmentFollowUp is the canned follow-up line for appointment chats.
const AppointmentFollowUp = "Hello, I'm following up on our appointment. Please let me know if you have any questions."

// WelcomeSubject is the mail subject for newsletter welcomes.
const WelcomeSubject = "Welcome to Agricultural Community!"

// WelcomeMessage joins the configured welcome text with the WhatsApp group
// link for newsletter outreach.
func WelcomeMessage(s backend.NewsletterSettings) string {
	return s.WelcomeMessage + "\n\nWhatsApp Group: " + s.GroupLink
}

// OrderMessage renders the full order-status message for a WhatsApp chat in
// the chosen language.
func OrderMessage(o backend.Order, lang Language) string {
	name := strings.TrimSpace(o.Customer.FirstName + " " + o.Customer.LastName)
	date := fmt.Sprintf("%d/%d/%d", o.OrderDate.Day(), int(o.OrderDate.Month()), o.OrderDate.Year())
	total := FormatINR(o.Pricing.Total)
	address := fmt.Sprintf("%s, %s, %s - %s", o.Customer.Address, o.Customer.City, o.Customer.State, o.Customer.ZipCode)

	if lang == Marathi {
		return marathiOrderMessage(o, name, date, total, address)
	}
	return englishOrderMessage(o, name, date, total, address)
}

func englishOrderMessage(o backend.Order, name, date, total, address string) string {
	status := map[string]string{
		backend.OrderDelivered:      "Delivered",
		backend.OrderPaymentPending: "Payment Pending",
	}[o.Status]
	if status == "" {
		status = "Pending"
	}
	payment := "Cash on Delivery"
	if o.PaymentMethod == "online" {
		payment = "Online Payment"
	}

	var lines []string
	for i, it := range o.Items {
		lines = append(lines, fmt.Sprintf("%d. %s\n   Qty: %d\n   Price: ₹%s\n   Total: ₹%s",
			i+1, it.Name, it.Quantity, FormatINR(it.Price), FormatINR(float64(it.Quantity)*it.Price)))
	}

	special := ""
	if o.SpecialInstructions != "" {
		special = "📝 *Special Instructions:* " + o.SpecialInstructions + "\n\n"
	}

	return fmt.Sprintf(`🙏 Hello %s,

🏪 *Krishivishwa Biotech* - Your Order Information:

📋 *Order Details:*
🆔 Order ID: %s
📅 Order Date: %s
📦 Status: %s

🛍️ *Products Ordered:*
%s

💰 *Payment Information:*
💳 Payment Method: %s
💵 Total Amount: ₹%s

📍 *Delivery Address:*
%s

%sThank you for choosing us! 🙏
Krishivishwa Biotech Team

📞 Contact us for any queries.`,
		name, o.OrderID, date, status, strings.Join(lines, "\n\n"), payment, total, address, special)
}

func marathiOrderMessage(o backend.Order, name, date, total, address string) string {
	status := map[string]string{
		backend.OrderDelivered:      "Delivered",
		backend.OrderPaymentPending: "Payment Pending",
	}[o.Status]
	if status == "" {
		status = "Pending"
	}
	payment := "कॅश ऑन डिलिव्हरी"
	if o.PaymentMethod == "online" {
		payment = "ऑनलाइन पेमेंट"
	}

	var lines []string
	for i, it := range o.Items {
		lines = append(lines, fmt.Sprintf("%d. %s\n   मात्रा: %d\n   किंमत: ₹%s\n   एकूण: ₹%s",
			i+1, it.Name, it.Quantity, FormatINR(it.Price), FormatINR(float64(it.Quantity)*it.Price)))
	}

	special := ""
	if o.SpecialInstructions != "" {
		special = "📝 *विशेष सूचना:* " + o.SpecialInstructions + "\n\n"
	}

	return fmt.Sprintf(`🙏 नमस्कार %s,

🏪 *कृषिविश्व बायोटेक* कडून तुमच्या ऑर्डरबद्दल माहिती:

📋 *ऑर्डर तपशील:*
🆔 ऑर्डर आयडी: %s
📅 ऑर्डर दिनांक: %s
📦 स्थिती: %s

🛍️ *उत्पादने:*
%s

💰 *पेमेंट माहिती:*
💳 पेमेंट पद्धत: %s
💵 एकूण रक्कम: ₹%s

📍 *डिलिव्हरी पत्ता:*
%s

%sधन्यवाद! 🙏
कृषिविश्व बायोटेक संघ

📞 कोणत्याही प्रश्नासाठी संपर्क करा.`,
		name, o.OrderID, date, status, strings.Join(lines, "\n\n"), payment, total, address, special)
}

// FormatINR renders an amount with Indian digit grouping (12,34,567). Whole
// amounts drop the decimal part; fractional amounts keep two places.
func FormatINR(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart, frac := parts[0], parts[1]

	grouped := groupIndian(intPart)
	out := grouped
	if frac != "00" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func groupIndian(s string) string {
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
