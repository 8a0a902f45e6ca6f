package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/krishivishwa/agriadmin/internal/app/system/htmlsanitize"
)

func TestPrepareForDisplay_MessageBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"empty body",
			"",
			"",
		},
		{
			"plain enquiry is paragraph wrapped",
			"Do you deliver seeds to Nashik?",
			"<p>Do you deliver seeds to Nashik?</p>",
		},
		{
			"newlines become breaks",
			"Hello,\nI need 5 bags of fertilizer.\nThanks",
			"<p>Hello,<br>I need 5 bags of fertilizer.<br>Thanks</p>",
		},
		{
			"comparison stays plain text",
			"Order above 500 > free delivery?",
			"<p>Order above 500 &gt; free delivery?</p>",
		},
		{
			"ampersand escaped",
			"Seeds & saplings",
			"<p>Seeds &amp; saplings</p>",
		},
		{
			"script in an html body is stripped",
			"<p>Nice products</p><script>alert(1)</script>",
			"<p>Nice products</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(htmlsanitize.PrepareForDisplay(tt.body)); got != tt.want {
				t.Errorf("PrepareForDisplay(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestSanitize_KeepsEditorFormatting(t *testing.T) {
	// News content comes from a rich editor; its formatting survives intact.
	tests := []string{
		"<p><strong>Monsoon offer</strong> on <em>all seeds</em></p>",
		"<h2>Kharif season update</h2><p>Sowing starts this week.</p>",
		"<ul><li>Wheat</li><li>Soybean</li></ul>",
		"<ol><li>Soak seeds</li><li>Sow at dusk</li></ol>",
		"<blockquote>Best harvest in ten years</blockquote>",
		"<u>underline</u> <s>strike</s> <sub>sub</sub> <sup>sup</sup> <mark>mark</mark>",
	}

	for _, input := range tests {
		if got := htmlsanitize.Sanitize(input); got != input {
			t.Errorf("Sanitize(%q) = %q, want unchanged", input, got)
		}
	}
}

func TestSanitize_KeepsNewsTables(t *testing.T) {
	input := `<table style="width:100%"><thead><tr><th>Crop</th></tr></thead><tbody><tr><td style="text-align:center">Wheat</td></tr></tbody></table>`
	got := htmlsanitize.Sanitize(input)

	if !strings.Contains(got, "<table") || !strings.Contains(got, "<td") {
		t.Fatalf("table markup not preserved: %q", got)
	}
	if !strings.Contains(got, "style=") {
		t.Errorf("style attribute on table cells not preserved: %q", got)
	}
}

func TestSanitize_StripsUnsafeMarkup(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		banned string
		keeps  string
	}{
		{
			"script tag",
			"<p>Hello</p><script>alert(1)</script>",
			"<script", "Hello",
		},
		{
			"iframe",
			`<p>Update</p><iframe src="https://evil.example"></iframe>`,
			"iframe", "Update",
		},
		{
			"style tag",
			"<style>body{color:red}</style><p>Text</p>",
			"<style>", "Text",
		},
		{
			"click handler",
			`<p onclick="alert(1)">Offer</p>`,
			"onclick", "Offer",
		},
		{
			"error handler on image",
			`<img src="x" onerror="alert(1)"><p>Photo</p>`,
			"onerror", "Photo",
		},
		{
			"javascript href",
			`<a href="javascript:alert(1)">Shop now</a>`,
			"javascript:", "Shop now",
		},
		{
			"data url image",
			`<img src="data:text/html,<script>alert(1)</script>"><p>Caption</p>`,
			"data:text/html", "Caption",
		},
		{
			"form elements",
			`<form action="/x"><input name="a"></form><p>Contact us</p>`,
			"<form", "Contact us",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlsanitize.Sanitize(tt.input)
			if strings.Contains(got, tt.banned) {
				t.Errorf("Sanitize(%q) kept %q: %q", tt.input, tt.banned, got)
			}
			if !strings.Contains(got, tt.keeps) {
				t.Errorf("Sanitize(%q) lost safe content %q: %q", tt.input, tt.keeps, got)
			}
		})
	}
}

func TestSanitize_KeepsSafeLinksAndImages(t *testing.T) {
	link := htmlsanitize.Sanitize(`<a href="https://krishivishwa.com/shop">Shop</a>`)
	if !strings.Contains(link, "https://krishivishwa.com/shop") {
		t.Errorf("https link not preserved: %q", link)
	}

	img := htmlsanitize.Sanitize(`<img src="https://cdn.example.com/field.jpg" alt="Field">`)
	if !strings.Contains(img, "src=") || !strings.Contains(img, "alt=") {
		t.Errorf("image src/alt not preserved: %q", img)
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"Do you sell drip kits?", true},
		{"yield was 5 > last year", true},
		{"price < 200 per bag", true},
		{"<p>Hello</p>", false},
	}

	for _, tt := range tests {
		if got := htmlsanitize.IsPlainText(tt.s); got != tt.want {
			t.Errorf("IsPlainText(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestPlainTextToHTML(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{"", ""},
		{"Great service!", "<p>Great service!</p>"},
		{"Line 1\nLine 2", "<p>Line 1<br>Line 2</p>"},
		{"<script>alert(1)</script>", "<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>"},
	}

	for _, tt := range tests {
		if got := htmlsanitize.PlainTextToHTML(tt.s); got != tt.want {
			t.Errorf("PlainTextToHTML(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}
