package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:  "empty string",
			input: "",
		},
		{
			name:     "plain text",
			input:    "Hand-loomed alpaca blend",
			contains: []string{"Hand-loomed alpaca blend"},
		},
		{
			name:     "safe HTML preserved",
			input:    "<p>Refurbished laptops with a <strong>2-year</strong> warranty</p>",
			contains: []string{"<p>", "<strong>", "warranty"},
		},
		{
			name:     "script tag removed",
			input:    "<p>Hello</p><script>alert('xss')</script>",
			contains: []string{"<p>Hello</p>"},
			excludes: []string{"<script>", "alert"},
		},
		{
			name:     "onclick removed",
			input:    `<p onclick="alert('xss')">Click me</p>`,
			contains: []string{"<p>", "Click me"},
			excludes: []string{"onclick"},
		},
		{
			name:     "javascript URL removed",
			input:    `<a href="javascript:alert('xss')">Link</a>`,
			contains: []string{"Link"},
			excludes: []string{"javascript:"},
		},
		{
			name:     "safe link preserved",
			input:    `<a href="https://example.com">Link</a>`,
			contains: []string{"<a", "https://example.com"},
		},
		{
			name:     "extra inline formatting allowed",
			input:    "<p><mark>On sale</mark> while <s>stocks</s> last</p>",
			contains: []string{"<mark>", "<s>"},
		},
		{
			name:     "iframe removed",
			input:    `<iframe src="https://evil.example"></iframe><p>text</p>`,
			contains: []string{"<p>text</p>"},
			excludes: []string{"<iframe"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize(%q) = %q, missing %q", tt.input, got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("Sanitize(%q) = %q, should not contain %q", tt.input, got, bad)
				}
			}
		})
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"just words", true},
		{"a < b and b > c", false},
		{"<p>html</p>", false},
		{"less < only", true},
	}
	for _, tt := range tests {
		if got := IsPlainText(tt.input); got != tt.want {
			t.Errorf("IsPlainText(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
