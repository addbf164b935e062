package normalize

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  User@Example.COM  ", "user@example.com"},
		{"plain@example.com", "plain@example.com"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	if got := Name("  Priya Sharma  "); got != "Priya Sharma" {
		t.Errorf("Name() = %q, want %q", got, "Priya Sharma")
	}
}

func TestStatus(t *testing.T) {
	if got := Status(" Active "); got != "active" {
		t.Errorf("Status() = %q, want %q", got, "active")
	}
}

func TestRole(t *testing.T) {
	if got := Role(" Super_Admin "); got != "super_admin" {
		t.Errorf("Role() = %q, want %q", got, "super_admin")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Velvet Thread", "velvet-thread"},
		{"  Bloom & Board  ", "bloom-board"},
		{"already-a-slug", "already-a-slug"},
		{"Under_Score", "under-score"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"Cedar & Sage-", "cedar-sage"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
