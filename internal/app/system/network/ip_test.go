package network

import (
	"net/http/httptest"
	"testing"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name          string
		xForwardedFor string
		xRealIP       string
		remoteAddr    string
		want          string
	}{
		{
			name:          "X-Forwarded-For single IP",
			xForwardedFor: "203.0.113.14",
			remoteAddr:    "10.0.0.1:12345",
			want:          "203.0.113.14",
		},
		{
			name:          "X-Forwarded-For chain takes first",
			xForwardedFor: "203.0.113.14, 10.0.0.2, 172.16.0.1",
			remoteAddr:    "10.0.0.1:12345",
			want:          "203.0.113.14",
		},
		{
			name:          "X-Forwarded-For trimmed",
			xForwardedFor: "  203.0.113.14  ",
			remoteAddr:    "10.0.0.1:12345",
			want:          "203.0.113.14",
		},
		{
			name:       "X-Real-IP",
			xRealIP:    "198.51.100.7",
			remoteAddr: "10.0.0.1:12345",
			want:       "198.51.100.7",
		},
		{
			name:          "X-Forwarded-For beats X-Real-IP",
			xForwardedFor: "203.0.113.14",
			xRealIP:       "10.0.0.2",
			remoteAddr:    "10.0.0.1:12345",
			want:          "203.0.113.14",
		},
		{
			name:       "RemoteAddr port stripped",
			remoteAddr: "192.0.2.200:54321",
			want:       "192.0.2.200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.xForwardedFor != "" {
				r.Header.Set("X-Forwarded-For", tt.xForwardedFor)
			}
			if tt.xRealIP != "" {
				r.Header.Set("X-Real-IP", tt.xRealIP)
			}
			if got := GetClientIP(r); got != tt.want {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
