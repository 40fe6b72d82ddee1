package middleware

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSecureRequest(t *testing.T) {
	tests := []struct {
		name      string
		tls       bool
		forwarded string
		want      bool
	}{
		{name: "plain http", want: false},
		{name: "direct tls", tls: true, want: true},
		{name: "forwarded https", forwarded: "https", want: true},
		{name: "forwarded http", forwarded: "http", want: false},
		{name: "forwarded list takes first", forwarded: "https, http", want: true},
		{name: "forwarded list first insecure", forwarded: "http, https", want: false},
		{name: "forwarded mixed case", forwarded: "HTTPS", want: true},
		{name: "forwarded empty entries", forwarded: " , https", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/auth/logout", nil)
			if tt.tls {
				r.TLS = &tls.ConnectionState{}
			}
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-Proto", tt.forwarded)
			}
			assert.Equal(t, tt.want, IsSecureRequest(r))
		})
	}
}
