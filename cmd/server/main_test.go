package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/swaggo/swag"
)

func TestSwaggerURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8000/swagger/index.html", swaggerURL("", "8000"))
	assert.Equal(t, "https://api.tuniskill.tn/swagger/index.html", swaggerURL("https://api.tuniskill.tn", "8000"))
	assert.Equal(t, "http://example.com:9000/swagger/index.html", swaggerURL("example.com:9000", "8000"))
}

func TestConfigureSwagger(t *testing.T) {
	tests := []struct {
		name        string
		host        string
		wantHost    string
		wantSchemes []string
	}{
		{"default", "", "localhost:9090", nil},
		{"bare host", "api.tuniskill.tn", "api.tuniskill.tn", nil},
		{"https", "https://api.tuniskill.tn/", "api.tuniskill.tn", []string{"https"}},
		{"http with port", "http://example.com:9000", "example.com:9000", []string{"http"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &swag.Spec{Host: "localhost:8000"}
			configureSwagger(info, tt.host, "9090")
			assert.Equal(t, tt.wantHost, info.Host)
			assert.Equal(t, tt.wantSchemes, info.Schemes)
		})
	}
}
