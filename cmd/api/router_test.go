package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthStatus(t *testing.T) {
	tests := []struct {
		name       string
		services   map[string]string
		wantStatus string
		wantCode   int
	}{
		{"all up", map[string]string{"database": "UP", "redis": "UP"}, "ok", http.StatusOK},
		{"database down", map[string]string{"database": "DOWN", "redis": "UP"}, "degraded", http.StatusServiceUnavailable},
		{"redis down", map[string]string{"database": "UP", "redis": "DOWN"}, "degraded", http.StatusServiceUnavailable},
		{"everything down", map[string]string{"database": "DOWN", "redis": "DOWN"}, "degraded", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := healthStatus(tt.services)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
