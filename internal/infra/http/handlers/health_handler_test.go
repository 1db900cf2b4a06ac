package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTextGen struct {
	configured bool
}

func (s stubTextGen) Configured() bool {
	return s.configured
}

func TestHealthHandlerWithoutDependencies(t *testing.T) {
	handler := NewHealthHandler(nil, nil, stubTextGen{configured: false})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "not configured", response.Dependencies["database"])
	assert.Equal(t, "not configured", response.Dependencies["textgen"])
}

func TestHealthHandlerReportsTextGenConfigured(t *testing.T) {
	handler := NewHealthHandler(nil, nil, stubTextGen{configured: true})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.Handle(w, req)

	var response HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "configured", response.Dependencies["textgen"])
}
