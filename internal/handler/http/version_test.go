package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-fin-ledger/internal/logger"
	"github.com/MKhiriev/go-fin-ledger/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// TestGetAppVersion verifies the plain-text version response.
func TestGetAppVersion(t *testing.T) {
	h := NewHandler(&service.Services{
		AppInfoService: &mockAppInfoService{version: "1.2.3"},
	}, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.getAppVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}
