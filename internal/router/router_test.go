package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stpnv0/ResortDesk/internal/handler"
	hmocks "github.com/stpnv0/ResortDesk/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/ginext"
)

func newRouter(t *testing.T, settings *hmocks.MockSettingsSvc) http.Handler {
	t.Helper()
	h := handler.NewHandler(
		hmocks.NewMockReservationSvc(t),
		hmocks.NewMockInviteSvc(t),
		settings,
		hmocks.NewMockAdminSvc(t),
		hmocks.NewMockDashboardSvc(t),
	)
	deny := func(c *ginext.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "denied"})
	}
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("# metrics"))
	})
	return InitRouter("test", h, deny, metrics)
}

func TestRouter_Health(t *testing.T) {
	r := newRouter(t, hmocks.NewMockSettingsSvc(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Metrics(t *testing.T) {
	r := newRouter(t, hmocks.NewMockSettingsSvc(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# metrics", w.Body.String())
}

func TestRouter_AdminRoutesRequireAuth(t *testing.T) {
	r := newRouter(t, hmocks.NewMockSettingsSvc(t))

	for _, path := range []string{"/api/admin/dashboard", "/api/admin/admins", "/api/admin/reservations"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRouter_PublicSettings(t *testing.T) {
	settings := hmocks.NewMockSettingsSvc(t)
	settings.EXPECT().Get(mock.Anything).Return(&domain.SiteSettings{ResortName: "Lagoon"}, nil)
	r := newRouter(t, settings)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
