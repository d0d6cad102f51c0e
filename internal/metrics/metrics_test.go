package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteObserver_ObserveStage(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewInviteObserver(reg)
	require.NoError(t, err)

	o.ObserveStage(StageEncode, 5*time.Millisecond, nil)
	o.ObserveStage(StagePersist, time.Millisecond, errors.New("disk full"))
	o.ObserveStage(StagePersist, time.Millisecond, errors.New("disk full"))

	assert.Equal(t, float64(0), testutil.ToFloat64(o.failures.WithLabelValues(StageEncode)))
	assert.Equal(t, float64(2), testutil.ToFloat64(o.failures.WithLabelValues(StagePersist)))
}

func TestInviteObserver_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewInviteObserver(reg)
	require.NoError(t, err)

	_, err = NewInviteObserver(reg)
	assert.Error(t, err)
}

func TestInviteObserver_Nil(t *testing.T) {
	var o *InviteObserver
	assert.NotPanics(t, func() { o.ObserveStage(StageBuild, time.Second, nil) })
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewInviteObserver(reg)
	require.NoError(t, err)
	o.ObserveStage(StageBuild, time.Millisecond, errors.New("bad date"))

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `resortdesk_invite_failures_total{stage="build"} 1`)
}
