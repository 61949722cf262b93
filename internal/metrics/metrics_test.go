package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentsplit/internal/metrics"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	a.CacheHitsTotal.Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(a.CacheHitsTotal))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.CacheHitsTotal))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := metrics.New()
	m.DocumentsTotal.WithLabelValues("ok").Add(2)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `sentsplit_documents_total{outcome="ok"} 2`)
}
