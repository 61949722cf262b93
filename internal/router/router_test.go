package router_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentsplit/internal/cache/noop"
	"sentsplit/internal/config"
	"sentsplit/internal/handler"
	"sentsplit/internal/metrics"
	"sentsplit/internal/router"
	"sentsplit/internal/service"
	"sentsplit/internal/splitter"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		CORS:    config.CORSConfig{AllowedOrigins: []string{"*"}},
		Upload:  config.UploadConfig{MaxFileSizeMB: 1, MaxFiles: 5},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	m := metrics.New()
	sp := splitter.NewRegexSplitter()
	svc := service.NewSentenceService(sp, noop.NewNoopCache(), nil, &cfg.Archive, m)
	uploadH := handler.NewUploadHandler(svc, &cfg.Upload)
	healthH := handler.NewHealthHandler(handler.ReadinessCheck{Name: "splitter", Check: sp.Ready})
	return router.Setup(cfg, m, uploadH, healthH)
}

func postFiles(t *testing.T, r http.Handler, target string, contents ...string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for i, content := range contents {
		part, err := writer.CreateFormFile("files", string(rune('a'+i))+".txt")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_UploadMath_EndToEnd(t *testing.T) {
	r := newEngine(t)

	w := postFiles(t, r, "/upload/math", "Hello world. <MATH>E=mc^2</MATH>.", "No math here.")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sentences":["<MATH>E=mc^2</MATH>."]}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_Upload_AllSentences(t *testing.T) {
	r := newEngine(t)

	w := postFiles(t, r, "/upload", "Hello world. <MATH>E=mc^2</MATH>.", "No math here.")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sentences":["Hello world.","<MATH>E=mc^2</MATH>.","No math here."]}`, w.Body.String())
}

func TestRouter_Upload_MathOnlyQuery(t *testing.T) {
	r := newEngine(t)

	w := postFiles(t, r, "/upload?math_only=1", "See <math>y</math>. Done.")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sentences":["See <math>y</math>."]}`, w.Body.String())
}

func TestRouter_Upload_DecodeError(t *testing.T) {
	r := newEngine(t)

	w := postFiles(t, r, "/upload", "Fine.", "\xff\xfe\xfd")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "DECODE_ERROR")
}

func TestRouter_Preflight(t *testing.T) {
	r := newEngine(t)

	req, _ := http.NewRequest(http.MethodOptions, "/upload", http.NoBody)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	r := newEngine(t)
	postFiles(t, r, "/upload", "One. Two.")

	for _, path := range []string{"/healthz", "/readyz"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, http.NoBody)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `sentsplit_sentences_total{engine="regex",mode="all"} 2`)
}
