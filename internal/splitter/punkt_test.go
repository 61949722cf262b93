package splitter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentsplit/internal/domain"
	"sentsplit/internal/splitter"
)

func TestPunktSplitter_BundledModel(t *testing.T) {
	s := splitter.NewPunktSplitter("", "")
	ctx := context.Background()

	require.NoError(t, s.Ready(ctx))

	got, err := s.Split(ctx, "The cat sat on the mat. The dog ran away.")
	require.NoError(t, err)
	assert.Equal(t, []string{"The cat sat on the mat.", "The dog ran away."}, got)
}

func TestPunktSplitter_EmptyInput(t *testing.T) {
	got, err := splitter.NewPunktSplitter("", "").Split(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPunktSplitter_MissingTrainingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	s := splitter.NewPunktSplitter(path, "")

	err := s.Ready(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingModelData)

	// The failure is memoized and surfaces on Split too.
	_, err = s.Split(context.Background(), "Hello. World.")
	assert.ErrorIs(t, err, domain.ErrMissingModelData)
}

func TestPunktSplitter_DownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "punkt", "english.json")
	s := splitter.NewPunktSplitter(path, srv.URL)

	assert.ErrorIs(t, s.Ready(context.Background()), domain.ErrMissingModelData)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

// emptyTraining is a valid Punkt training file with no learned parameters.
const emptyTraining = `{"AbbrevTypes":{},"Collocations":{},"SentStarters":{},"OrthoContext":{}}`

func TestPunktSplitter_DownloadsAndSplits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(emptyTraining))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "punkt", "english.json")
	s := splitter.NewPunktSplitter(path, srv.URL)

	got, err := s.Split(context.Background(), "The cat sat. The dog ran.")
	require.NoError(t, err)
	assert.Equal(t, []string{"The cat sat.", "The dog ran."}, got)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.JSONEq(t, emptyTraining, string(data))
}

func TestPunktSplitter_LoadSurvivesCanceledCaller(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(emptyTraining))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "english.json")
	s := splitter.NewPunktSplitter(path, srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, s.Ready(ctx))
	got, err := s.Split(context.Background(), "One here. Two there.")
	require.NoError(t, err)
	assert.Equal(t, []string{"One here.", "Two there."}, got)
}

func TestPunktSplitter_DownloadsOnceThenParses(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "punkt", "english.json")
	s := splitter.NewPunktSplitter(path, srv.URL)

	err := s.Ready(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingModelData)
	_ = s.Ready(context.Background())

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "not json", string(data))
	assert.Equal(t, 1, hits)
}
