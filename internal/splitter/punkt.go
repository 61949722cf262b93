package splitter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"sentsplit/internal/domain"
	"sentsplit/internal/logger"
)

const trainingDownloadTimeout = 2 * time.Minute

// PunktSplitter segments text with a pretrained Punkt sentence-boundary model.
//
// The model is loaded lazily on the first Ready or Split call and memoized,
// including a failed load: once initialization fails every later call
// reports the same ErrMissingModelData. The load ignores cancellation of the
// triggering caller's context, so an abandoned request cannot poison it.
type PunktSplitter struct {
	trainingPath string
	trainingURL  string
	client       *http.Client
	logger       *slog.Logger

	once      sync.Once
	tokenizer *sentences.DefaultSentenceTokenizer
	err       error
}

// NewPunktSplitter creates a PunktSplitter. An empty trainingPath selects the
// English model bundled with the tokenizer library. When trainingPath does
// not exist and trainingURL is set, the training file is downloaded there.
func NewPunktSplitter(trainingPath, trainingURL string) *PunktSplitter {
	return &PunktSplitter{
		trainingPath: trainingPath,
		trainingURL:  trainingURL,
		client:       &http.Client{Timeout: trainingDownloadTimeout},
		logger:       logger.WithComponent("punkt-splitter"),
	}
}

func (p *PunktSplitter) Name() string { return string(domain.EnginePunkt) }

// Ready loads the model if needed and reports whether it is usable.
func (p *PunktSplitter) Ready(ctx context.Context) error {
	p.once.Do(func() {
		p.tokenizer, p.err = p.load(context.WithoutCancel(ctx))
		if p.err != nil {
			p.logger.Error("punkt model unavailable", "path", p.trainingPath, "error", p.err)
			return
		}
		p.logger.Info("punkt model loaded", "path", p.trainingPath)
	})
	return p.err
}

func (p *PunktSplitter) Split(ctx context.Context, text string) ([]string, error) {
	if err := p.Ready(ctx); err != nil {
		return nil, err
	}
	out := make([]string, 0)
	for _, s := range p.tokenizer.Tokenize(text) {
		out = appendTrimmed(out, s.Text)
	}
	return out, nil
}

func (p *PunktSplitter) load(ctx context.Context) (*sentences.DefaultSentenceTokenizer, error) {
	if p.trainingPath == "" {
		tok, err := english.NewSentenceTokenizer(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: bundled english model: %v", domain.ErrMissingModelData, err)
		}
		return tok, nil
	}

	if _, err := os.Stat(p.trainingPath); errors.Is(err, fs.ErrNotExist) && p.trainingURL != "" {
		if err := p.download(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMissingModelData, err)
		}
	}

	data, err := os.ReadFile(p.trainingPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingModelData, err)
	}
	training, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrMissingModelData, p.trainingPath, err)
	}
	tok, err := english.NewSentenceTokenizer(training)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMissingModelData, err)
	}
	return tok, nil
}

// download fetches the training file into a temp file next to trainingPath
// and renames it into place, so a partial download is never read.
func (p *PunktSplitter) download(ctx context.Context) error {
	p.logger.Info("downloading punkt training data", "url", p.trainingURL, "path", p.trainingPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.trainingURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("building download request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("downloading training data: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading training data: unexpected status %d", resp.StatusCode)
	}

	dir := filepath.Dir(p.trainingPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+strings.TrimPrefix(filepath.Base(p.trainingPath), ".")+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing training data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing training data: %w", err)
	}
	return os.Rename(tmp.Name(), p.trainingPath)
}
