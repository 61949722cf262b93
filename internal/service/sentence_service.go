package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"sentsplit/internal/config"
	"sentsplit/internal/domain"
	"sentsplit/internal/logger"
	"sentsplit/internal/metrics"
	"sentsplit/internal/port"
	"sentsplit/internal/splitter"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SplitInput is the DTO for a sentence split request.
type SplitInput struct {
	RequestID string
	Documents []domain.Document
	MathOnly  bool
}

// SentenceService defines the sentence splitting contract.
type SentenceService interface {
	Split(ctx context.Context, input SplitInput) (*domain.SentenceBatch, error)
	Ready(ctx context.Context) error
}

type sentenceService struct {
	splitter port.SentenceSplitter
	cache    port.SentenceCache
	storage  port.ObjectStorage
	archive  *config.ArchiveConfig
	metrics  *metrics.Metrics
}

// NewSentenceService creates a new SentenceService implementation.
// Raw documents are archived to storage only when archive.Enabled is set.
func NewSentenceService(
	splitter port.SentenceSplitter,
	cache port.SentenceCache,
	storage port.ObjectStorage,
	archive *config.ArchiveConfig,
	m *metrics.Metrics,
) SentenceService {
	if archive == nil {
		archive = &config.ArchiveConfig{}
	}
	if m == nil {
		m = metrics.New()
	}
	return &sentenceService{
		splitter: splitter,
		cache:    cache,
		storage:  storage,
		archive:  archive,
		metrics:  m,
	}
}

func (s *sentenceService) Ready(ctx context.Context) error {
	return s.splitter.Ready(ctx)
}

func (s *sentenceService) Split(ctx context.Context, input SplitInput) (*domain.SentenceBatch, error) {
	if len(input.Documents) == 0 {
		return nil, domain.ErrNoDocuments
	}
	log := logger.FromContext(ctx).With("component", "sentence-service")

	// Decode everything up front: one bad file fails the whole request.
	texts := make([]string, len(input.Documents))
	for i, doc := range input.Documents {
		text, err := decode(doc)
		if err != nil {
			s.metrics.DocumentsTotal.WithLabelValues("decode_error").Inc()
			log.Warn("document decode failed", "document", doc.Name, "index", i)
			return nil, err
		}
		texts[i] = text
	}

	if s.archive.Enabled && s.storage != nil {
		s.archiveDocuments(ctx, input)
	}

	engine := s.splitter.Name()
	mode := "all"
	if input.MathOnly {
		mode = "math"
	}

	batch := domain.NewSentenceBatch()
	for i, text := range texts {
		sentences, hit, err := s.cache.GetOrCompute(ctx, engine, text, func() ([]string, error) {
			start := time.Now()
			out, err := s.splitter.Split(ctx, text)
			s.metrics.SplitDuration.WithLabelValues(engine).Observe(time.Since(start).Seconds())
			return out, err
		})
		if err != nil {
			s.metrics.DocumentsTotal.WithLabelValues("split_error").Inc()
			return nil, fmt.Errorf("splitting %s: %w", input.Documents[i].Name, err)
		}
		if hit {
			s.metrics.CacheHitsTotal.Inc()
		} else {
			s.metrics.CacheMissesTotal.Inc()
		}

		if input.MathOnly {
			sentences = splitter.FilterMath(sentences)
		}
		batch.Append(sentences...)

		s.metrics.DocumentsTotal.WithLabelValues("ok").Inc()
		s.metrics.SentencesTotal.WithLabelValues(engine, mode).Add(float64(len(sentences)))
		log.Debug("document split",
			"document", input.Documents[i].Name,
			"engine", engine,
			"sentences", len(sentences),
			"cache_hit", hit,
		)
	}

	log.Info("split complete",
		"documents", len(input.Documents),
		"sentences", batch.Len(),
		"math_only", input.MathOnly,
	)
	return batch, nil
}

// archiveDocuments copies the raw uploads to object storage. Failures are
// logged and never fail the request.
func (s *sentenceService) archiveDocuments(ctx context.Context, input SplitInput) {
	requestID := input.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}
	log := logger.FromContext(ctx).With("component", "sentence-service")
	for i, doc := range input.Documents {
		key := ArchiveKey(requestID, i, doc.Name)
		_, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:      s.archive.Bucket,
			Key:         key,
			Body:        bytes.NewReader(doc.Content),
			ContentType: "text/plain; charset=utf-8",
			Size:        int64(len(doc.Content)),
		})
		if err != nil {
			log.Warn("archive upload failed", "key", key, "error", fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err))
		}
	}
}

// ArchiveKey returns the object key for the index-th document of a request.
func ArchiveKey(requestID string, index int, name string) string {
	base := path.Base(name)
	if base == "." || base == "/" || base == "" {
		base = "document.txt"
	}
	return fmt.Sprintf("uploads/%s/%d-%s", requestID, index, base)
}

// decode validates the document as UTF-8 and drops a leading byte order mark.
func decode(doc domain.Document) (string, error) {
	content := bytes.TrimPrefix(doc.Content, utf8BOM)
	if !utf8.Valid(content) {
		return "", fmt.Errorf("%s: %w", doc.Name, domain.ErrDecode)
	}
	return string(content), nil
}
