package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sentsplit/internal/config"
	"sentsplit/internal/domain"
	"sentsplit/internal/middleware"
	"sentsplit/internal/service"
)

var errInvalidForm = errors.New("invalid multipart form")

// UploadHandler handles the sentence splitting upload endpoints.
type UploadHandler struct {
	sentenceService service.SentenceService
	cfg             *config.UploadConfig
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(sentenceService service.SentenceService, cfg *config.UploadConfig) *UploadHandler {
	return &UploadHandler{sentenceService: sentenceService, cfg: cfg}
}

// Upload handles POST /upload
// Every file part of the multipart body is split, in submission order.
// ?math_only=true keeps only sentences containing <math> or </math>.
// An empty or absent math_only means false; any other non-boolean is rejected.
func (h *UploadHandler) Upload(c *gin.Context) {
	mathOnly := false
	if raw := c.Query("math_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_QUERY", "math_only must be a boolean")
			return
		}
		mathOnly = v
	}
	h.split(c, mathOnly)
}

// UploadMath handles POST /upload/math
func (h *UploadHandler) UploadMath(c *gin.Context) {
	h.split(c, true)
}

func (h *UploadHandler) split(c *gin.Context, mathOnly bool) {
	docs, err := h.readDocuments(c.Request)
	if err != nil {
		if errors.Is(err, errInvalidForm) {
			RespondError(c, http.StatusBadRequest, "INVALID_FORM", "request must be multipart/form-data")
			return
		}
		HandleError(c, err)
		return
	}
	if len(docs) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "at least one file is required")
		return
	}

	batch, err := h.sentenceService.Split(c.Request.Context(), service.SplitInput{
		RequestID: c.GetString(middleware.ContextKeyRequestID),
		Documents: docs,
		MathOnly:  mathOnly,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, batch)
}

// readDocuments streams the multipart body and collects every file part in
// the order it was sent, whatever its field name. Non-file fields are skipped.
func (h *UploadHandler) readDocuments(r *http.Request) ([]domain.Document, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidForm, err)
	}

	maxBytes := h.cfg.MaxFileBytes()
	var docs []domain.Document
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidForm, err)
		}
		if part.FileName() == "" {
			_ = part.Close()
			continue
		}
		if h.cfg.MaxFiles > 0 && len(docs) >= h.cfg.MaxFiles {
			_ = part.Close()
			return nil, fmt.Errorf("%w: limit is %d", domain.ErrTooManyFiles, h.cfg.MaxFiles)
		}

		var src io.Reader = part
		if maxBytes > 0 {
			src = io.LimitReader(part, maxBytes+1)
		}
		data, err := io.ReadAll(src)
		_ = part.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", part.FileName(), err)
		}
		if maxBytes > 0 && int64(len(data)) > maxBytes {
			return nil, fmt.Errorf("%s: %w", part.FileName(), domain.ErrFileTooLarge)
		}
		docs = append(docs, domain.Document{Name: part.FileName(), Content: data})
	}
	return docs, nil
}
