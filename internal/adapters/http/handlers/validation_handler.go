package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen11/mirri-validator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/mirri-validator/internal/domain"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

const (
	formFieldFile    = "file"
	formFieldVersion = "version"

	// DefaultMaxUploadBytes is used when the handler is built with a
	// non-positive limit.
	DefaultMaxUploadBytes int64 = 32 << 20
)

// ValidationHandler handles workbook validation HTTP endpoints.
type ValidationHandler struct {
	svc      ports.ValidationService
	maxBytes int64
}

// NewValidationHandler creates a new ValidationHandler. maxBytes caps the
// size of an uploaded request body.
func NewValidationHandler(svc ports.ValidationService, maxBytes int64) *ValidationHandler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &ValidationHandler{svc: svc, maxBytes: maxBytes}
}

// Validate handles POST /api/v1/validations. The workbook is read from the
// multipart "file" part. Findings are returned with 200 OK; only request and
// schema problems produce an error status.
func (h *ValidationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	req, err := h.readUpload(w, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	log, err := h.svc.Validate(r.Context(), ports.ValidationRequest{
		Name:    req.RunName(),
		Content: req.Content,
		Version: req.Version,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToErrorLogResponse(log))
}

func (h *ValidationHandler) readUpload(w http.ResponseWriter, r *http.Request) (*dto.ValidationRequest, error) {
	if r.ContentLength > h.maxBytes {
		return nil, h.tooLarge()
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, h.tooLarge()
		}
		return nil, &domain.ValidationError{
			Fields: map[string]string{"body": "must be a multipart/form-data upload"},
		}
	}

	req := &dto.ValidationRequest{Version: r.FormValue(formFieldVersion)}

	file, header, err := r.FormFile(formFieldFile)
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	req.Filename = header.Filename
	req.Content = content
	return req, nil
}

func (h *ValidationHandler) tooLarge() error {
	return fmt.Errorf("workbook upload exceeds %d bytes: %w", h.maxBytes, domain.ErrTooLarge)
}
