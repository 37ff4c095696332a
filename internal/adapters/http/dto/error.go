package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/goccy/go-json"

	"github.com/jsamuelsen11/mirri-validator/internal/domain"
	"github.com/jsamuelsen11/mirri-validator/internal/platform/logging"
)

const problemContentType = "application/problem+json"

// internalDetail replaces the detail of unmapped errors so internals stay in
// the logs.
const internalDetail = "internal server error"

// ErrorResponse is an RFC 9457 problem document. Code is an extension member
// naming the failure class for clients that branch on it.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at one rejected form field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemClasses maps error classes to statuses, first match wins.
var problemClasses = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrValidation, http.StatusBadRequest, "invalid_request"},
	{domain.ErrTooLarge, http.StatusRequestEntityTooLarge, "upload_too_large"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUnavailable, http.StatusBadGateway, "schema_registry_unavailable"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "timeout"},
}

// NewErrorResponse builds the problem document for err. Instance is the
// request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := ErrorResponse{
		Type:     "about:blank",
		Status:   http.StatusInternalServerError,
		Code:     "internal",
		Detail:   internalDetail,
		Instance: r.RequestURI,
	}
	for _, class := range problemClasses {
		if errors.Is(err, class.target) {
			resp.Status, resp.Code, resp.Detail = class.status, class.code, err.Error()
			break
		}
	}
	resp.Title = http.StatusText(resp.Status)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes the problem document for err. Unmapped errors
// are logged with their full chain since the response hides it.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	logger := logging.FromContext(r.Context())

	if resp.Code == "internal" {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("operation", r.Method+" "+r.URL.Path),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logger.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}

// WriteStatus writes a problem document for a routing failure that has no
// domain error behind it, such as 405.
func WriteStatus(w http.ResponseWriter, r *http.Request, status int, detail string) {
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     strings.ReplaceAll(strings.ToLower(http.StatusText(status)), " ", "_"),
		Detail:   detail,
		Instance: r.RequestURI,
	})
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "form." + field, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
