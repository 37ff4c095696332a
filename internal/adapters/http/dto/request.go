package dto

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jsamuelsen11/mirri-validator/internal/domain"
)

const maxVersionLength = 32

var versionPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidationRequest represents the multipart form of a workbook upload.
// Filename and Content come from the "file" part; Version from the optional
// "version" field or query parameter.
type ValidationRequest struct {
	Filename string
	Content  []byte
	Version  string
}

// Validate checks that a file was supplied and that any version is a plain
// identifier. Returns a *domain.ValidationError if any checks fail.
func (r *ValidationRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Filename) == "" {
		fields["file"] = domain.MsgRequired
	}
	if r.Version != "" {
		switch {
		case len(r.Version) > maxVersionLength:
			fields["version"] = "must be at most 32 characters"
		case !versionPattern.MatchString(r.Version):
			fields["version"] = "may contain only letters, digits, '.', '_' and '-'"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// RunName derives the Error Log name from the uploaded file name: the base
// name without its extension.
func (r *ValidationRequest) RunName() string {
	base := filepath.Base(strings.ReplaceAll(r.Filename, `\`, "/"))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
