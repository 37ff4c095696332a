package schemas

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"

	"github.com/jsamuelsen11/mirri-validator/internal/domain"
	"github.com/jsamuelsen11/mirri-validator/internal/domain/schema"
	"github.com/jsamuelsen11/mirri-validator/internal/ports"
)

//go:embed catalogue/*.yaml
var catalogue embed.FS

// Compile-time check that Embedded implements ports.SchemaSource.
var _ ports.SchemaSource = (*Embedded)(nil)

// Embedded serves the schema versions compiled into the binary.
type Embedded struct {
	schemas map[string]*schema.Schema
}

// NewEmbedded loads the built-in catalogue.
func NewEmbedded() (*Embedded, error) {
	sub, err := fs.Sub(catalogue, "catalogue")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load reads every *.yaml document at the root of fsys. Each document's
// version must be unique.
func Load(fsys fs.FS) (*Embedded, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}

	e := &Embedded{schemas: make(map[string]*schema.Schema, len(names))}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		s, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path.Base(name), err)
		}
		if _, dup := e.schemas[s.Version()]; dup {
			return nil, fmt.Errorf("loading %s: version %s: %w", name, s.Version(), domain.ErrConflict)
		}
		e.schemas[s.Version()] = s
	}
	return e, nil
}

// Schema returns the schema for version.
// Returns domain.ErrNotFound if the version is not in the catalogue.
func (e *Embedded) Schema(_ context.Context, version string) (*schema.Schema, error) {
	s, ok := e.schemas[version]
	if !ok {
		return nil, fmt.Errorf("schema version %q: %w", version, domain.ErrNotFound)
	}
	return s, nil
}

// Versions lists the available versions in ascending order.
func (e *Embedded) Versions() []string {
	return slices.Sorted(maps.Keys(e.schemas))
}
