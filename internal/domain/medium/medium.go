// Package medium models a culture-collection growth medium record. The
// record has a fixed set of optional attributes; name-based access outside
// that set fails with domain.ErrUnknownField.
package medium

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/jsamuelsen11/mirri-validator/internal/domain"
)

const entityName = "growth medium"

// ErrFieldType is returned when a value of the wrong scalar type is written
// to a field through the name-based API.
var ErrFieldType = errors.New("wrong value type for field")

// GrowthMedium is a growth medium record. Every attribute is optional and
// absent by default.
type GrowthMedium struct {
	RecordID                domain.Optional[int64]
	RecordName              domain.Optional[string]
	Acronym                 domain.Optional[string]
	FullDescription         domain.Optional[string]
	Ingredients             domain.Optional[string]
	Description             domain.Optional[string]
	OtherName               domain.Optional[string]
	PH                      domain.Optional[float64]
	SterilizationConditions domain.Optional[string]
}

// New builds a GrowthMedium from name/value pairs. Nil values are skipped
// so they stay absent. Every name is checked before any value is stored, so
// an unknown name always fails with domain.ErrUnknownField, even when
// another value is mistyped. Mistyped values fail with ErrFieldType.
func New(values map[string]any) (*GrowthMedium, error) {
	names := slices.Sorted(maps.Keys(values))
	for _, name := range names {
		if _, err := ParseField(name); err != nil {
			return nil, err
		}
	}

	m := &GrowthMedium{}
	for _, name := range names {
		if values[name] == nil {
			continue
		}
		if err := m.Set(name, values[name]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Get returns the value stored under name and whether it is present.
func (m *GrowthMedium) Get(name string) (any, bool, error) {
	f, err := ParseField(name)
	if err != nil {
		return nil, false, err
	}
	v, ok := accessors[f].get(m)
	return v, ok, nil
}

// Set stores value under name, overwriting any previous value. A nil value
// clears the field.
func (m *GrowthMedium) Set(name string, value any) error {
	f, err := ParseField(name)
	if err != nil {
		return err
	}
	return accessors[f].set(m, value)
}

// ToMap returns a snapshot of the fields that are currently set.
func (m *GrowthMedium) ToMap() map[Field]any {
	out := make(map[Field]any, len(fieldOrder))
	for _, f := range fieldOrder {
		if v, ok := accessors[f].get(m); ok {
			out[f] = v
		}
	}
	return out
}

// MergeFrom copies onto m every field that is set on newer and differs from
// m's current value. Fields absent on newer are left untouched.
func (m *GrowthMedium) MergeFrom(newer *GrowthMedium) {
	if newer == nil {
		return
	}
	for _, f := range fieldOrder {
		accessors[f].merge(m, newer)
	}
}

// Matches reports whether candidate is consistent with m: every field set on
// candidate, and not listed in exclude, must equal m's value for that field.
//
// The relation is asymmetric on purpose. Fields absent on candidate never
// cause a mismatch, whatever m holds, so a sparse record matches any record
// that agrees on the fields it does carry.
func (m *GrowthMedium) Matches(candidate *GrowthMedium, exclude ...Field) bool {
	if candidate == nil {
		return true
	}
	for _, f := range fieldOrder {
		if isExcluded(f, exclude) {
			continue
		}
		if !accessors[f].agrees(m, candidate) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no field is set.
func (m *GrowthMedium) IsEmpty() bool {
	return len(m.ToMap()) == 0
}

func isExcluded(f Field, exclude []Field) bool {
	for _, e := range exclude {
		if e == f {
			return true
		}
	}
	return false
}

func typeError(f Field, value any) error {
	return fmt.Errorf("%s: %s got %T: %w", entityName, f, value, ErrFieldType)
}
