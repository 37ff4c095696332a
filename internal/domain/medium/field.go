package medium

import (
	"slices"

	"github.com/jsamuelsen11/mirri-validator/internal/domain"
)

// Field names one attribute of a GrowthMedium.
type Field string

const (
	FieldRecordID                Field = "record_id"
	FieldRecordName              Field = "record_name"
	FieldAcronym                 Field = "acronym"
	FieldFullDescription         Field = "full_description"
	FieldIngredients             Field = "ingredients"
	FieldDescription             Field = "description"
	FieldOtherName               Field = "other_name"
	FieldPH                      Field = "ph"
	FieldSterilizationConditions Field = "sterilization_conditions"
)

// fieldOrder is the fixed field set in its canonical order.
var fieldOrder = []Field{
	FieldRecordID,
	FieldRecordName,
	FieldAcronym,
	FieldFullDescription,
	FieldIngredients,
	FieldDescription,
	FieldOtherName,
	FieldPH,
	FieldSterilizationConditions,
}

// Fields returns the fixed field set in canonical order.
func Fields() []Field {
	return slices.Clone(fieldOrder)
}

// IsValid returns true if the field is part of the fixed field set.
func (f Field) IsValid() bool {
	_, ok := accessors[f]
	return ok
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return string(f)
}

// ParseField converts a name to a Field. Names outside the fixed field set
// return an error wrapping domain.ErrUnknownField.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if !f.IsValid() {
		return "", &domain.UnknownFieldError{Entity: entityName, Name: name}
	}
	return f, nil
}
