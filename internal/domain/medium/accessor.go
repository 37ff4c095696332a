package medium

import "github.com/jsamuelsen11/mirri-validator/internal/domain"

// accessor binds a Field name to its typed struct member.
type accessor struct {
	get    func(m *GrowthMedium) (any, bool)
	set    func(m *GrowthMedium, value any) error
	merge  func(dst, src *GrowthMedium)
	agrees func(recv, cand *GrowthMedium) bool
}

var accessors = map[Field]accessor{
	FieldRecordID:                bind(FieldRecordID, func(m *GrowthMedium) *domain.Optional[int64] { return &m.RecordID }, asInt64),
	FieldRecordName:              bind(FieldRecordName, func(m *GrowthMedium) *domain.Optional[string] { return &m.RecordName }, asString),
	FieldAcronym:                 bind(FieldAcronym, func(m *GrowthMedium) *domain.Optional[string] { return &m.Acronym }, asString),
	FieldFullDescription:         bind(FieldFullDescription, func(m *GrowthMedium) *domain.Optional[string] { return &m.FullDescription }, asString),
	FieldIngredients:             bind(FieldIngredients, func(m *GrowthMedium) *domain.Optional[string] { return &m.Ingredients }, asString),
	FieldDescription:             bind(FieldDescription, func(m *GrowthMedium) *domain.Optional[string] { return &m.Description }, asString),
	FieldOtherName:               bind(FieldOtherName, func(m *GrowthMedium) *domain.Optional[string] { return &m.OtherName }, asString),
	FieldPH:                      bind(FieldPH, func(m *GrowthMedium) *domain.Optional[float64] { return &m.PH }, asFloat64),
	FieldSterilizationConditions: bind(FieldSterilizationConditions, func(m *GrowthMedium) *domain.Optional[string] { return &m.SterilizationConditions }, asString),
}

func bind[T comparable](f Field, sel func(*GrowthMedium) *domain.Optional[T], conv func(any) (T, bool)) accessor {
	return accessor{
		get: func(m *GrowthMedium) (any, bool) {
			v, ok := sel(m).Get()
			if !ok {
				return nil, false
			}
			return v, true
		},
		set: func(m *GrowthMedium, value any) error {
			if value == nil {
				sel(m).Clear()
				return nil
			}
			v, ok := conv(value)
			if !ok {
				return typeError(f, value)
			}
			sel(m).Set(v)
			return nil
		},
		merge: func(dst, src *GrowthMedium) {
			nv, ok := sel(src).Get()
			if !ok {
				return
			}
			if cur, set := sel(dst).Get(); set && cur == nv {
				return
			}
			sel(dst).Set(nv)
		},
		agrees: func(recv, cand *GrowthMedium) bool {
			cv, ok := sel(cand).Get()
			if !ok {
				return true
			}
			rv, set := sel(recv).Get()
			return set && rv == cv
		},
	}
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
