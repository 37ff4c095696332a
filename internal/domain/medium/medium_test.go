package medium

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/mirri-validator/internal/domain"
)

func fullMedium() *GrowthMedium {
	return &GrowthMedium{
		RecordID:                domain.Some[int64](1),
		RecordName:              domain.Some("Malt extract agar"),
		Acronym:                 domain.Some("MEA"),
		FullDescription:         domain.Some("Malt extract 20 g, agar 15 g, water 1 L"),
		Ingredients:             domain.Some("malt extract; agar"),
		Description:             domain.Some("general purpose fungal medium"),
		OtherName:               domain.Some("Malt agar"),
		PH:                      domain.Some(5.5),
		SterilizationConditions: domain.Some("121 C, 15 min"),
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  map[string]any
		wantErr error
		check   func(t *testing.T, m *GrowthMedium)
	}{
		{
			name:   "known fields are stored",
			values: map[string]any{"acronym": "MEA", "ph": 5.5, "record_id": 7},
			check: func(t *testing.T, m *GrowthMedium) {
				if got := m.Acronym.Or(""); got != "MEA" {
					t.Errorf("Acronym = %q, want %q", got, "MEA")
				}
				if got := m.PH.Or(0); got != 5.5 {
					t.Errorf("PH = %v, want 5.5", got)
				}
				if got := m.RecordID.Or(0); got != 7 {
					t.Errorf("RecordID = %d, want 7", got)
				}
			},
		},
		{
			name:   "nil values stay absent",
			values: map[string]any{"description": nil},
			check: func(t *testing.T, m *GrowthMedium) {
				if m.Description.IsSet() {
					t.Error("Description.IsSet() = true, want false")
				}
			},
		},
		{
			name:   "empty string is distinct from absent",
			values: map[string]any{"other_name": ""},
			check: func(t *testing.T, m *GrowthMedium) {
				v, ok := m.OtherName.Get()
				if !ok || v != "" {
					t.Errorf("OtherName = (%q, %v), want (\"\", true)", v, ok)
				}
			},
		},
		{
			name:    "unknown field is rejected",
			values:  map[string]any{"colour": "amber"},
			wantErr: domain.ErrUnknownField,
		},
		{
			name:    "unknown field with nil value is rejected",
			values:  map[string]any{"colour": nil},
			wantErr: domain.ErrUnknownField,
		},
		{
			name:    "wrong scalar type is rejected",
			values:  map[string]any{"ph": "acidic"},
			wantErr: ErrFieldType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := New(tt.values)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v, want nil", err)
			}
			tt.check(t, m)
		})
	}
}

func TestNew_UnknownFieldWinsOverTypeError(t *testing.T) {
	t.Parallel()

	values := map[string]any{
		"colour":      "red",
		"ph":          "seven",
		"record_id":   "one",
		"record_name": 42,
	}
	// Map iteration order varies between runs; repeat to cover many orders.
	for range 200 {
		_, err := New(values)
		if !errors.Is(err, domain.ErrUnknownField) {
			t.Fatalf("New() error = %v, want ErrUnknownField", err)
		}
		if errors.Is(err, ErrFieldType) {
			t.Fatalf("New() error = %v, must not report a type error", err)
		}
	}
}

func TestGetSet_UnknownField(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"colour", "", "PH", "record id", "_data"} {
		m := &GrowthMedium{}

		if _, _, err := m.Get(name); !errors.Is(err, domain.ErrUnknownField) {
			t.Errorf("Get(%q) error = %v, want ErrUnknownField", name, err)
		}
		if err := m.Set(name, "x"); !errors.Is(err, domain.ErrUnknownField) {
			t.Errorf("Set(%q) error = %v, want ErrUnknownField", name, err)
		}

		var uerr *domain.UnknownFieldError
		if err := m.Set(name, "x"); !errors.As(err, &uerr) || uerr.Name != name {
			t.Errorf("Set(%q) error = %v, want *UnknownFieldError naming %q", name, err, name)
		}
	}
}

func TestGetSet_RoundTrip(t *testing.T) {
	t.Parallel()

	m := &GrowthMedium{}

	v, ok, err := m.Get("acronym")
	if err != nil || ok || v != nil {
		t.Fatalf("Get(acronym) on empty = (%v, %v, %v), want (nil, false, nil)", v, ok, err)
	}

	if err := m.Set("acronym", "PDA"); err != nil {
		t.Fatalf("Set(acronym) error = %v", err)
	}
	if err := m.Set("acronym", "YPD"); err != nil {
		t.Fatalf("Set(acronym) overwrite error = %v", err)
	}

	v, ok, err = m.Get("acronym")
	if err != nil || !ok || v != "YPD" {
		t.Errorf("Get(acronym) = (%v, %v, %v), want (YPD, true, nil)", v, ok, err)
	}

	if err := m.Set("acronym", nil); err != nil {
		t.Fatalf("Set(acronym, nil) error = %v", err)
	}
	if m.Acronym.IsSet() {
		t.Error("Acronym still set after Set(nil)")
	}
}

func TestToMap(t *testing.T) {
	t.Parallel()

	m := &GrowthMedium{Acronym: domain.Some("MEA"), PH: domain.Some(6.0)}
	got := m.ToMap()

	if len(got) != 2 {
		t.Fatalf("len(ToMap()) = %d, want 2: %v", len(got), got)
	}
	if got[FieldAcronym] != "MEA" || got[FieldPH] != 6.0 {
		t.Errorf("ToMap() = %v", got)
	}

	got[FieldAcronym] = "changed"
	if m.Acronym.Or("") != "MEA" {
		t.Error("mutating the snapshot changed the entity")
	}
}

func TestMergeFrom(t *testing.T) {
	t.Parallel()

	t.Run("empty newer leaves receiver unchanged", func(t *testing.T) {
		t.Parallel()

		m := fullMedium()
		m.MergeFrom(&GrowthMedium{})

		if *m != *fullMedium() {
			t.Errorf("MergeFrom(empty) changed the receiver: %+v", m.ToMap())
		}
	})

	t.Run("only the set and differing field is copied", func(t *testing.T) {
		t.Parallel()

		m := fullMedium()
		m.MergeFrom(&GrowthMedium{PH: domain.Some(7.2)})

		if got := m.PH.Or(0); got != 7.2 {
			t.Errorf("PH = %v, want 7.2", got)
		}
		want := fullMedium()
		want.PH = domain.Some(7.2)
		if *m != *want {
			t.Errorf("other fields changed: got %v, want %v", m.ToMap(), want.ToMap())
		}
	})

	t.Run("fields absent on receiver are filled", func(t *testing.T) {
		t.Parallel()

		m := &GrowthMedium{Acronym: domain.Some("MEA")}
		m.MergeFrom(&GrowthMedium{Description: domain.Some("fungal medium")})

		if m.Description.Or("") != "fungal medium" || m.Acronym.Or("") != "MEA" {
			t.Errorf("MergeFrom() = %v", m.ToMap())
		}
	})

	t.Run("explicit empty value overwrites", func(t *testing.T) {
		t.Parallel()

		m := fullMedium()
		m.MergeFrom(&GrowthMedium{OtherName: domain.Some("")})

		v, ok := m.OtherName.Get()
		if !ok || v != "" {
			t.Errorf("OtherName = (%q, %v), want (\"\", true)", v, ok)
		}
	})

	t.Run("nil newer is ignored", func(t *testing.T) {
		t.Parallel()

		m := fullMedium()
		m.MergeFrom(nil)
		if *m != *fullMedium() {
			t.Error("MergeFrom(nil) changed the receiver")
		}
	})
}

func TestMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		receiver  *GrowthMedium
		candidate *GrowthMedium
		exclude   []Field
		want      bool
	}{
		{
			name:      "identical records match",
			receiver:  fullMedium(),
			candidate: fullMedium(),
			want:      true,
		},
		{
			name:      "empty candidate matches anything",
			receiver:  fullMedium(),
			candidate: &GrowthMedium{},
			want:      true,
		},
		{
			name:      "sparse candidate agreeing on its fields matches",
			receiver:  fullMedium(),
			candidate: &GrowthMedium{Acronym: domain.Some("MEA"), PH: domain.Some(5.5)},
			want:      true,
		},
		{
			name:      "differing value does not match",
			receiver:  fullMedium(),
			candidate: &GrowthMedium{PH: domain.Some(7.0)},
			want:      false,
		},
		{
			name:      "value set on candidate but absent on receiver does not match",
			receiver:  &GrowthMedium{Acronym: domain.Some("MEA")},
			candidate: &GrowthMedium{Acronym: domain.Some("MEA"), Description: domain.Some("x")},
			want:      false,
		},
		{
			name:      "excluded field is skipped",
			receiver:  fullMedium(),
			candidate: &GrowthMedium{RecordID: domain.Some[int64](99), Acronym: domain.Some("MEA")},
			exclude:   []Field{FieldRecordID},
			want:      true,
		},
		{
			name:      "relation is asymmetric",
			receiver:  &GrowthMedium{Acronym: domain.Some("MEA")},
			candidate: fullMedium(),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.receiver.Matches(tt.candidate, tt.exclude...); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFields(t *testing.T) {
	t.Parallel()

	fields := Fields()
	if len(fields) != 9 {
		t.Fatalf("len(Fields()) = %d, want 9", len(fields))
	}
	for _, f := range fields {
		if !f.IsValid() {
			t.Errorf("Field %q IsValid() = false", f)
		}
	}

	fields[0] = "mutated"
	if Fields()[0] != FieldRecordID {
		t.Error("Fields() returned the shared backing slice")
	}
}
