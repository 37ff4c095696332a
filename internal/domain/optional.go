package domain

// Optional holds a value that may be absent. The zero value is absent, which
// keeps "not provided" distinct from a provided zero value such as "".
type Optional[T comparable] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an absent Optional.
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Or returns the held value, or fallback when absent.
func (o Optional[T]) Or(fallback T) T {
	if !o.set {
		return fallback
	}
	return o.value
}

// Set stores v, overwriting any previous value.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Clear makes the Optional absent.
func (o *Optional[T]) Clear() {
	var zero T
	o.value = zero
	o.set = false
}

// Equal reports whether both are absent, or both hold equal values.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.set != other.set {
		return false
	}
	return !o.set || o.value == other.value
}
