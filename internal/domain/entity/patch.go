package entity

import "encoding/json"

// Field is an optional value in a merge patch. A zero Field is "absent" and
// leaves the target untouched; a set Field overwrites it. For nullable
// columns the wrapped type is itself a pointer, so Set(nil) expresses an
// explicit null as opposed to an omitted key.
type Field[T any] struct {
	value T
	set   bool
}

// Set returns a Field carrying v.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Get returns the wrapped value and whether it was set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// IsSet reports whether the field is present in the patch.
func (f Field[T]) IsSet() bool {
	return f.set
}

// UnmarshalJSON marks the field as set for any present key, including an
// explicit null. json.Unmarshal never calls this for absent keys, which is
// exactly the merge-patch distinction we need.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	f.value = v
	f.set = true

	return nil
}

// MarshalJSON emits the wrapped value; absent fields marshal as null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set {
		return []byte("null"), nil
	}

	return json.Marshal(f.value)
}
