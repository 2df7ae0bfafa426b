package models

import (
	"bytes"
	"encoding/json"
)

// Opt is a tri-state JSON field for partial updates: absent from the payload,
// explicit null, or a value. Set reports presence, Valid reports non-null.
type Opt[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// OptOf builds a present, non-null Opt. Mostly useful in tests.
func OptOf[T any](v T) Opt[T] {
	return Opt[T]{Set: true, Valid: true, Value: v}
}

// OptNull builds a present-but-null Opt.
func OptNull[T any]() Opt[T] {
	return Opt[T]{Set: true}
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.Value = zero
		o.Valid = false
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Ptr returns the value as a pointer, nil when the field was null.
func (o Opt[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
