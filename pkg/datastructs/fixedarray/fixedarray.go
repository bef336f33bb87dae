package fixedarray

import (
	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned by element access with an index outside [0, Len).
var ErrIndexOutOfRange = errors.New("fixedarray: index out of range")

// ErrInvalidLength is returned by New for a non-positive length.
var ErrInvalidLength = errors.New("fixedarray: length must be positive")

// ErrInvalidRange is returned by Slice for a malformed or out-of-bounds range.
var ErrInvalidRange = errors.New("fixedarray: invalid range")

// ErrLengthMismatch is returned by Zip when the two views differ in length.
var ErrLengthMismatch = errors.New("fixedarray: length mismatch")

// View is a non-owning window over a run of elements.
// Views are cheap to copy and never copy the elements they cover; mutations
// through a View are visible to the owning Array and to overlapping Views.
type View[T any] struct {
	data []T
}

// Array is a fixed-length array that owns its elements.
// The length is set at construction and never changes; every element access
// goes through the range-checked View methods.
type Array[T any] struct {
	View[T]
}

// New creates an Array of length n with every element set to fill.
func New[T any](n int, fill T) (*Array[T], error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "got %d", n)
	}

	data := make([]T, n)
	for i := range data {
		data[i] = fill
	}
	return &Array[T]{View[T]{data: data}}, nil
}

// Len returns the number of elements the view covers.
func (v View[T]) Len() int {
	return len(v.data)
}

// At returns the element at index i.
func (v View[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(v.data))
	}
	return v.data[i], nil
}

// MustAt returns the element at index i, panicking if i is out of range.
// Reserved for call sites where the index is known safe by construction.
func (v View[T]) MustAt(i int) T {
	e, err := v.At(i)
	if err != nil {
		panic(err)
	}
	return e
}

// Set stores e at index i.
func (v View[T]) Set(i int, e T) error {
	if i < 0 || i >= len(v.data) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(v.data))
	}
	v.data[i] = e
	return nil
}

// Slice returns a view of the half-open range [start, end) without copying.
// The range must be non-empty and within bounds.
func (v View[T]) Slice(start, end int) (View[T], error) {
	if start < 0 || end > len(v.data) || start >= end {
		return View[T]{}, errors.Wrapf(ErrInvalidRange, "[%d, %d) of length %d", start, end, len(v.data))
	}
	return View[T]{data: v.data[start:end]}, nil
}

// Enumerate calls fn for each element with its index, in order.
func (v View[T]) Enumerate(fn func(i int, e T)) {
	for i, e := range v.data {
		fn(i, e)
	}
}

// Zip calls fn for each pair of same-index elements of v and other.
func (v View[T]) Zip(other View[T], fn func(a, b T)) error {
	if len(v.data) != len(other.data) {
		return errors.Wrapf(ErrLengthMismatch, "%d vs %d", len(v.data), len(other.data))
	}
	for i, e := range v.data {
		fn(e, other.data[i])
	}
	return nil
}

// Zip2 calls fn for each pair of same-index elements of a and b.
// Unlike View.Zip it allows the two views to differ in element type.
func Zip2[T, U any](a View[T], b View[U], fn func(x T, y U)) error {
	if len(a.data) != len(b.data) {
		return errors.Wrapf(ErrLengthMismatch, "%d vs %d", len(a.data), len(b.data))
	}
	for i, e := range a.data {
		fn(e, b.data[i])
	}
	return nil
}
