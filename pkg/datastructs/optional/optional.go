package optional

// Value is a container holding zero or one instance of T.
// The zero Value is absent and ready to use.
//
// A Value never fabricates a T on behalf of the caller: when absent, the
// storage holds the zero value purely as released storage, and no accessor
// exposes it except through an explicit fallback. Clearing a present Value
// zeroes the storage so any memory the old value referenced is released.
type Value[T any] struct {
	value   T
	present bool
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Some returns a Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, present: true}
}

// HasValue reports whether a value is present.
func (o *Value[T]) HasValue() bool {
	return o.present
}

// Get returns the held value and true, or the zero value and false if absent.
func (o *Value[T]) Get() (T, bool) {
	return o.value, o.present
}

// Set stores v, displacing any held value.
func (o *Value[T]) Set(v T) {
	o.value = v
	o.present = true
}

// Replace stores v and returns the value it displaced.
// The returned flag reports whether a value was displaced; each held value
// is handed back this way exactly once.
func (o *Value[T]) Replace(v T) (T, bool) {
	old, had := o.value, o.present
	o.value = v
	o.present = true
	return old, had
}

// Assign copies other's state into o, displacing any held value.
// Assigning a Value to itself is a no-op.
func (o *Value[T]) Assign(other Value[T]) {
	if !other.present {
		o.Clear()
		return
	}
	o.value = other.value
	o.present = true
}

// Clear drops any held value and zeroes the storage.
func (o *Value[T]) Clear() {
	var zero T
	o.value = zero
	o.present = false
}

// Take removes and returns the held value, leaving o absent.
// Returns the zero value and false if o was already absent.
func (o *Value[T]) Take() (T, bool) {
	if !o.present {
		var zero T
		return zero, false
	}
	v := o.value
	o.Clear()
	return v, true
}

// ValueOr returns the held value if present, otherwise fallback.
// The Value is never mutated.
func (o *Value[T]) ValueOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// ValueOrAssign returns the held value if present. If absent, it first
// stores fallback as the new held value and returns that.
// Unlike ValueOr, a miss mutates the Value: a subsequent HasValue reports
// true and accessors return the fallback that was stored.
func (o *Value[T]) ValueOrAssign(fallback T) T {
	if !o.present {
		o.Set(fallback)
	}
	return o.value
}
