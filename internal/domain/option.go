package domain

// Option holds either a value (Some) or nothing (None). Lookups return it so
// that "not found" stays distinct from failure.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v in a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}
