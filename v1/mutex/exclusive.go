package mutex

// Exclusive adapts a value that is already under exclusive access to the
// Mutex interface. It borrows the caller's pointer and never copies the
// value. Lock is a direct pass-through with no synchronization, because
// uniqueness is established by the caller before the wrapper is built.
type Exclusive[T any] struct {
	v *T
}

// NewExclusive wraps v. The wrapper must not outlive the pointed-to value.
func NewExclusive[T any](v *T) *Exclusive[T] {
	return &Exclusive[T]{v: v}
}

// Lock implements Mutex by invoking f immediately on the wrapped value.
func (e *Exclusive[T]) Lock(f func(*T)) {
	f(e.v)
}
