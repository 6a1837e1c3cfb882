package mutex

// Cell owns a value meant for single-goroutine use, where exclusivity holds
// by construction. Lock detects re-entrant use at runtime and panics,
// playing the role of a single-threaded borrow check.
//
// Cell is not safe for concurrent use.
type Cell[T any] struct {
	v      T
	locked bool
}

// NewCell returns a Cell owning v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Lock implements Mutex. It panics when called again from within f.
func (c *Cell[T]) Lock(f func(*T)) {
	if c.locked {
		panic("mutex: Cell locked recursively")
	}
	c.locked = true
	defer func() { c.locked = false }()
	f(&c.v)
}
