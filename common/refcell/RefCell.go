// Package refcell provides a single-threaded borrow guard that lets a value
// be mutated through a shared pointer while refusing overlapping borrows.
//
// Borrows are scoped to a callback. Any number of shared borrows may be
// active at once; a mutable borrow must be the only borrow. A conflicting
// borrow panics instead of silently aliasing the value.
package refcell

import (
	"github.com/juju/errors"
)

const (
	// ErrAlreadyBorrowed is the cause of the panic raised when a mutable
	// borrow is requested while another borrow is active.
	ErrAlreadyBorrowed = errors.ConstError("already borrowed")

	// ErrAlreadyMutablyBorrowed is the cause of the panic raised when a
	// shared borrow is requested during a mutable borrow.
	ErrAlreadyMutablyBorrowed = errors.ConstError("already mutably borrowed")
)

const writing = -1

// RefCell holds a value of type T behind a runtime borrow flag.
// It is not safe for concurrent use.
type RefCell[T any] struct {
	value T
	// >0 shared borrows, writing while mutably borrowed.
	state int
}

func New[T any](v T) RefCell[T] {
	return RefCell[T]{value: v}
}

// Borrow calls fn with a pointer to the value for reading. fn must not
// modify the value through the pointer.
func (c *RefCell[T]) Borrow(fn func(*T)) {
	if c.state == writing {
		panic(errors.Annotatef(ErrAlreadyMutablyBorrowed, "refcell: shared borrow of %T", c.value))
	}
	c.state++
	defer func() { c.state-- }()
	fn(&c.value)
}

// BorrowMut calls fn with exclusive access to the value.
func (c *RefCell[T]) BorrowMut(fn func(*T)) {
	if c.state != 0 {
		panic(errors.Annotatef(ErrAlreadyBorrowed, "refcell: mutable borrow of %T", c.value))
	}
	c.state = writing
	defer func() { c.state = 0 }()
	fn(&c.value)
}

// Borrowed reports whether any borrow is currently active.
func (c *RefCell[T]) Borrowed() bool {
	return c.state != 0
}

// IntoInner moves the value out of the cell, leaving the zero value behind.
func (c *RefCell[T]) IntoInner() T {
	if c.state != 0 {
		panic(errors.Annotatef(ErrAlreadyBorrowed, "refcell: into inner of %T", c.value))
	}
	v := c.value
	var zero T
	c.value = zero
	return v
}
