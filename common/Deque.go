package common

import (
	"fmt"

	"github.com/Qthai16/go-deque/common/refcell"
	"github.com/Qthai16/go-deque/common/share"
	"github.com/Qthai16/go-deque/utils"
)

// Deque is a double-ended queue of items of type T.
//
// Internally a deque is either empty, holding no chain, or occupied, holding
// a chain of at least one elt. Each elt is jointly owned by the two links
// that reach it and is released only once both links have been rejoined.
//
// The zero value is an empty deque whose elts live on the plain heap.
// A Deque is not safe for concurrent use.
type Deque[T any] struct {
	chain *chain[T]
	arena *share.Arena[refcell.RefCell[elt[T]]]
}

// NewDeque returns an empty deque whose elt storage is recycled through a
// pool as items are popped.
func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{
		arena: share.NewArena[refcell.RefCell[elt[T]]](),
	}
}

func (d *Deque[T]) Len() int {
	if d.chain == nil {
		return 0
	}
	return d.chain.len()
}

func (d *Deque[T]) IsEmpty() bool {
	return d.chain == nil
}

// InsertHead inserts item at the head of deque d.
func (d *Deque[T]) InsertHead(item T) {
	if d.chain == nil {
		d.chain = newChain(d.arena, item)
		utils.LogDebug("[deque] empty -> occupied")
		return
	}
	d.chain.insertHead(item)
}

// InsertTail inserts item at the tail of deque d.
func (d *Deque[T]) InsertTail(item T) {
	if d.chain == nil {
		d.chain = newChain(d.arena, item)
		utils.LogDebug("[deque] empty -> occupied")
		return
	}
	d.chain.insertTail(item)
}

// PopHead removes the item at the head of deque d and returns it. It
// returns false if d is empty.
func (d *Deque[T]) PopHead() (T, bool) {
	if d.chain == nil {
		var zero T
		return zero, false
	}
	if item, ok := d.chain.popHead(); ok {
		return item, true
	}
	return d.popLast(), true
}

// PopTail removes the item at the tail of deque d and returns it. It
// returns false if d is empty.
func (d *Deque[T]) PopTail() (T, bool) {
	if d.chain == nil {
		var zero T
		return zero, false
	}
	if item, ok := d.chain.popTail(); ok {
		return item, true
	}
	return d.popLast(), true
}

// Clear releases every elt held by deque d, leaving it empty.
func (d *Deque[T]) Clear() {
	for d.chain != nil {
		d.PopHead()
	}
}

// popLast takes the singleton chain out of d and consumes it.
func (d *Deque[T]) popLast() T {
	c := d.chain
	d.chain = nil
	utils.LogDebug("[deque] occupied -> empty")
	return c.intoLastItem()
}

// String renders the whole structure, including the raw addresses of the
// links between elts.
func (d *Deque[T]) String() string {
	if d.chain == nil {
		return "Deque(<empty>)"
	}
	return fmt.Sprintf("Deque(%s)", d.chain)
}

func (d *Deque[T]) GoString() string {
	return d.String()
}

var (
	_ fmt.Stringer   = (*Deque[int])(nil)
	_ fmt.GoStringer = (*Deque[int])(nil)
)
