package common

// Verify checks the structural invariants of d's chain.
func Verify[T any](d *Deque[T]) error {
	if d.chain == nil {
		return nil
	}
	return d.chain.verify()
}

// Live returns the number of elts allocated for d and not yet released.
func Live[T any](d *Deque[T]) int {
	return d.arena.Live()
}

// IntoLastItem consumes d's chain whatever its length.
func IntoLastItem[T any](d *Deque[T]) T {
	return d.chain.intoLastItem()
}

// DropBackLink removes the next link held by the elt after the head,
// leaving the head reachable from one side only.
func DropBackLink[T any](d *Deque[T]) {
	d.chain.head.Get().Borrow(func(e *elt[T]) {
		e.prev.Get().BorrowMut(func(p *elt[T]) {
			p.next.Take()
		})
	})
}
