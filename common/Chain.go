package common

import (
	"fmt"
	"strings"

	"github.com/juju/errors"

	"github.com/Qthai16/go-deque/common/refcell"
	"github.com/Qthai16/go-deque/common/share"
)

const (
	// ErrInvariantViolation is the cause of panics raised when the chain
	// finds itself in a state its invariants rule out.
	ErrInvariantViolation = errors.ConstError("deque invariant violated")

	// ErrContractMisuse is the cause of panics raised when an internal
	// operation is called outside of its contract.
	ErrContractMisuse = errors.ConstError("deque contract misuse")
)

// elt is one node of a chain. prev points toward the tail and next toward
// the head, so the head has no next and the tail has no prev. Every elt is
// held by exactly two half links: head or the next-node's prev, and tail or
// the prev-node's next.
type elt[T any] struct {
	item T
	prev share.Half[refcell.RefCell[elt[T]]]
	next share.Half[refcell.RefCell[elt[T]]]
}

// chain is an always non-empty doubly linked run of elts. An empty deque
// has no chain at all.
//
// head and tail are moved out with Take while a method relinks them. Outside
// of a method call both are always present.
type chain[T any] struct {
	head  share.Half[refcell.RefCell[elt[T]]]
	tail  share.Half[refcell.RefCell[elt[T]]]
	arena *share.Arena[refcell.RefCell[elt[T]]]
	size  int
}

func newChain[T any](arena *share.Arena[refcell.RefCell[elt[T]]], item T) *chain[T] {
	head, tail := share.Split(arena.New(refcell.New(elt[T]{item: item})))
	return &chain[T]{
		head:  head,
		tail:  tail,
		arena: arena,
		size:  1,
	}
}

func (c *chain[T]) len() int {
	return c.size
}

// insertHead links a new elt in front of the current head.
//
//	before: c.head -> H, H.next = none
//	after:  c.head -> N, N.prev -> H, H.next -> N
func (c *chain[T]) insertHead(item T) {
	old := c.takeHead()
	oldCell := old.Get()
	toHead, toOld := share.Split(c.arena.New(refcell.New(elt[T]{item: item, prev: old})))
	oldCell.BorrowMut(func(e *elt[T]) {
		if !e.next.IsZero() {
			panic(errors.Annotatef(ErrInvariantViolation, "insert head: head %s already has a next link %s", toOld, e.next))
		}
		e.next = toOld
	})
	c.head = toHead
	c.size++
}

// insertTail is the mirror of insertHead.
func (c *chain[T]) insertTail(item T) {
	old := c.takeTail()
	oldCell := old.Get()
	toTail, toOld := share.Split(c.arena.New(refcell.New(elt[T]{item: item, next: old})))
	oldCell.BorrowMut(func(e *elt[T]) {
		if !e.prev.IsZero() {
			panic(errors.Annotatef(ErrInvariantViolation, "insert tail: tail %s already has a prev link %s", toOld, e.prev))
		}
		e.prev = toOld
	})
	c.tail = toTail
	c.size++
}

// popHead unlinks and returns the head item. It returns false, leaving the
// chain untouched, when the head is the only elt: a chain cannot become
// empty, the owner has to consume it with intoLastItem instead.
func (c *chain[T]) popHead() (T, bool) {
	head := c.takeHead()
	var prev share.Half[refcell.RefCell[elt[T]]]
	head.Get().BorrowMut(func(e *elt[T]) {
		prev = e.prev.Take()
	})
	if prev.IsZero() {
		c.head = head
		var zero T
		return zero, false
	}

	var back share.Half[refcell.RefCell[elt[T]]]
	prev.Get().BorrowMut(func(e *elt[T]) {
		back = e.next.Take()
	})
	if back.IsZero() {
		panic(errors.Annotatef(ErrInvariantViolation, "pop head: %s has no next link back to head %s", prev, head))
	}
	c.head = prev
	c.size--
	return c.release(back, head, "pop head"), true
}

// popTail is the mirror of popHead.
func (c *chain[T]) popTail() (T, bool) {
	tail := c.takeTail()
	var next share.Half[refcell.RefCell[elt[T]]]
	tail.Get().BorrowMut(func(e *elt[T]) {
		next = e.next.Take()
	})
	if next.IsZero() {
		c.tail = tail
		var zero T
		return zero, false
	}

	var back share.Half[refcell.RefCell[elt[T]]]
	next.Get().BorrowMut(func(e *elt[T]) {
		back = e.prev.Take()
	})
	if back.IsZero() {
		panic(errors.Annotatef(ErrInvariantViolation, "pop tail: %s has no prev link back to tail %s", next, tail))
	}
	c.tail = next
	c.size--
	return c.release(back, tail, "pop tail"), true
}

// intoLastItem consumes a singleton chain and returns its item. The chain
// must not be used afterwards.
func (c *chain[T]) intoLastItem() T {
	if c.size != 1 {
		panic(errors.Annotatef(ErrContractMisuse, "into last item: chain holds %d items", c.size))
	}
	head, tail := c.takeHead(), c.takeTail()
	if !share.PtrEq(head, tail) {
		panic(errors.Annotatef(ErrInvariantViolation, "into last item: head %s and tail %s differ", head, tail))
	}
	head.Get().Borrow(func(e *elt[T]) {
		if !e.prev.IsZero() || !e.next.IsZero() {
			panic(errors.Annotatef(ErrInvariantViolation, "into last item: last elt still linked (prev %s, next %s)", e.prev, e.next))
		}
	})
	c.size = 0
	return c.release(head, tail, "into last item")
}

// release joins the two halves of an unlinked elt and frees it.
func (c *chain[T]) release(a, b share.Half[refcell.RefCell[elt[T]]], op string) T {
	if !share.PtrEq(a, b) {
		panic(errors.Annotatef(ErrInvariantViolation, "%s: links %s and %s denote different elts", op, a, b))
	}
	var full share.Full[refcell.RefCell[elt[T]]] = share.Join(a, b)
	cell := share.IntoInner(full)
	return cell.IntoInner().item
}

func (c *chain[T]) takeHead() share.Half[refcell.RefCell[elt[T]]] {
	head := c.head.Take()
	if head.IsZero() {
		panic(errors.Annotatef(ErrInvariantViolation, "chain head is absent"))
	}
	return head
}

func (c *chain[T]) takeTail() share.Half[refcell.RefCell[elt[T]]] {
	tail := c.tail.Take()
	if tail.IsZero() {
		panic(errors.Annotatef(ErrInvariantViolation, "chain tail is absent"))
	}
	return tail
}

// verify walks the chain from head to tail along prev links and back along
// next links, checking both walks visit the same elts and that every elt
// is held by exactly two links. The link copies it makes are only read.
func (c *chain[T]) verify() error {
	if c.head.IsZero() || c.tail.IsZero() {
		return errors.Annotatef(ErrInvariantViolation, "chain head %s or tail %s is absent", c.head, c.tail)
	}
	weights := make(map[*refcell.RefCell[elt[T]]]int)
	weights[c.head.Get()]++
	weights[c.tail.Get()]++

	var forward []*refcell.RefCell[elt[T]]
	for link := c.head; !link.IsZero(); {
		cell := link.Get()
		if len(forward) > c.size {
			return errors.Annotatef(ErrInvariantViolation, "walk from head exceeds %d elts", c.size)
		}
		forward = append(forward, cell)
		var next share.Half[refcell.RefCell[elt[T]]]
		cell.Borrow(func(e *elt[T]) {
			if !e.prev.IsZero() {
				weights[e.prev.Get()]++
			}
			if !e.next.IsZero() {
				weights[e.next.Get()]++
			}
			next = e.prev
		})
		link = next
	}
	if len(forward) != c.size {
		return errors.Annotatef(ErrInvariantViolation, "walk from head found %d elts, want %d", len(forward), c.size)
	}
	if forward[len(forward)-1] != c.tail.Get() {
		return errors.Annotatef(ErrInvariantViolation, "walk from head ends at %p, tail is %s", forward[len(forward)-1], c.tail)
	}

	i := len(forward) - 1
	for link := c.tail; !link.IsZero(); i-- {
		cell := link.Get()
		if i < 0 || forward[i] != cell {
			return errors.Annotatef(ErrInvariantViolation, "walk from tail disagrees with walk from head at elt %p", cell)
		}
		var next share.Half[refcell.RefCell[elt[T]]]
		cell.Borrow(func(e *elt[T]) { next = e.next })
		link = next
	}
	if i != -1 {
		return errors.Annotatef(ErrInvariantViolation, "walk from tail stopped %d elts short of head", i+1)
	}

	for cell, weight := range weights {
		if weight != 2 {
			return errors.Annotatef(ErrInvariantViolation, "elt %p held by %d links", cell, weight)
		}
	}
	if len(weights) != c.size {
		return errors.Annotatef(ErrInvariantViolation, "%d elts reachable, want %d", len(weights), c.size)
	}
	return nil
}

func (c *chain[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Chain{head: %s, tail: %s, elts: [", c.head, c.tail)
	link := c.head
	for i := 0; !link.IsZero() && i < c.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		var next share.Half[refcell.RefCell[elt[T]]]
		link.Get().Borrow(func(e *elt[T]) {
			fmt.Fprintf(&b, "Elt@%s{item: %v, prev: %s, next: %s}", link, e.item, e.prev, e.next)
			next = e.prev
		})
		link = next
	}
	b.WriteString("]}")
	return b.String()
}
