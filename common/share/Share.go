// Package share implements fractional ownership of a heap value.
//
// A value starts out held by a single Full share. A Full share can be split
// into two Half shares of the same storage, and two Half shares of the same
// storage can be joined back into a Full share. Only a Full share can be
// consumed by IntoInner, which is the one place storage is released. The
// magnitude of a share is carried by its type, so splitting a half or
// consuming a half does not compile.
//
// Go cannot stop a share from being copied. Shares are meant to be moved:
// hand them to Split, Join or IntoInner, or move them out of a field with
// Take, and do not use the old copy again. Storage carries a generation
// that is bumped on release, so a copy used after its storage was released
// panics instead of reaching a recycled value.
package share

import (
	"fmt"

	"github.com/juju/errors"
)

const (
	// ErrForeignShare is the cause of the panic raised when two halves of
	// different storage are joined.
	ErrForeignShare = errors.ConstError("shares do not denote the same storage")

	// ErrStaleShare is the cause of the panic raised when a share is used
	// after its storage has been released.
	ErrStaleShare = errors.ConstError("share used after release")

	// ErrZeroShare is the cause of the panic raised when an absent share is
	// split, joined, consumed or dereferenced.
	ErrZeroShare = errors.ConstError("share is absent")
)

type box[V any] struct {
	value V
	gen   uint64
	arena *Arena[V]
}

// Full is exclusive ownership of a value.
type Full[V any] struct {
	b   *box[V]
	gen uint64
}

// Half is one of the two halves of a Full share. The zero Half is the
// absent share.
type Half[V any] struct {
	b   *box[V]
	gen uint64
}

// New allocates storage for v on the heap and returns the full share of it.
func New[V any](v V) Full[V] {
	return Full[V]{b: &box[V]{value: v}}
}

// Split turns f into two halves of the same storage.
func Split[V any](f Full[V]) (Half[V], Half[V]) {
	f.check("split")
	return Half[V]{b: f.b, gen: f.gen}, Half[V]{b: f.b, gen: f.gen}
}

// Join reunites two halves of the same storage into a full share. Halves
// of different storage are a broken invariant and Join panics.
func Join[V any](a, b Half[V]) Full[V] {
	a.check("join")
	b.check("join")
	if !PtrEq(a, b) {
		panic(errors.Annotatef(ErrForeignShare, "share: join %p and %p", a.b, b.b))
	}
	return Full[V]{b: a.b, gen: a.gen}
}

// IntoInner consumes f, releases its storage and returns the value.
func IntoInner[V any](f Full[V]) V {
	f.check("into inner")
	b := f.b
	v := b.value
	var zero V
	b.value = zero
	b.gen++
	if b.arena != nil {
		b.arena.release(b)
	}
	return v
}

// PtrEq reports whether a and b denote the same storage.
func PtrEq[V any](a, b Half[V]) bool {
	return a.b == b.b
}

// Get returns a pointer to the shared value. Mutating through it is only
// sound when the value guards itself, e.g. a refcell.RefCell.
func (f Full[V]) Get() *V {
	f.check("get")
	return &f.b.value
}

func (f Full[V]) check(op string) {
	checkBox(f.b, f.gen, op)
}

// Get returns a pointer to the shared value, see Full.Get.
func (h Half[V]) Get() *V {
	h.check("get")
	return &h.b.value
}

// IsZero reports whether h is the absent share.
func (h Half[V]) IsZero() bool {
	return h.b == nil
}

// Take moves the share out of *h and leaves the absent share in its place.
func (h *Half[V]) Take() Half[V] {
	t := *h
	*h = Half[V]{}
	return t
}

// String renders the raw address of the storage, for diagnostics.
func (h Half[V]) String() string {
	if h.b == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%p", h.b)
}

func (h Half[V]) check(op string) {
	checkBox(h.b, h.gen, op)
}

func checkBox[V any](b *box[V], gen uint64, op string) {
	if b == nil {
		panic(errors.Annotatef(ErrZeroShare, "share: %s", op))
	}
	if b.gen != gen {
		panic(errors.Annotatef(ErrStaleShare, "share: %s %p (generation %d, storage at %d)", op, b, gen, b.gen))
	}
}
