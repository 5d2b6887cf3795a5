package share

import (
	"github.com/Qthai16/go-deque/common/pool"
)

// Arena hands out share storage from a pool and takes it back when a full
// share is consumed. Storage released by IntoInner is recycled for later
// values, with a new generation so stale shares are still detected.
//
// A nil *Arena is valid and allocates plain heap storage.
// Arenas are not safe for concurrent use.
type Arena[V any] struct {
	boxes *pool.TPool[box[V]]
}

func NewArena[V any]() *Arena[V] {
	return &Arena[V]{
		boxes: pool.NewTPool(pool.TPoolConfig[box[V]]{
			Cleanup: func(b *box[V]) {
				var zero V
				b.value = zero
				b.arena = nil
			},
		}),
	}
}

// New stores v in arena storage and returns the full share of it.
func (a *Arena[V]) New(v V) Full[V] {
	if a == nil {
		return New(v)
	}
	b := a.boxes.Get()
	b.value = v
	b.arena = a
	return Full[V]{b: b, gen: b.gen}
}

// Live returns the number of values allocated from a that have not been
// released yet.
func (a *Arena[V]) Live() int {
	if a == nil {
		return 0
	}
	return int(a.boxes.Borrowed())
}

func (a *Arena[V]) release(b *box[V]) {
	a.boxes.Put(&b)
}
