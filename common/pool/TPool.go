package pool

import (
	"sync"
)

type TPoolConfig[T any] struct {
	Generate func() *T // contructor, new(T) is used if nil
	Reset    func(*T)  // called after get T* from pool
	Cleanup  func(*T)  // called before put T* back, must drop references held by T
}

// generic sync.Pool wrapper that also counts borrowed objects
type TPool[T any] struct {
	pool     sync.Pool
	Conf     TPoolConfig[T]
	borrowed int64
}

func NewTPool[T any](conf TPoolConfig[T]) *TPool[T] {
	if conf.Generate == nil {
		conf.Generate = func() *T {
			return new(T)
		}
	}
	return &TPool[T]{
		pool: sync.Pool{
			New: func() interface{} {
				return conf.Generate()
			},
		},
		Conf: conf,
	}
}

func (p *TPool[T]) Get() *T {
	r := p.pool.Get().(*T)
	if p.Conf.Reset != nil {
		p.Conf.Reset(r)
	}
	p.borrowed++
	return r
}

// Put gives *r back to the pool and nils the caller's pointer, so the
// object cannot be used through it afterwards.
func (p *TPool[T]) Put(r **T) {
	if r == nil || *r == nil {
		return
	}
	if p.Conf.Cleanup != nil {
		p.Conf.Cleanup(*r)
	}
	p.pool.Put(*r)
	*r = nil
	p.borrowed--
}

// Borrowed returns the number of objects handed out by Get and not yet Put.
// Not synchronized: callers that share a pool across goroutines must guard it.
func (p *TPool[T]) Borrowed() int64 {
	return p.borrowed
}
