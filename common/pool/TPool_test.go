package pool_test

import (
	"testing"

	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/Qthai16/go-deque/common/pool"
)

func TestPackage(t *testing.T) {
	gc.TestingT(t)
}

type TPoolSuite struct{}

var _ = gc.Suite(&TPoolSuite{})

type buffer struct {
	data  []byte
	dirty bool
}

func (s *TPoolSuite) TestGetUsesGenerate(c *gc.C) {
	generated := 0
	p := pool.NewTPool(pool.TPoolConfig[buffer]{
		Generate: func() *buffer {
			generated++
			return &buffer{data: make([]byte, 0, 16)}
		},
	})
	b := p.Get()
	c.Assert(b, gc.NotNil)
	c.Check(cap(b.data), gc.Equals, 16)
	c.Check(generated >= 1, jc.IsTrue)
}

func (s *TPoolSuite) TestDefaultGenerate(c *gc.C) {
	p := pool.NewTPool(pool.TPoolConfig[buffer]{})
	b := p.Get()
	c.Assert(b, gc.NotNil)
	c.Check(b.data, gc.HasLen, 0)
}

func (s *TPoolSuite) TestPutClearsCallerPointer(c *gc.C) {
	cleaned := 0
	p := pool.NewTPool(pool.TPoolConfig[buffer]{
		Cleanup: func(b *buffer) {
			cleaned++
			b.data = b.data[:0]
			b.dirty = false
		},
	})
	b := p.Get()
	b.dirty = true
	p.Put(&b)
	c.Check(b, gc.IsNil)
	c.Check(cleaned, gc.Equals, 1)

	// A second Put through the now nil pointer is ignored.
	p.Put(&b)
	c.Check(cleaned, gc.Equals, 1)
	p.Put(nil)
}

func (s *TPoolSuite) TestResetCalledOnGet(c *gc.C) {
	p := pool.NewTPool(pool.TPoolConfig[buffer]{
		Reset: func(b *buffer) { b.dirty = true },
	})
	c.Check(p.Get().dirty, jc.IsTrue)
}

func (s *TPoolSuite) TestBorrowedCount(c *gc.C) {
	p := pool.NewTPool(pool.TPoolConfig[buffer]{})
	c.Check(p.Borrowed(), gc.Equals, int64(0))

	a, b := p.Get(), p.Get()
	c.Check(p.Borrowed(), gc.Equals, int64(2))

	p.Put(&a)
	c.Check(p.Borrowed(), gc.Equals, int64(1))
	p.Put(&b)
	c.Check(p.Borrowed(), gc.Equals, int64(0))
}
