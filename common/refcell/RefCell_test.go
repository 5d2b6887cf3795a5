package refcell_test

import (
	"testing"

	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/Qthai16/go-deque/common/refcell"
)

func TestPackage(t *testing.T) {
	gc.TestingT(t)
}

type RefCellSuite struct{}

var _ = gc.Suite(&RefCellSuite{})

type pair struct {
	a, b int
}

func (s *RefCellSuite) TestBorrowMutUpdatesValue(c *gc.C) {
	cell := refcell.New(pair{a: 1})
	cell.BorrowMut(func(p *pair) { p.b = 2 })

	var got pair
	cell.Borrow(func(p *pair) { got = *p })
	c.Check(got, gc.Equals, pair{a: 1, b: 2})
	c.Check(cell.Borrowed(), jc.IsFalse)
}

func (s *RefCellSuite) TestNestedSharedBorrows(c *gc.C) {
	cell := refcell.New(pair{a: 3})
	sum := 0
	cell.Borrow(func(outer *pair) {
		c.Check(cell.Borrowed(), jc.IsTrue)
		cell.Borrow(func(inner *pair) {
			sum = outer.a + inner.a
		})
	})
	c.Check(sum, gc.Equals, 6)
	c.Check(cell.Borrowed(), jc.IsFalse)
}

func (s *RefCellSuite) TestMutableDuringSharedPanics(c *gc.C) {
	cell := refcell.New(pair{})
	c.Check(func() {
		cell.Borrow(func(*pair) {
			cell.BorrowMut(func(*pair) {})
		})
	}, gc.PanicMatches, `refcell: mutable borrow of refcell_test.pair: already borrowed`)
	// The outer borrow is released by its deferred cleanup.
	c.Check(cell.Borrowed(), jc.IsFalse)
}

func (s *RefCellSuite) TestSharedDuringMutablePanics(c *gc.C) {
	cell := refcell.New(pair{})
	c.Check(func() {
		cell.BorrowMut(func(*pair) {
			cell.Borrow(func(*pair) {})
		})
	}, gc.PanicMatches, `refcell: shared borrow of .*: already mutably borrowed`)
	c.Check(cell.Borrowed(), jc.IsFalse)
}

func (s *RefCellSuite) TestDoubleMutablePanics(c *gc.C) {
	cell := refcell.New(pair{})
	c.Check(func() {
		cell.BorrowMut(func(*pair) {
			cell.BorrowMut(func(*pair) {})
		})
	}, gc.PanicMatches, `.*already borrowed`)
}

func (s *RefCellSuite) TestIntoInner(c *gc.C) {
	cell := refcell.New(pair{a: 7, b: 8})
	c.Check(cell.IntoInner(), gc.Equals, pair{a: 7, b: 8})
	c.Check(cell.IntoInner(), gc.Equals, pair{})
}

func (s *RefCellSuite) TestIntoInnerWhileBorrowedPanics(c *gc.C) {
	cell := refcell.New(pair{a: 1})
	c.Check(func() {
		cell.Borrow(func(*pair) { cell.IntoInner() })
	}, gc.PanicMatches, `refcell: into inner of .*: already borrowed`)
}
