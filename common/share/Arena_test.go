package share_test

import (
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/Qthai16/go-deque/common/share"
)

type ArenaSuite struct{}

var _ = gc.Suite(&ArenaSuite{})

func (s *ArenaSuite) TestLiveCount(c *gc.C) {
	arena := share.NewArena[string]()
	c.Check(arena.Live(), gc.Equals, 0)

	x := arena.New("x")
	y := arena.New("y")
	c.Check(arena.Live(), gc.Equals, 2)

	c.Check(share.IntoInner(x), gc.Equals, "x")
	c.Check(arena.Live(), gc.Equals, 1)

	a, b := share.Split(y)
	c.Check(arena.Live(), gc.Equals, 1)
	c.Check(share.IntoInner(share.Join(a, b)), gc.Equals, "y")
	c.Check(arena.Live(), gc.Equals, 0)
}

func (s *ArenaSuite) TestRecycledStorageRejectsStaleShares(c *gc.C) {
	arena := share.NewArena[int]()
	for i := 0; i < 16; i++ {
		a, b := share.Split(arena.New(i))
		c.Check(share.IntoInner(share.Join(a, b)), gc.Equals, i)
		c.Check(func() { a.Get() }, gc.PanicMatches, `.*share used after release`)

		// Storage handed out after the release must not be reachable
		// through the old half.
		fresh := arena.New(-1)
		c.Check(func() { share.Join(a, b) }, gc.PanicMatches, `.*share used after release`)
		c.Check(share.IntoInner(fresh), gc.Equals, -1)
	}
	c.Check(arena.Live(), gc.Equals, 0)
}

func (s *ArenaSuite) TestNilArenaUsesHeap(c *gc.C) {
	var arena *share.Arena[int]
	full := arena.New(3)
	c.Check(arena.Live(), gc.Equals, 0)
	c.Check(*full.Get(), gc.Equals, 3)
	c.Check(share.IntoInner(full), gc.Equals, 3)
}

func (s *ArenaSuite) TestJoinAcrossArenasPanics(c *gc.C) {
	a, _ := share.Split(share.NewArena[int]().New(1))
	b, _ := share.Split(share.NewArena[int]().New(1))
	c.Check(share.PtrEq(a, b), jc.IsFalse)
	c.Check(func() { share.Join(a, b) }, gc.PanicMatches, `.*shares do not denote the same storage`)
}
