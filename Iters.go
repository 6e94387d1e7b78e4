package bimap

import "golang.org/x/exp/constraints"

// LeftIter is a position on the Left side: either a stored pair or the
// EndLeft() marker. It's a weak reference; deleting the pair it points at
// makes it stale, and any use of a stale position panics instead of
// silently touching reused memory. Positions elsewhere in the Bimap stay
// valid across unrelated Insert and Del calls.
// Two positions compare equal with == exactly when they denote the same
// place in the same arena.
type LeftIter[L, R any, S constraints.Unsigned] struct {
	t   *store[L, R, S]
	i   S
	gen uint32
}

// RightIter is the Right side counterpart of LeftIter.
type RightIter[L, R any, S constraints.Unsigned] struct {
	t   *store[L, R, S]
	i   S
	gen uint32
}

func (it LeftIter[L, R, S]) check() {
	if it.t.slots[it.i].gen != it.gen {
		panic("bimap: stale position")
	}
}

// index validates it and returns the slot of a non end position.
func (it LeftIter[L, R, S]) index() S {
	it.check()
	if it.i == 0 {
		panic("bimap: end position")
	}
	return it.i
}

// End reports whether it is the past-the-end position.
func (it LeftIter[L, R, S]) End() bool {
	it.check()
	return it.i == 0
}

// Value returns the Left key of the referenced pair.
func (it LeftIter[L, R, S]) Value() L {
	return it.t.slots[it.index()].left
}

// Pair returns both values of the referenced pair.
func (it LeftIter[L, R, S]) Pair() (L, R) {
	c := &it.t.slots[it.index()]
	return c.left, c.right
}

// Next returns the position of the next greater Left key; after the
// greatest one it returns the end position. Next of end panics.
func (it LeftIter[L, R, S]) Next() LeftIter[L, R, S] {
	i := it.t.succ(sideL, it.index())
	return LeftIter[L, R, S]{it.t, i, it.t.slots[i].gen}
}

// Prev returns the position of the previous Left key. Prev of end is the
// greatest position; Prev of the first position panics.
func (it LeftIter[L, R, S]) Prev() LeftIter[L, R, S] {
	it.check()
	i := it.t.pred(sideL, it.i)
	if i == 0 {
		panic("bimap: decrement of begin")
	}
	return LeftIter[L, R, S]{it.t, i, it.t.slots[i].gen}
}

// Flip returns the Right position of the same pair in O(1), without
// comparing any keys: the pair's slot is a member of both trees, so the
// position merely changes which membership it walks. Flip of EndLeft() is
// EndRight().
func (it LeftIter[L, R, S]) Flip() RightIter[L, R, S] {
	it.check()
	return RightIter[L, R, S](it)
}

func (it RightIter[L, R, S]) check() {
	if it.t.slots[it.i].gen != it.gen {
		panic("bimap: stale position")
	}
}

func (it RightIter[L, R, S]) index() S {
	it.check()
	if it.i == 0 {
		panic("bimap: end position")
	}
	return it.i
}

func (it RightIter[L, R, S]) End() bool {
	it.check()
	return it.i == 0
}

// Value returns the Right key of the referenced pair.
func (it RightIter[L, R, S]) Value() R {
	return it.t.slots[it.index()].right
}

// Pair returns both values of the referenced pair, Right first.
func (it RightIter[L, R, S]) Pair() (R, L) {
	c := &it.t.slots[it.index()]
	return c.right, c.left
}

func (it RightIter[L, R, S]) Next() RightIter[L, R, S] {
	i := it.t.succ(sideR, it.index())
	return RightIter[L, R, S]{it.t, i, it.t.slots[i].gen}
}

func (it RightIter[L, R, S]) Prev() RightIter[L, R, S] {
	it.check()
	i := it.t.pred(sideR, it.i)
	if i == 0 {
		panic("bimap: decrement of begin")
	}
	return RightIter[L, R, S]{it.t, i, it.t.slots[i].gen}
}

// Flip returns the Left position of the same pair. Flip of EndRight() is
// EndLeft().
func (it RightIter[L, R, S]) Flip() LeftIter[L, R, S] {
	it.check()
	return LeftIter[L, R, S](it)
}
