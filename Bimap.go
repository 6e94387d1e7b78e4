package bimap

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// Bimap is a bijective mapping between a Left and a Right key domain.
// Both sides are unique, kept in ascending order under their own
// comparator, and searchable independently; every stored pair occupies a
// single arena slot that is a live member of both trees at once, so
// converting a Left position to the Right position of the same pair
// (Flip) costs O(1) and no key comparison.
// L and R are the two key types, S is the type used for slot indexes and
// the pair count; the Bimap can hold at most ^S(0)-1 pairs, so S should be
// a wide upperbound for the expected size.
// The trees perform no rebalancing: operations are O(log n) for random
// insertion orders but degrade to O(n) on adversarial ones. This is a
// deliberate property of the design, not an oversight.
// Receivers that have a bool as a second return value indicate whether
// the first return value is defined, as in Trees of this module family.
// A Bimap isn't safe for concurrent use.
type Bimap[L, R any, S constraints.Unsigned] struct {
	s    *store[L, R, S]
	size S
	// CmpL orders Left keys: returns a negative number if first<second, 0 if
	// first==second, a positive number if first>second. See cmp.Compare for
	// an example.
	CmpL func(L, L) int
	// CmpR orders Right keys the same way.
	CmpR func(R, R) int
}

// New returns an empty Bimap ordering both sides naturally. hint
// preallocates space for that many pairs.
func New[L, R cmp.Ordered, S constraints.Unsigned](hint S) *Bimap[L, R, S] {
	return NewC[L, R, S](hint, cmp.Compare[L], cmp.Compare[R])
}

// NewC is the version of New for arbitrary key types with user supplied
// comparators.
func NewC[L, R any, S constraints.Unsigned](hint S, cmpL func(L, L) int, cmpR func(R, R) int) *Bimap[L, R, S] {
	return &Bimap[L, R, S]{s: newStore[L, R, S](hint), CmpL: cmpL, CmpR: cmpR}
}

func (u *Bimap[L, R, S]) cmpAtL(key L) func(S) int {
	return func(i S) int {
		return u.CmpL(key, u.s.slots[i].left)
	}
}

func (u *Bimap[L, R, S]) cmpAtR(key R) func(S) int {
	return func(i S) int {
		return u.CmpR(key, u.s.slots[i].right)
	}
}

func (u *Bimap[L, R, S]) leftAt(i S) LeftIter[L, R, S] {
	return LeftIter[L, R, S]{u.s, i, u.s.slots[i].gen}
}

func (u *Bimap[L, R, S]) rightAt(i S) RightIter[L, R, S] {
	return RightIter[L, R, S]{u.s, i, u.s.slots[i].gen}
}

// Insert the pair (left, right), returning its Left position. If either
// key is already present nothing is inserted and EndLeft() is returned.
// The pair registers with the Left tree first; a Right side collision
// rolls that registration back, so a failed Insert leaves the Bimap
// exactly as it was.
func (u *Bimap[L, R, S]) Insert(left L, right R) LeftIter[L, R, S] {
	ni := u.s.alloc(left, right)
	if u.s.insert(sideL, ni, u.cmpAtL(left)) != ni {
		u.s.dealloc(ni)
		return u.EndLeft()
	}
	if u.s.insert(sideR, ni, u.cmpAtR(right)) != ni {
		u.s.unlink(sideL, ni)
		u.s.dealloc(ni)
		return u.EndLeft()
	}
	u.size++
	return u.leftAt(ni)
}

func (u *Bimap[L, R, S]) delAt(i S) {
	u.s.unlink(sideL, i)
	u.s.unlink(sideR, i)
	u.s.dealloc(i)
	u.size--
}

// DelLeftAt removes the pair at it from both sides and returns the
// position of the next greater Left key, captured before the removal.
// it must be a valid non end position of this Bimap.
func (u *Bimap[L, R, S]) DelLeftAt(it LeftIter[L, R, S]) LeftIter[L, R, S] {
	u.own(it.t)
	i := it.index()
	next := u.s.succ(sideL, i)
	u.delAt(i)
	return u.leftAt(next)
}

// DelRightAt is DelLeftAt on the Right side.
func (u *Bimap[L, R, S]) DelRightAt(it RightIter[L, R, S]) RightIter[L, R, S] {
	u.own(it.t)
	i := it.index()
	next := u.s.succ(sideR, i)
	u.delAt(i)
	return u.rightAt(next)
}

// DelLeft removes the pair keyed by left, if any. Returning true if a pair
// was removed, false otherwise.
func (u *Bimap[L, R, S]) DelLeft(left L) bool {
	i := u.s.search(sideL, u.cmpAtL(left))
	if i == 0 {
		return false
	}
	u.delAt(i)
	return true
}

func (u *Bimap[L, R, S]) DelRight(right R) bool {
	i := u.s.search(sideR, u.cmpAtR(right))
	if i == 0 {
		return false
	}
	u.delAt(i)
	return true
}

// DelLeftRange removes [first, last) in Left order and returns last.
func (u *Bimap[L, R, S]) DelLeftRange(first, last LeftIter[L, R, S]) LeftIter[L, R, S] {
	for first != last {
		first = u.DelLeftAt(first)
	}
	return last
}

func (u *Bimap[L, R, S]) DelRightRange(first, last RightIter[L, R, S]) RightIter[L, R, S] {
	for first != last {
		first = u.DelRightAt(first)
	}
	return last
}

// FindLeft returns the position of the pair keyed by left, or EndLeft().
func (u *Bimap[L, R, S]) FindLeft(left L) LeftIter[L, R, S] {
	return u.leftAt(u.s.search(sideL, u.cmpAtL(left)))
}

func (u *Bimap[L, R, S]) FindRight(right R) RightIter[L, R, S] {
	return u.rightAt(u.s.search(sideR, u.cmpAtR(right)))
}

// HasLeft reports whether some pair is keyed by left. Use this instead of
// FindLeft when only existence matters.
func (u *Bimap[L, R, S]) HasLeft(left L) bool {
	return u.s.search(sideL, u.cmpAtL(left)) != 0
}

func (u *Bimap[L, R, S]) HasRight(right R) bool {
	return u.s.search(sideR, u.cmpAtR(right)) != 0
}

// AtLeft returns the Right value paired with left.
func (u *Bimap[L, R, S]) AtLeft(left L) (r R, ok bool) {
	if i := u.s.search(sideL, u.cmpAtL(left)); i != 0 {
		r, ok = u.s.slots[i].right, true
	}
	return
}

// AtRight returns the Left value paired with right.
func (u *Bimap[L, R, S]) AtRight(right R) (l L, ok bool) {
	if i := u.s.search(sideR, u.cmpAtR(right)); i != 0 {
		l, ok = u.s.slots[i].left, true
	}
	return
}

// AtLeftOrDefault behaves like AtLeft for a present key. For an absent key
// it stores the pair (left, zero value of R) and returns that zero value;
// if the zero value already keys a pair on the Right side, that whole pair
// is removed first, whatever its Left value was, so the fresh default
// always wins.
func (u *Bimap[L, R, S]) AtLeftOrDefault(left L) R {
	if i := u.s.search(sideL, u.cmpAtL(left)); i != 0 {
		return u.s.slots[i].right
	}
	def := *new(R)
	u.DelRight(def)
	u.Insert(left, def)
	return def
}

// AtRightOrDefault is AtLeftOrDefault with the sides exchanged.
func (u *Bimap[L, R, S]) AtRightOrDefault(right R) L {
	if i := u.s.search(sideR, u.cmpAtR(right)); i != 0 {
		return u.s.slots[i].left
	}
	def := *new(L)
	u.DelLeft(def)
	u.Insert(def, right)
	return def
}

// LowerBoundLeft returns the first position whose Left key is not less
// than left, or EndLeft().
func (u *Bimap[L, R, S]) LowerBoundLeft(left L) LeftIter[L, R, S] {
	return u.leftAt(u.s.lowerBound(sideL, u.cmpAtL(left)))
}

// UpperBoundLeft returns the first position whose Left key is strictly
// greater than left, or EndLeft().
func (u *Bimap[L, R, S]) UpperBoundLeft(left L) LeftIter[L, R, S] {
	return u.leftAt(u.s.upperBound(sideL, u.cmpAtL(left)))
}

func (u *Bimap[L, R, S]) LowerBoundRight(right R) RightIter[L, R, S] {
	return u.rightAt(u.s.lowerBound(sideR, u.cmpAtR(right)))
}

func (u *Bimap[L, R, S]) UpperBoundRight(right R) RightIter[L, R, S] {
	return u.rightAt(u.s.upperBound(sideR, u.cmpAtR(right)))
}

// BeginLeft is the position of the smallest Left key, or EndLeft() when
// the Bimap is empty.
func (u *Bimap[L, R, S]) BeginLeft() LeftIter[L, R, S] {
	return u.leftAt(u.s.begin(sideL))
}

// EndLeft is the past-the-end position of the Left side.
func (u *Bimap[L, R, S]) EndLeft() LeftIter[L, R, S] {
	return u.leftAt(0)
}

func (u *Bimap[L, R, S]) BeginRight() RightIter[L, R, S] {
	return u.rightAt(u.s.begin(sideR))
}

func (u *Bimap[L, R, S]) EndRight() RightIter[L, R, S] {
	return u.rightAt(0)
}

// Size is the number of stored pairs; both trees always hold exactly this
// many nodes.
func (u *Bimap[L, R, S]) Size() S {
	return u.size
}

func (u *Bimap[L, R, S]) Empty() bool {
	return u.size == 0
}

// Clone returns a deep copy: every pair is reinserted in ascending Left
// order, so the copy shares no slots with u and mutating either is
// invisible to the other. Positions of u don't refer into the copy.
func (u *Bimap[L, R, S]) Clone() *Bimap[L, R, S] {
	v := NewC[L, R, S](u.size, u.CmpL, u.CmpR)
	for i := u.s.begin(sideL); i != 0; i = u.s.succ(sideL, i) {
		v.Insert(u.s.slots[i].left, u.s.slots[i].right)
	}
	return v
}

// Swap exchanges the contents of u and o in O(1). Positions keep referring
// to the pairs they referred to; end positions stay tied to the arena they
// were obtained from, not to the container variable.
func (u *Bimap[L, R, S]) Swap(o *Bimap[L, R, S]) {
	*u, *o = *o, *u
}

// Eq reports whether u and o hold order equivalent contents: equal pair
// counts and, walking both in ascending Left order, pairwise equal Left
// keys under CmpL and Right keys under CmpR. u's comparators are used.
func (u *Bimap[L, R, S]) Eq(o *Bimap[L, R, S]) bool {
	if u.size != o.size {
		return false
	}
	for i, j := u.s.begin(sideL), o.s.begin(sideL); i != 0; i, j = u.s.succ(sideL, i), o.s.succ(sideL, j) {
		if u.CmpL(u.s.slots[i].left, o.s.slots[j].left) != 0 || u.CmpR(u.s.slots[i].right, o.s.slots[j].right) != 0 {
			return false
		}
	}
	return true
}

// Clear removes every pair, invalidating all positions except ends.
func (u *Bimap[L, R, S]) Clear() {
	for i := u.s.begin(sideL); i != 0; {
		next := u.s.succ(sideL, i)
		u.s.unlink(sideL, i)
		u.s.unlink(sideR, i)
		u.s.dealloc(i)
		i = next
	}
	u.size = 0
}

// Zero all the removed pairs (holes) in the arena so the values they held
// can be collected.
func (u *Bimap[L, R, S]) Zero() (count S) {
	for i := u.s.free; i != 0; i = u.s.slots[i].ln[sideL].l {
		u.s.slots[i].left, u.s.slots[i].right = *new(L), *new(R)
		count++
	}
	return
}

// InOrderLeft returns a closure function f acting like an iterator over
// pairs in ascending Left order. Calling f is like calling "Next()" of
// iterators: left, right, valid=f(). The values are meaningful only if
// valid is true; valid can't turn true after it first became false. The
// Bimap must not be modified during the iteration of f.
func (u *Bimap[L, R, S]) InOrderLeft() func() (L, R, bool) {
	i := u.s.begin(sideL)
	return func() (l L, r R, ok bool) {
		if i != 0 {
			l, r, ok = u.s.slots[i].left, u.s.slots[i].right, true
			i = u.s.succ(sideL, i)
		}
		return
	}
}

// InOrderRight is InOrderLeft in ascending Right order; the Right value
// comes first.
func (u *Bimap[L, R, S]) InOrderRight() func() (R, L, bool) {
	i := u.s.begin(sideR)
	return func() (r R, l L, ok bool) {
		if i != 0 {
			r, l, ok = u.s.slots[i].right, u.s.slots[i].left, true
			i = u.s.succ(sideR, i)
		}
		return
	}
}

func (u *Bimap[L, R, S]) own(t *store[L, R, S]) {
	if t != u.s {
		panic("bimap: position from a different Bimap")
	}
}
