package bimap

import "golang.org/x/exp/constraints"

// Sides of a pair. Every stored pair is simultaneously a member of the
// Left tree and the Right tree; each membership walks its own links set,
// so operations on one tree never perturb the other.
const (
	sideL = 0
	sideR = 1
)

// links of one tree membership. The fields are slot indexes, not pointers;
// 0 refers to the sentinel slot and doubles as "no node".
type links[S constraints.Unsigned] struct {
	l, r, p S
}

// A slot in the arena; the unit of storage shared by both trees.
// Slot 0 is the sentinel: it anchors both roots (ln[s].l) and is the "end"
// position of both trees, so checking whether a position is real is i!=0.
// Its ln[s].r and ln[s].p always stay 0, which terminates upward walks.
// gen starts at 1 and is incremented whenever the slot is freed, so a
// position holding an older gen is detectably stale.
type slot[L, R any, S constraints.Unsigned] struct {
	ln    [2]links[S]
	gen   uint32
	left  L
	right R
}
