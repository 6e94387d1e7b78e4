package bimap

import "golang.org/x/exp/constraints"

// store is the slot arena shared by the two trees of a Bimap. It's a
// separate allocation from Bimap so that positions reference it directly
// and keep their meaning when whole containers are swapped.
// free is the beginning of the linked list that contains all the free
// slots; links[S]::l of sideL represents next.
type store[L, R any, S constraints.Unsigned] struct {
	slots []slot[L, R, S]
	free  S
}

func newStore[L, R any, S constraints.Unsigned](hint S) *store[L, R, S] {
	t := &store[L, R, S]{slots: make([]slot[L, R, S], 1, hint+1)}
	t.slots[0].gen = 1
	return t
}

func (t *store[L, R, S]) root(s int) S {
	return t.slots[0].ln[s].l
}

// alloc a slot holding (left, right). Holes are filled first before
// appending to the underlying array.
func (t *store[L, R, S]) alloc(left L, right R) S {
	i := t.free
	if i == 0 {
		t.slots = append(t.slots, slot[L, R, S]{gen: 1, left: left, right: right})
		return S(len(t.slots) - 1)
	}
	t.free = t.slots[i].ln[sideL].l
	c := &t.slots[i]
	c.ln = [2]links[S]{}
	c.left, c.right = left, right
	return i
}

// dealloc slot i once. Bumping gen here is what invalidates every
// outstanding position referencing i.
func (t *store[L, R, S]) dealloc(i S) {
	c := &t.slots[i]
	c.gen++
	c.ln[sideL].l = t.free
	t.free = i
}

func (t *store[L, R, S]) minimum(s int, i S) S {
	for t.slots[i].ln[s].l != 0 {
		i = t.slots[i].ln[s].l
	}
	return i
}

func (t *store[L, R, S]) maximum(s int, i S) S {
	for t.slots[i].ln[s].r != 0 {
		i = t.slots[i].ln[s].r
	}
	return i
}

// begin is the minimum of tree s, or 0 when the tree is empty.
func (t *store[L, R, S]) begin(s int) S {
	if r := t.root(s); r != 0 {
		return t.minimum(s, r)
	}
	return 0
}

// succ of i in tree s: leftmost of the right subtree if present, else the
// first ancestor of which i's subtree hangs on the left. Returns 0 past
// the maximum. i must be a real node.
func (t *store[L, R, S]) succ(s int, i S) S {
	if r := t.slots[i].ln[s].r; r != 0 {
		return t.minimum(s, r)
	}
	p := t.slots[i].ln[s].p
	for t.slots[p].ln[s].r == i {
		i, p = p, t.slots[p].ln[s].p
	}
	return p
}

// pred is the mirror of succ. pred(0) is the maximum of the tree, since
// the sentinel's left link is the root; pred of the minimum returns 0.
func (t *store[L, R, S]) pred(s int, i S) S {
	if l := t.slots[i].ln[s].l; l != 0 {
		return t.maximum(s, l)
	}
	p := t.slots[i].ln[s].p
	for p != 0 && t.slots[p].ln[s].l == i {
		i, p = p, t.slots[p].ln[s].p
	}
	return p
}

// replace i with v in the child link of i's parent. Works for the root
// too: its parent is the sentinel and the sentinel's left link is the
// root anchor.
func (t *store[L, R, S]) replace(s int, i, v S) {
	p := &t.slots[t.slots[i].ln[s].p].ln[s]
	if p.l == i {
		p.l = v
	} else {
		p.r = v
	}
}

func (t *store[L, R, S]) fixChildren(s int, i S) {
	if l := t.slots[i].ln[s].l; l != 0 {
		t.slots[l].ln[s].p = i
	}
	if r := t.slots[i].ln[s].r; r != 0 {
		t.slots[r].ln[s].p = i
	}
}

// swapWithParent exchanges i with its direct parent. Adjacent nodes can't
// go through the general link swap in swapNodes: each holds a link to the
// other, so a blind field exchange would create self references.
func (t *store[L, R, S]) swapWithParent(s int, i S) {
	p := t.slots[i].ln[s].p
	ol, or := t.slots[i].ln[s].l, t.slots[i].ln[s].r
	if t.slots[p].ln[s].l == i {
		t.slots[i].ln[s].l, t.slots[i].ln[s].r = p, t.slots[p].ln[s].r
	} else {
		t.slots[i].ln[s].l, t.slots[i].ln[s].r = t.slots[p].ln[s].l, p
	}
	t.replace(s, p, i) // the grandparent adopts i
	t.slots[p].ln[s].l, t.slots[p].ln[s].r = ol, or
	t.fixChildren(s, p)
	t.slots[i].ln[s].p = t.slots[p].ln[s].p
	t.fixChildren(s, i)
}

// swapNodes exchanges the tree positions of a and b in tree s by swapping
// links only; the slots themselves, and therefore all positions held by
// callers, don't move. a and b must not be siblings of a common parent,
// which unlink, the only caller, never produces.
func (t *store[L, R, S]) swapNodes(s int, a, b S) {
	if t.slots[a].ln[s].p == b {
		t.swapWithParent(s, a)
	} else if t.slots[b].ln[s].p == a {
		t.swapWithParent(s, b)
	} else {
		t.replace(s, a, b)
		t.replace(s, b, a)
		aln, bln := &t.slots[a].ln[s], &t.slots[b].ln[s]
		aln.p, bln.p = bln.p, aln.p
		aln.l, bln.l = bln.l, aln.l
		aln.r, bln.r = bln.r, aln.r
		t.fixChildren(s, a)
		t.fixChildren(s, b)
	}
}

// unlink removes i from tree s by topology only. A node with two children
// first swaps positions with its in-order successor, which has no left
// child, after which the zero/one child splice applies. Values never move,
// so every other position in the tree stays valid.
func (t *store[L, R, S]) unlink(s int, i S) {
	for {
		ln := t.slots[i].ln[s]
		if ln.l != 0 && ln.r != 0 {
			t.swapNodes(s, i, t.minimum(s, ln.r))
			continue
		}
		c := ln.l
		if c == 0 {
			c = ln.r
		}
		t.replace(s, i, c)
		if c != 0 {
			t.slots[c].ln[s].p = ln.p
		}
		t.slots[i].ln[s] = links[S]{}
		return
	}
}

// insert splices slot ni into tree s at the position dictated by cmp,
// where cmp(i) orders ni's key against slot i's key. If an equal key is
// already present the tree is left untouched and the existing slot is
// returned; this is how collisions are detected.
func (t *store[L, R, S]) insert(s int, ni S, cmp func(S) int) S {
	parent := S(0)
	curp := &t.slots[0].ln[s].l
	for *curp != 0 {
		parent = *curp
		if c := cmp(*curp); c < 0 {
			curp = &t.slots[*curp].ln[s].l
		} else if c > 0 {
			curp = &t.slots[*curp].ln[s].r
		} else {
			return *curp
		}
	}
	*curp = ni
	t.slots[ni].ln[s] = links[S]{p: parent}
	return ni
}

// lowerBound returns the first slot in tree s whose key is not less than
// the probe key described by cmp, or 0 when all keys are less.
func (t *store[L, R, S]) lowerBound(s int, cmp func(S) int) S {
	ret := S(0)
	for cur := t.root(s); cur != 0; {
		if c := cmp(cur); c < 0 {
			ret = cur
			cur = t.slots[cur].ln[s].l
		} else if c > 0 {
			cur = t.slots[cur].ln[s].r
		} else {
			return cur
		}
	}
	return ret
}

// upperBound returns the first slot strictly greater than the probe key.
func (t *store[L, R, S]) upperBound(s int, cmp func(S) int) S {
	i := t.lowerBound(s, cmp)
	if i != 0 && cmp(i) == 0 {
		i = t.succ(s, i)
	}
	return i
}

// search returns the slot with a key equal to the probe key, or 0.
func (t *store[L, R, S]) search(s int, cmp func(S) int) S {
	if i := t.lowerBound(s, cmp); i != 0 && cmp(i) == 0 {
		return i
	}
	return 0
}
