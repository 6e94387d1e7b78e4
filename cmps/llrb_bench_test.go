package cmps

import (
	"testing"

	"github.com/petar/GoLLRB/llrb"
)

type lrPair struct{ l, r int }

func (u lrPair) Less(than llrb.Item) bool { return u.l < than.(lrPair).l }

type rlPair struct{ r, l int }

func (u rlPair) Less(than llrb.Item) bool { return u.r < than.(rlPair).r }

type llrbPair struct {
	fwd, rev *llrb.LLRB
}

func newLlrbPair() llrbPair {
	return llrbPair{llrb.New(), llrb.New()}
}

func (u llrbPair) insert(l, r int) bool {
	if u.fwd.Has(lrPair{l: l}) || u.rev.Has(rlPair{r: r}) {
		return false
	}
	u.fwd.ReplaceOrInsert(lrPair{l, r})
	u.rev.ReplaceOrInsert(rlPair{r, l})
	return true
}

func (u llrbPair) atLeft(l int) (int, bool) {
	if v := u.fwd.Get(lrPair{l: l}); v != nil {
		return v.(lrPair).r, true
	}
	return 0, false
}

func (u llrbPair) atRight(r int) (int, bool) {
	if v := u.rev.Get(rlPair{r: r}); v != nil {
		return v.(rlPair).l, true
	}
	return 0, false
}

func (u llrbPair) delLeft(l int) bool {
	v := u.fwd.Delete(lrPair{l: l})
	if v == nil {
		return false
	}
	u.rev.Delete(rlPair{r: v.(lrPair).r})
	return true
}

func (u llrbPair) delRight(r int) bool {
	v := u.rev.Delete(rlPair{r: r})
	if v == nil {
		return false
	}
	u.fwd.Delete(lrPair{l: v.(rlPair).l})
	return true
}

func fillLlrbPair(b *testing.B, ls, rs []int) llrbPair {
	b.Helper()
	u := newLlrbPair()
	for k := range ls {
		u.insert(ls[k], rs[k])
	}
	return u
}

func BenchmarkLlrbPair_Insert(b *testing.B) {
	ls, rs := pairs()
	b.ResetTimer()
	for _i := b.N; _i > 0; _i-- {
		fillLlrbPair(b, ls, rs)
	}
}

func BenchmarkLlrbPair_Qry(b *testing.B) {
	ls, rs := pairs()
	u := fillLlrbPair(b, ls, rs)
	b.ResetTimer()
	for _i := b.N; _i > 0; _i-- {
		for _, l := range ls[:cQryN] {
			sideEff, _ = u.atLeft(l)
		}
		for _, r := range rs[:cQryN] {
			sideEff, _ = u.atRight(r)
		}
		for k := 0; k < cQryN; k++ {
			sideEff, _ = u.atLeft(cAddN + k)
		}
	}
}

func BenchmarkLlrbPair_Del(b *testing.B) {
	ls, rs := pairs()
	for _i := b.N; _i > 0; _i-- {
		b.StopTimer()
		u := fillLlrbPair(b, ls, rs)
		b.StartTimer()
		for k := range ls {
			if k&1 == 0 {
				u.delLeft(ls[k])
			} else {
				u.delRight(rs[k])
			}
		}
	}
}
