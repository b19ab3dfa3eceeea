// Package move defines the full-move and extended-move value types:
// {from, to} pairs in four-dimensional coordinates, plus the
// promotion-kind extension, plus an ordered sequence of extended moves
// constituting one turn (an Action).
package move

import (
	"fmt"

	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/piece"
)

// Full is {from, to}: the minimal move identity.
type Full struct {
	From, To coord.Vec4
}

// Ext is a Full move plus a defaulted promotion kind (piece.Empty means
// "no promotion", i.e. most moves).
type Ext struct {
	Full
	Promotion piece.Kind
}

// IsSuperphysical reports whether from and to live on different boards
// (differ in t or l).
func (f Full) IsSuperphysical() bool {
	return f.From.T != f.To.T || f.From.L != f.To.L
}

// String renders the `(lTt)xy(l'T't')x'y'` long coordinate form; the
// board tag is omitted on the destination when it matches the source (a
// physical move).
func (f Full) String() string {
	p, q := f.From, f.To
	sq := func(v coord.Vec4) string {
		return fmt.Sprintf("%c%c", 'a'+byte(v.X), '1'+byte(v.Y))
	}
	if p.T == q.T && p.L == q.L {
		return fmt.Sprintf("(%dT%d)%s%s", p.L, p.T, sq(p), sq(q))
	}
	return fmt.Sprintf("(%dT%d)%s(%dT%d)%s", p.L, p.T, sq(p), q.L, q.T, sq(q))
}

// Less gives a deterministic total order over Full moves.
func (f Full) Less(o Full) bool {
	if !f.From.Equal(o.From) {
		return f.From.Less(o.From)
	}
	return f.To.Less(o.To)
}

// Action is an ordered sequence of extended moves constituting one turn.
// Canonical application order puts intra-timeline moves before the
// branch-creating jumps; the concrete reordering rule lives in
// internal/hypercuboid.
type Action []Ext

// Equal reports whether two actions are the same sequence of extended
// moves in the same order.
func (a Action) Equal(o Action) bool {
	if len(a) != len(o) {
		return false
	}
	for i := range a {
		if a[i].From != o[i].From || a[i].To != o[i].To || a[i].Promotion != o[i].Promotion {
			return false
		}
	}
	return true
}

func (a Action) String() string {
	s := ""
	for _, m := range a {
		s += m.Full.String() + " "
	}
	return s
}
