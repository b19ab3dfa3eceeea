package board

import "github.com/Oliverans/fivedchess/internal/piece"

// Turn is a half-turn identifier (t, color), ordered by the interleaving
// v = 2t + color so that White's move at time t always precedes Black's
// move at the same time t, which in turn precedes White's move at t+1.
type Turn struct {
	T     int
	Color piece.Color
}

// v returns the interleaved ordinal used to compare and step turns.
func (t Turn) v() int {
	return t.T<<1 | int(t.Color)
}

// Next returns the half-turn immediately following t.
func (t Turn) Next() Turn {
	v := t.v() + 1
	return Turn{T: v >> 1, Color: piece.Color(v & 1)}
}

// Prev returns the half-turn immediately preceding t.
func (t Turn) Prev() Turn {
	v := t.v() - 1
	return Turn{T: v >> 1, Color: piece.Color(v & 1)}
}

// Less reports whether t sorts strictly before o.
func (t Turn) Less(o Turn) bool {
	return t.v() < o.v()
}

// Equal reports turn equality.
func (t Turn) Equal(o Turn) bool {
	return t.T == o.T && t.Color == o.Color
}
