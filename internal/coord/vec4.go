// Package coord implements the four-dimensional coordinate arithmetic
// (x, y, t, l) that every move in 5D chess is expressed in: two physical
// board axes plus time and timeline.
package coord

// Vec4 is a point in (x, y, t, l) space: board file, board rank, turn
// number (the side to move is tracked separately), and timeline index.
type Vec4 struct {
	X, Y, T, L int
}

// V4 is a short constructor.
func V4(x, y, t, l int) Vec4 { return Vec4{X: x, Y: y, T: t, L: l} }

// Add returns the componentwise sum.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.T + b.T, a.L + b.L}
}

// Sub returns the componentwise difference a - b.
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.T - b.T, a.L - b.L}
}

// Neg returns the componentwise negation.
func (a Vec4) Neg() Vec4 {
	return Vec4{-a.X, -a.Y, -a.T, -a.L}
}

// Scale returns a scaled by the integer n.
func (a Vec4) Scale(n int) Vec4 {
	return Vec4{a.X * n, a.Y * n, a.T * n, a.L * n}
}

// TL projects to the (t, l) plane, zeroing the physical components. Used
// to tag null semimoves and to compare "which board" two coordinates
// refer to, ignoring the square.
func (a Vec4) TL() Vec4 {
	return Vec4{0, 0, a.T, a.L}
}

// XY returns the bit index in [0, 63] for the square (x, y) on an 8x8
// bitboard, rank-major (matches the layout used throughout
// internal/bitboard and internal/board: sq = y*8 + x).
func (a Vec4) XY() int {
	return a.Y*8 + a.X
}

// FromXY builds the physical part of a Vec4 from a bit index, leaving t
// and l at zero.
func FromXY(sq int) Vec4 {
	return Vec4{X: sq % 8, Y: sq / 8}
}

// Outbound reports whether (x, y) falls outside a board of the given
// size, or (x, y) is negative. It does not second-guess (t, l); the board
// store is the authority on which (t, l) pairs currently exist.
func (a Vec4) Outbound(sizeX, sizeY int) bool {
	return a.X < 0 || a.X >= sizeX || a.Y < 0 || a.Y >= sizeY
}

// Equal reports componentwise equality.
func (a Vec4) Equal(b Vec4) bool {
	return a == b
}

// Less gives a total order over Vec4, used for deterministic sorting of
// candidate moves and canonical action ordering.
func (a Vec4) Less(b Vec4) bool {
	if a.L != b.L {
		return a.L < b.L
	}
	if a.T != b.T {
		return a.T < b.T
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
