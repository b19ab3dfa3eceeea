package hypercuboid

import (
	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/move"
)

// A semimove is one axis's atomic choice inside a turn: play a physical
// move on the axis's line, receive the arriving half of a jump, give up
// the departing half of a jump, or pass.
type semiKind uint8

const (
	smNull semiKind = iota
	smPhysical
	smArriving
	smDeparting
)

// semimove carries the board that results from playing it (nil for a
// pass). An arriving semimove also records the slot index of its
// matching departing semimove on the source line's axis; the axis itself
// is recovered through lineToAxis, so no back-pointer is needed.
type semimove struct {
	kind semiKind
	m    move.Full    // physical, arriving
	from coord.Vec4   // departing source square
	tl   coord.Vec4   // null: the axis's (t, l) tag
	b    *board.Board // resulting board
	idx  int          // arriving: slot of the departing semimove
}

// tlOf returns the (t, l) coordinate of the board this semimove touches
// on its own axis: the source board for physical and departing moves,
// the destination board for arriving moves, the tag for a pass.
func (sm semimove) tlOf() coord.Vec4 {
	switch sm.kind {
	case smPhysical:
		return sm.m.From.TL()
	case smArriving:
		return sm.m.To.TL()
	case smDeparting:
		return sm.from.TL()
	default:
		return sm.tl
	}
}
