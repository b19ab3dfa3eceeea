// Package multiverse implements the growing two-dimensional array of
// boards indexed by (timeline, time, color), including
// timeline-activation bookkeeping and "present" computation. The odd and
// even timeline-numbering schemes sit behind the small Variant
// interface; everything else is shared store.
package multiverse

import (
	"fmt"
	"strconv"

	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/piece"
)

// Variant captures the two ways a 5D chess match numbers its starting
// timelines: "odd" boards start from a single timeline 0 and branch
// symmetrically outward; "even" boards start from two timelines of
// opposite sign, displayed as "0" and "-0".
type Variant interface {
	// InitialLinesRange returns the (l_min, l_max) of the starting
	// timelines, before any branching jump has occurred.
	InitialLinesRange() (int, int)
	// PrettyL renders a timeline index for display: the `<l-sign>
	// <l-number>` token of the 5D-FEN grammar.
	PrettyL(l int) string
	// ParseL is PrettyL's inverse, used by internal/fen5d to decode that
	// same token back into a timeline index.
	ParseL(token string) (int, error)
}

func splitSign(token string) (sign byte, digits string) {
	if len(token) > 0 && (token[0] == '+' || token[0] == '-') {
		return token[0], token[1:]
	}
	return 0, token
}

// Odd is the standard single-board-start variant: one initial timeline,
// numbered 0.
type Odd struct{}

func (Odd) InitialLinesRange() (int, int) { return 0, 0 }
func (Odd) PrettyL(l int) string          { return fmt.Sprintf("%d", l) }

func (Odd) ParseL(token string) (int, error) {
	sign, digits := splitSign(token)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("multiverse: bad timeline token %q: %w", token, err)
	}
	if sign == '-' {
		n = -n
	}
	return n, nil
}

// Even is the two-board-start variant: initial timelines at l=0
// (White's board, displayed "0") and l=-1 (Black's board, displayed
// "-0", black-side zero). Internally each side keeps its own zero-based
// indexing; the off-by-one against the display string is handled in
// PrettyL only.
type Even struct{}

func (Even) InitialLinesRange() (int, int) { return -1, 0 }
func (Even) PrettyL(l int) string {
	if l >= 0 {
		return fmt.Sprintf("%d", l)
	}
	return fmt.Sprintf("-%d", -l-1)
}

func (Even) ParseL(token string) (int, error) {
	sign, digits := splitSign(token)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("multiverse: bad timeline token %q: %w", token, err)
	}
	if sign == '-' {
		return -(n + 1), nil
	}
	return n, nil
}

// lToU / uToL / tcToV / vToTC implement the bijection between the signed
// (l, t, color) coordinate system programs are written against and the
// non-negative (u, v) indices the underlying slices are stored under.
func lToU(l int) int {
	if l >= 0 {
		return l << 1
	}
	return ^(l << 1)
}

func uToL(u int) int {
	if u&1 != 0 {
		return ^(u >> 1)
	}
	return u >> 1
}

func tcToV(t int, c piece.Color) int {
	return t<<1 | int(c)
}

func vToTC(v int) (int, piece.Color) {
	return v >> 1, piece.Color(v & 1)
}

// Multiverse is the owning store of timelines of boards. Copying it
// (Clone) duplicates the per-line index vectors but shares the
// individual *board.Board values; boards are immutable shared data.
type Multiverse struct {
	variant      Variant
	sizeX, sizeY int

	boards [][]*board.Board // boards[u][v], indexed via lToU/tcToV

	lMin, lMax             int
	activeMin, activeMax   int
	timelineStart, timelineEnd []int // indexed by u; noBound/-noBound sentinel when a line is empty
}

// BoardInfo is one (timeline, time, color, board) tuple, the shape the
// constructor consumes and board listings return.
type BoardInfo struct {
	L, T  int
	Color piece.Color
	Board board.Board
}

const noBound = int(^uint(0) >> 1) // math.MaxInt, avoiding an import for one constant

// New builds a multiverse from its starting boards. Every (l, t, color)
// in boards must be present with no gaps within a timeline nor between
// timelines.
func New(variant Variant, sizeX, sizeY int, boards []BoardInfo) (*Multiverse, error) {
	if len(boards) == 0 {
		return nil, fmt.Errorf("multiverse: empty initial board set")
	}
	m := &Multiverse{variant: variant, sizeX: sizeX, sizeY: sizeY}
	l0min, l0max := variant.InitialLinesRange()
	m.lMin, m.lMax = l0min, l0max
	for _, bi := range boards {
		if err := m.insertBoardImpl(bi.L, bi.T, bi.Color, bi.Board); err != nil {
			return nil, err
		}
	}
	for l := m.lMin; l <= m.lMax; l++ {
		u := lToU(l)
		if u >= len(m.boards) || len(m.boards[u]) == 0 {
			return nil, fmt.Errorf("multiverse: gap between timelines at L%d", l)
		}
		for v := m.timelineStart[u]; v <= m.timelineEnd[u]; v++ {
			if m.boards[u][v] == nil {
				t, c := vToTC(v)
				return nil, fmt.Errorf("multiverse: gap between boards on L%d T%d%s", l, t, c)
			}
		}
	}
	m.activeMin, m.activeMax = m.calculateActiveRange()
	return m, nil
}

func (m *Multiverse) ensureU(u int) {
	for u >= len(m.boards) {
		m.boards = append(m.boards, nil)
		m.timelineStart = append(m.timelineStart, noBound)
		m.timelineEnd = append(m.timelineEnd, -noBound)
	}
}

func (m *Multiverse) insertBoardImpl(l, t int, c piece.Color, b board.Board) error {
	u := lToU(l)
	v := tcToV(t, c)
	if v < 0 {
		return fmt.Errorf("multiverse: negative time is not supported")
	}
	m.ensureU(u)
	if l < m.lMin {
		m.lMin = l
	}
	if l > m.lMax {
		m.lMax = l
	}
	for v >= len(m.boards[u]) {
		m.boards[u] = append(m.boards[u], nil)
	}
	if m.boards[u][v] != nil {
		return fmt.Errorf("multiverse: duplicate board at L%d T%d", l, t)
	}
	bb := b
	m.boards[u][v] = &bb
	if v < m.timelineStart[u] {
		m.timelineStart[u] = v
	}
	if v > m.timelineEnd[u] {
		m.timelineEnd[u] = v
	}
	return nil
}

// InsertBoard creates a new timeline whose first board is at (t, c),
// recomputing the active range via the incremental balance rule: a new
// line activates only while neither side leads by more than one line.
func (m *Multiverse) InsertBoard(l, t int, c piece.Color, b board.Board) error {
	if err := m.insertBoardImpl(l, t, c, b); err != nil {
		return err
	}
	l0min, l0max := m.variant.InitialLinesRange()
	whitesLines := m.lMax - l0max
	blacksLines := l0min - m.lMin
	if l > l0max && whitesLines <= blacksLines+1 && l > m.activeMax {
		m.activeMax++
		if m.lMin < m.activeMin {
			m.activeMin--
		}
	} else if l < l0min && blacksLines <= whitesLines+1 && l < m.activeMin {
		m.activeMin--
		if m.lMax > m.activeMax {
			m.activeMax++
		}
	}
	return nil
}

// AppendBoard extends the tail of an existing line l.
func (m *Multiverse) AppendBoard(l int, b board.Board) error {
	u := lToU(l)
	if u >= len(m.boards) || len(m.boards[u]) == 0 {
		return fmt.Errorf("multiverse: AppendBoard on nonexistent line L%d", l)
	}
	bb := b
	m.boards[u] = append(m.boards[u], &bb)
	m.timelineEnd[u]++
	return nil
}

// PopBoard removes the tail board of line l, the inverse of AppendBoard,
// used to undo a speculative move.
func (m *Multiverse) PopBoard(l int) {
	u := lToU(l)
	n := len(m.boards[u])
	m.boards[u] = m.boards[u][:n-1]
	m.timelineEnd[u]--
}

// RemoveLine removes an entire timeline, the inverse of the line-creating
// form of InsertBoard, used to undo a speculative branching jump.
func (m *Multiverse) RemoveLine(l int) {
	u := lToU(l)
	m.boards[u] = nil
	m.timelineStart[u] = noBound
	m.timelineEnd[u] = -noBound
	if l == m.lMax {
		for m.lMax > 0 && !m.lineExists(m.lMax) {
			m.lMax--
		}
	}
	if l == m.lMin {
		for m.lMin < 0 && !m.lineExists(m.lMin) {
			m.lMin++
		}
	}
	m.activeMin, m.activeMax = m.calculateActiveRange()
}

func (m *Multiverse) lineExists(l int) bool {
	u := lToU(l)
	return u < len(m.boards) && len(m.boards[u]) > 0
}

// calculateActiveRange recomputes (active_min, active_max) from scratch
// given the current (l_min, l_max), by replaying the same
// whites<=blacks+1 balance rule InsertBoard applies incrementally, one
// new line at a time outward from the initial range. The replay order
// (all of White's new lines, then all of Black's) does not change the
// fixed point reached, because each step's balance test only reads
// l_min/l_max, not the active range itself being grown on that side.
// Unlike InsertBoard's incremental version, it reads nothing but
// (l_min, l_max) and the variant's initial range.
func (m *Multiverse) calculateActiveRange() (int, int) {
	l0min, l0max := m.variant.InitialLinesRange()
	return CalculateActiveRange(l0min, l0max, m.lMin, m.lMax)
}

// CalculateActiveRange is the pure function calculateActiveRange above
// delegates to; it evaluates the rule for any (lMin, lMax) without a
// Multiverse. internal/hypercuboid's present check applies the same rule
// with its own inline code rather than calling this function.
func CalculateActiveRange(l0min, l0max, lMin, lMax int) (int, int) {
	activeMin, activeMax := l0min, l0max
	for l := l0max + 1; l <= lMax; l++ {
		whitesLines := l - l0max
		blacksLines := l0min - lMin
		if whitesLines <= blacksLines+1 && l > activeMax {
			activeMax++
			if lMin < activeMin {
				activeMin--
			}
		}
	}
	for l := l0min - 1; l >= lMin; l-- {
		whitesLines := lMax - l0max
		blacksLines := l0min - l
		if blacksLines <= whitesLines+1 && l < activeMin {
			activeMin--
			if lMax > activeMax {
				activeMax++
			}
		}
	}
	return activeMin, activeMax
}

// GetBoardSize returns (size_x, size_y).
func (m *Multiverse) GetBoardSize() (int, int) { return m.sizeX, m.sizeY }

// GetInitialLinesRange returns the variant's starting timeline range.
func (m *Multiverse) GetInitialLinesRange() (int, int) { return m.variant.InitialLinesRange() }

// GetLinesRange returns (l_min, l_max): every timeline that currently
// exists.
func (m *Multiverse) GetLinesRange() (int, int) { return m.lMin, m.lMax }

// GetActiveRange returns (active_min, active_max): the contiguous
// interval of timelines whose tails constrain the present.
func (m *Multiverse) GetActiveRange() (int, int) { return m.activeMin, m.activeMax }

// GetTimelineStart returns the first half-turn recorded on line l.
func (m *Multiverse) GetTimelineStart(l int) board.Turn {
	t, c := vToTC(m.timelineStart[lToU(l)])
	return board.Turn{T: t, Color: c}
}

// GetTimelineEnd returns the last half-turn recorded on line l: the
// color of that half-turn is whose turn it is to move next on that line.
func (m *Multiverse) GetTimelineEnd(l int) board.Turn {
	t, c := vToTC(m.timelineEnd[lToU(l)])
	return board.Turn{T: t, Color: c}
}

// GetBoard returns the board at (l, t, c), or ok=false if no such board
// is stored.
func (m *Multiverse) GetBoard(l, t int, c piece.Color) (*board.Board, bool) {
	u := lToU(l)
	if u < 0 || u >= len(m.boards) {
		return nil, false
	}
	v := tcToV(t, c)
	if v < 0 || v >= len(m.boards[u]) {
		return nil, false
	}
	b := m.boards[u][v]
	return b, b != nil
}

// GetPresent returns the earliest half-turn held as the tail of any
// active timeline: min over l in [active_min, active_max] of
// GetTimelineEnd(l).
func (m *Multiverse) GetPresent() board.Turn {
	best := board.Turn{T: noBound, Color: piece.White}
	first := true
	for l := m.activeMin; l <= m.activeMax; l++ {
		end := m.GetTimelineEnd(l)
		if first || end.Less(best) {
			best, first = end, false
		}
	}
	return best
}

// Inbound reports whether (a.T, color) exists on timeline a.L, and a's
// (x, y) falls on the board.
func (m *Multiverse) Inbound(a coord.Vec4, color piece.Color) bool {
	if a.Outbound(m.sizeX, m.sizeY) || a.L < m.lMin || a.L > m.lMax {
		return false
	}
	u := lToU(a.L)
	v := tcToV(a.T, color)
	return v >= m.timelineStart[u] && v <= m.timelineEnd[u]
}

// GetPiece is a convenience wrapper over GetBoard + Board.GetPiece.
func (m *Multiverse) GetPiece(a coord.Vec4, color piece.Color) piece.Kind {
	b, ok := m.GetBoard(a.L, a.T, color)
	if !ok {
		return piece.Empty
	}
	return b.GetPiece(a.XY())
}

// PrettyL renders a timeline index through the active Variant.
func (m *Multiverse) PrettyL(l int) string { return m.variant.PrettyL(l) }

// PrettyLT renders a (timeline, time) pair as "(LlTt)".
func (m *Multiverse) PrettyLT(p coord.Vec4) string {
	return fmt.Sprintf("(%sT%d)", m.variant.PrettyL(p.L), p.T)
}

// Clone performs a shallow-over-boards, deep-over-index-vectors copy: a
// new set of per-line slices pointing at the same *board.Board values.
func (m *Multiverse) Clone() *Multiverse {
	out := &Multiverse{
		variant: m.variant, sizeX: m.sizeX, sizeY: m.sizeY,
		lMin: m.lMin, lMax: m.lMax, activeMin: m.activeMin, activeMax: m.activeMax,
	}
	out.boards = make([][]*board.Board, len(m.boards))
	for u, line := range m.boards {
		out.boards[u] = append([]*board.Board(nil), line...)
	}
	out.timelineStart = append([]int(nil), m.timelineStart...)
	out.timelineEnd = append([]int(nil), m.timelineEnd...)
	return out
}

// Variant exposes the active Variant, for State code that needs to
// re-derive an initial-lines-range-relative quantity (e.g. mandatory vs.
// optional timeline classification).
func (m *Multiverse) Variant() Variant { return m.variant }

// Lines returns every currently-existing timeline index in ascending
// order.
func (m *Multiverse) Lines() []int {
	out := make([]int, 0, m.lMax-m.lMin+1)
	for l := m.lMin; l <= m.lMax; l++ {
		if m.lineExists(l) {
			out = append(out, l)
		}
	}
	return out
}
