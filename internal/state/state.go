// Package state ties a multiverse to the two pieces of bookkeeping that
// turn it into a playable position: whose present half-turn a player is
// currently reasoning from, and the rules for applying, submitting, and
// parsing one half-turn's worth of moves.
package state

import (
	"fmt"

	"github.com/Oliverans/fivedchess/internal/bitboard"
	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/coord"
	"github.com/Oliverans/fivedchess/internal/move"
	"github.com/Oliverans/fivedchess/internal/movegen"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/notation"
	"github.com/Oliverans/fivedchess/internal/piece"
)

// State is a multiverse plus a tracked present half-turn. Present can lag
// behind the multiverse's own apparent present: a branching jump into history can
// pull the tracked present backward, and Submit only ever advances it
// forward once every mandatory timeline has a move on it.
type State struct {
	M       *multiverse.Multiverse
	Present board.Turn
}

// New wraps a multiverse, seeding Present from its apparent present.
func New(mv *multiverse.Multiverse) *State {
	return &State{M: mv, Present: mv.GetPresent()}
}

// Clone deep-copies the multiverse (Clone shares board values) and
// copies Present, giving an independent State that CanApply/CanSubmit
// speculate against without touching the receiver.
func (s *State) Clone() *State {
	return &State{M: s.M.Clone(), Present: s.Present}
}

// NewLine returns the timeline index a branching jump by the mover
// (Present.Color) would create: one past White's newest line, or one
// before Black's oldest.
func (s *State) NewLine() int {
	lMin, lMax := s.M.GetLinesRange()
	if s.Present.Color == piece.White {
		return lMax + 1
	}
	return lMin - 1
}

// CanSubmit reports whether Submit would currently succeed, returning
// the resulting State without mutating the receiver.
func (s *State) CanSubmit() (*State, bool) {
	ns := s.Clone()
	if !ns.Submit(false) {
		return nil, false
	}
	return ns, true
}

// CanApply reports whether fm is a legal move to apply right now,
// returning the resulting State without mutating the receiver.
func (s *State) CanApply(fm move.Full, promote piece.Kind) (*State, bool) {
	ns := s.Clone()
	if !ns.ApplyMove(fm, promote) {
		return nil, false
	}
	return ns, true
}

// CanApplyAction applies every extended move in act in order and then
// submits, as one atomic speculative step; all-or-nothing.
func (s *State) CanApplyAction(act move.Action) (*State, bool) {
	ns := s.Clone()
	for _, em := range act {
		if !ns.ApplyMove(em.Full, em.Promotion) {
			return nil, false
		}
	}
	if !ns.Submit(false) {
		return nil, false
	}
	return ns, true
}

// pseudolegal reports whether fm is a move available to gen_movable
// pieces-style generation from the current Present: the piece at From
// belongs to the mover, From sits on the active board of its line, and
// To is one of that piece's generated targets.
func (s *State) pseudolegal(fm move.Full) (piece.Kind, bool) {
	p, q := fm.From, fm.To
	end := s.M.GetTimelineEnd(p.L)
	if end.T != p.T || end.Color != s.Present.Color {
		return piece.Empty, false
	}
	b, ok := s.M.GetBoard(p.L, p.T, s.Present.Color)
	if !ok {
		return piece.Empty, false
	}
	k := b.GetPiece(p.XY())
	if k.IsEmpty() || k.IsWall() || k.Color() != s.Present.Color {
		return piece.Empty, false
	}
	for _, tgt := range movegen.AllMoves(s.M, p, s.Present.Color, k) {
		if tgt.Board != q.TL() {
			continue
		}
		if tgt.To&(uint64(1)<<uint(q.XY())) != 0 {
			return k, true
		}
	}
	return piece.Empty, false
}

// ApplyMove applies a single extended move (fm plus a promotion choice,
// ignored unless fm lands a pawn/brawn on the far rank), validating
// pseudolegality first.
func (s *State) ApplyMove(fm move.Full, promote piece.Kind) bool {
	k, ok := s.pseudolegal(fm)
	if !ok {
		return false
	}
	s.applyMoveUnsafe(fm, k, promote)
	return true
}

// ApplyMoveUnsafe applies fm without pseudolegality validation, for
// callers that generated fm themselves and only need the board surgery.
// The action search replays its candidate moves through this on scratch
// clones.
func (s *State) ApplyMoveUnsafe(fm move.Full, promote piece.Kind) {
	k := s.M.GetPiece(fm.From, s.Present.Color)
	s.applyMoveUnsafe(fm, k, promote)
}

// applyMoveUnsafe performs the board surgery itself. Any change to this
// switch must be mirrored in internal/hypercuboid's semimove board
// construction, which precomputes the same resulting boards.
func (s *State) applyMoveUnsafe(fm move.Full, k piece.Kind, promote piece.Kind) {
	p, q := fm.From, fm.To
	color := s.Present.Color
	d := q.Sub(p)
	_, sizeY := s.M.GetBoardSize()

	switch {
	case d.L == 0 && d.T == 0:
		s.applyPhysical(p, q, k, color, promote, sizeY)
	default:
		end := s.M.GetTimelineEnd(q.L)
		if end.T == q.T && end.Color == color {
			s.applyNonBranching(p, q, k, color, promote, sizeY)
		} else {
			s.applyBranching(p, q, k, color, promote, sizeY)
		}
	}
}

func (s *State) applyPhysical(p, q coord.Vec4, k piece.Kind, color piece.Color, promote piece.Kind, sizeY int) {
	b, _ := s.M.GetBoard(p.L, p.T, color)
	d := q.Sub(p)
	fam := k.Family()
	pawnlike := fam == piece.FamilyPawn || fam == piece.FamilyBrawn
	switch {
	case pawnlike && d.X != 0 && b.GetPiece(q.XY()).IsEmpty():
		// en passant: the captured pawn sits on p's rank, q's file.
		capSq := coord.V4(q.X, p.Y, 0, 0).XY()
		nb := b.ReplacePiece(capSq, piece.Empty).MovePiece(p.XY(), q.XY())
		s.M.AppendBoard(p.L, nb)
	case pawnlike && (q.Y == 0 || q.Y == sizeY-1):
		promoted := piece.FromFamily(promotionFamily(promote), color, false)
		nb := b.ReplacePiece(p.XY(), piece.Empty).ReplacePiece(q.XY(), promoted)
		s.M.AppendBoard(p.L, nb)
	case (fam == piece.FamilyKing || fam == piece.FamilyCommonKing) && abs(d.X) > 1:
		sizeX, _ := s.M.GetBoardSize()
		rookFrom := 0
		if d.X > 0 {
			rookFrom = sizeX - 1
		}
		rookTo := q.X - 1
		if d.X < 0 {
			rookTo = q.X + 1
		}
		nb := b.MovePiece(coord.V4(rookFrom, p.Y, 0, 0).XY(), coord.V4(rookTo, q.Y, 0, 0).XY()).
			MovePiece(p.XY(), q.XY())
		s.M.AppendBoard(p.L, nb)
	default:
		s.M.AppendBoard(p.L, b.MovePiece(p.XY(), q.XY()))
	}
}

func (s *State) applyNonBranching(p, q coord.Vec4, k piece.Kind, color piece.Color, promote piece.Kind, sizeY int) {
	bFrom, _ := s.M.GetBoard(p.L, p.T, color)
	s.M.AppendBoard(p.L, bFrom.ReplacePiece(p.XY(), piece.Empty))

	cBoard, _ := s.M.GetBoard(q.L, q.T, color)
	if k.Family() == piece.FamilyBrawn && (q.Y == 0 || q.Y == sizeY-1) {
		promoted := piece.FromFamily(promotionFamily(promote), color, false)
		s.M.AppendBoard(q.L, cBoard.ReplacePiece(q.XY(), promoted))
	} else {
		s.M.AppendBoard(q.L, cBoard.ReplacePiece(q.XY(), k.Moved()))
	}
}

func (s *State) applyBranching(p, q coord.Vec4, k piece.Kind, color piece.Color, promote piece.Kind, sizeY int) {
	bFrom, _ := s.M.GetBoard(p.L, p.T, color)
	s.M.AppendBoard(p.L, bFrom.ReplacePiece(p.XY(), piece.Empty))

	xBoard, _ := s.M.GetBoard(q.L, q.T, color)
	next := board.Turn{T: q.T, Color: color}.Next()
	newLine := s.NewLine()

	if k.Family() == piece.FamilyBrawn && (q.Y == 0 || q.Y == sizeY-1) {
		promoted := piece.FromFamily(promotionFamily(promote), color, false)
		s.M.InsertBoard(newLine, next.T, next.Color, xBoard.ReplacePiece(q.XY(), promoted))
	} else {
		s.M.InsertBoard(newLine, next.T, next.Color, xBoard.ReplacePiece(q.XY(), k.Moved()))
	}

	newPresent := s.M.GetPresent()
	if newPresent.T < s.Present.T {
		s.Present.T = newPresent.T
	}
}

// promotionFamily defaults an unspecified promotion (piece.Empty, whose
// Family() is FamilyNone) to Queen, the standard default when a caller
// applies a promoting move without naming a piece.
func promotionFamily(promote piece.Kind) piece.Family {
	if fam := promote.Family(); fam != piece.FamilyNone {
		return fam
	}
	return piece.FamilyQueen
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Submit advances Present to the multiverse's apparent present, failing
// (unless unsafe) when the mover's own color is still the one whose turn
// it apparently is — meaning a mandatory timeline still needs a move.
func (s *State) Submit(unsafe bool) bool {
	present := s.M.GetPresent()
	if !unsafe && s.Present.Color == present.Color {
		return false
	}
	s.Present = present
	return true
}

// Phantom returns a copy of s where every timeline whose tail currently
// belongs to the mover (Present.Color) has a duplicate board appended —
// a "pass" on every line the mover could otherwise move on. Mate-type
// classification uses this to test whether the opponent would be in
// check if the mover made no move at all.
func (s *State) Phantom() *State {
	ns := s.Clone()
	lMin, lMax := s.M.GetLinesRange()
	for l := lMin; l <= lMax; l++ {
		end := s.M.GetTimelineEnd(l)
		if end.Color != s.Present.Color {
			continue
		}
		b, ok := s.M.GetBoard(l, end.T, end.Color)
		if !ok {
			continue
		}
		ns.M.AppendBoard(l, *b)
	}
	return ns
}

// GetTimelineStatus classifies every existing timeline relative to
// Present into mandatory (must be moved on this half-turn), optional
// (belongs to the mover but isn't blocking submission), and unplayable
// (belongs to the opponent).
func (s *State) GetTimelineStatus() (mandatory, optional, unplayable []int) {
	return s.getTimelineStatusAt(s.Present.T, s.Present.Color)
}

func (s *State) getTimelineStatusAt(presentT int, presentColor piece.Color) (mandatory, optional, unplayable []int) {
	lMin, lMax := s.M.GetLinesRange()
	activeMin, activeMax := s.M.GetActiveRange()
	for l := lMin; l <= lMax; l++ {
		end := s.M.GetTimelineEnd(l)
		if activeMin <= l && l <= activeMax && end.T == presentT && end.Color == presentColor {
			mandatory = append(mandatory, l)
			continue
		}
		if end.Color == presentColor {
			optional = append(optional, l)
		} else {
			unplayable = append(unplayable, l)
		}
	}
	return mandatory, optional, unplayable
}

// FindChecks returns every physical-or-super-physical move available to
// color c's pieces that lands on a royal square, scanning only the lines
// where c's move is currently active and within the half of the line
// range that can plausibly reach the other color's territory.
func (s *State) FindChecks(c piece.Color) []move.Full {
	lMin, lMax := s.M.GetLinesRange()
	activeMin, activeMax := s.M.GetActiveRange()
	var pMin, pMax int
	if c == piece.Black {
		pMin, pMax = activeMin, lMax
	} else {
		pMin, pMax = lMin, activeMax
	}
	var lines []int
	for l := pMin; l <= pMax; l++ {
		if s.M.GetTimelineEnd(l).Color == c {
			lines = append(lines, l)
		}
	}
	return s.findChecksOn(c, lines)
}

func (s *State) findChecksOn(c piece.Color, lines []int) []move.Full {
	var out []move.Full
	for _, l := range lines {
		end := s.M.GetTimelineEnd(l)
		b, ok := s.M.GetBoard(l, end.T, c)
		if !ok {
			continue
		}
		friendly := b.Friendly(c) &^ b.WallBB()
		for _, src := range bitboard.MarkedPos(friendly) {
			p := coord.V4(src%8, src/8, end.T, l)
			k := b.GetPiece(src)
			for _, tgt := range movegen.AllMoves(s.M, p, c, k) {
				b1, ok := s.M.GetBoard(tgt.Board.L, tgt.Board.T, c)
				if !ok {
					continue
				}
				royal := b1.RoyalBB(piece.White) | b1.RoyalBB(piece.Black)
				hits := tgt.To & royal
				for _, dst := range bitboard.MarkedPos(hits) {
					q := coord.V4(dst%8, dst/8, tgt.Board.T, tgt.Board.L)
					out = append(out, move.Full{From: p, To: q})
				}
			}
		}
	}
	return out
}

// GenMovablePieces returns the (l,t coordinate-tagged) square of every
// friendly piece standing on a mandatory or optional timeline's active
// board, i.e. every piece the mover is currently allowed to move.
func (s *State) GenMovablePieces() []coord.Vec4 {
	mandatory, optional, _ := s.GetTimelineStatus()
	lines := append(append([]int(nil), mandatory...), optional...)
	return s.GetMovablePieces(lines)
}

// GetMovablePieces is GenMovablePieces restricted to an explicit line
// set.
func (s *State) GetMovablePieces(lines []int) []coord.Vec4 {
	var out []coord.Vec4
	color := s.Present.Color
	for _, l := range lines {
		end := s.M.GetTimelineEnd(l)
		b, ok := s.M.GetBoard(l, end.T, color)
		if !ok {
			continue
		}
		friendly := b.Friendly(color) &^ b.WallBB()
		for _, src := range bitboard.MarkedPos(friendly) {
			p := coord.V4(src%8, src/8, end.T, l)
			k := b.GetPiece(src)
			if len(movegen.AllMoves(s.M, p, color, k)) > 0 {
				out = append(out, p)
			}
		}
	}
	return out
}

// isCapture reports whether playing fm for color with piece k is a
// capture, including en passant, for notation purposes (FormatLong's
// "x" token and Matches' Capture field).
func isCapture(mv *multiverse.Multiverse, color piece.Color, k piece.Kind, fm move.Full) bool {
	p, q := fm.From, fm.To
	if !fm.IsSuperphysical() {
		b, ok := mv.GetBoard(p.L, p.T, color)
		if !ok {
			return false
		}
		d := q.Sub(p)
		fam := k.Family()
		if (fam == piece.FamilyPawn || fam == piece.FamilyBrawn) && d.X != 0 && b.GetPiece(q.XY()).IsEmpty() {
			return true // en passant
		}
		return !b.GetPiece(q.XY()).IsEmpty()
	}
	b, ok := mv.GetBoard(q.L, q.T, color)
	if !ok {
		return false
	}
	return !b.GetPiece(q.XY()).IsEmpty()
}

// ParseResult is the outcome of ParseMove: exactly one match resolves to
// Move/Promotion with Found set; zero or multiple matches leave Found
// false and list every candidate in Candidates for an "ambiguous" or
// "no such move" error message.
type ParseResult struct {
	Move       move.Full
	Promotion  piece.Kind
	Found      bool
	Candidates []move.Full
}

// ParseMove resolves a PGN move token against every currently movable
// piece's generated candidates: format each candidate in long form,
// re-parse it, and compare ASTs with notation.Matches. A single match
// wins outright; with more than one match, a move uniquely playable by a
// pawn (the common source of ambiguity against a pawn's own short
// "e4"-style notation) still resolves if it is the only pawn move among
// the matches.
func (s *State) ParseMove(text string) (ParseResult, error) {
	userAST, err := notation.Parse(text)
	if err != nil {
		return ParseResult{}, err
	}

	var matched, pawnMatched []move.Full
	var matchedPromote []piece.Kind
	for _, p := range s.GenMovablePieces() {
		k := s.M.GetPiece(p, s.Present.Color)
		for _, tgt := range movegen.AllMoves(s.M, p, s.Present.Color, k) {
			for _, sq := range bitboard.MarkedPos(tgt.To) {
				q := coord.V4(sq%8, sq/8, 0, 0).Add(tgt.Board)
				fm := move.Full{From: p, To: q}
				capture := isCapture(s.M, s.Present.Color, k, fm)
				ext := move.Ext{Full: fm}
				candidateText := notation.FormatLong(s.M, s.Present.Color, k, ext, capture)
				candidateAST, err := notation.Parse(candidateText)
				if err != nil {
					return ParseResult{}, fmt.Errorf("state: generated candidate %q did not parse back: %w", candidateText, err)
				}
				if !notation.Matches(userAST, candidateAST) {
					continue
				}
				matched = append(matched, fm)
				matchedPromote = append(matchedPromote, promotionLetter(candidateAST))
				if k.Family() == piece.FamilyPawn {
					pawnMatched = append(pawnMatched, fm)
				}
			}
		}
	}

	res := ParseResult{Candidates: matched}
	switch {
	case len(matched) == 1:
		res.Move, res.Promotion, res.Found = matched[0], matchedPromote[0], true
	case len(pawnMatched) == 1:
		for i, fm := range matched {
			if fm == pawnMatched[0] {
				res.Move, res.Promotion, res.Found = fm, matchedPromote[i], true
				break
			}
		}
	}
	return res, nil
}

// promotionLetter reads the promotion choice (if any) off a parsed
// candidate AST, resolving it to the White Kind of that letter; only its
// family is used downstream, where the mover's color is applied.
func promotionLetter(mv notation.Move) piece.Kind {
	var letter *byte
	switch {
	case mv.Physical != nil:
		letter = mv.Physical.PromoteTo
	case mv.Superphysical != nil:
		letter = mv.Superphysical.PromoteTo
	}
	if letter == nil {
		return piece.Empty
	}
	k, ok := piece.FromLetter(*letter, false)
	if !ok {
		return piece.Empty
	}
	return k
}
