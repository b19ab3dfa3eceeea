package notation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// pieceLetterClass mirrors piece.Kind's letter alphabet, minus Wall,
// which never appears in a move.
const pieceLetterClass = "KQRBNPUDXSYC"

var (
	absBoardBody = `\(L?([+-]?\d+)T(\d+)\)`
	relBoardBody = `\$\(L?(=|[+-]\d+)(?:T(=|[+-]\d+))?\)`

	absBoardRe = regexp.MustCompile(`^` + absBoardBody + `$`)
	relBoardRe = regexp.MustCompile(`^` + relBoardBody + `$`)

	castleRe = regexp.MustCompile(`^(?:(` + absBoardBody + `))?(O-O-O|O-O)$`)

	physicalRe = regexp.MustCompile(
		`^(?:(` + absBoardBody + `))?` +
			`([` + pieceLetterClass + `])?` +
			`([a-h])?([1-8])?` +
			`(x)?` +
			`([a-h])([1-8])` +
			`(?:=([` + pieceLetterClass + `]))?$`)

	superphysicalRe = regexp.MustCompile(
		`^(?:(` + absBoardBody + `))?` +
			`([` + pieceLetterClass + `])?` +
			`([a-h])?([1-8])?` +
			`(>>|>)` +
			`(x)?` +
			`(` + absBoardBody + `|` + relBoardBody + `)` +
			`([a-h])([1-8])` +
			`(?:=([` + pieceLetterClass + `]))?$`)
)

// Parse decodes a single PGN move token (no turn-serial prefix, no
// trailing check/mate/evaluation suffix — callers strip those first) into
// a Move AST.
func Parse(s string) (Move, error) {
	if m := castleRe.FindStringSubmatch(s); m != nil {
		board, err := parseAbsBoardMatch(m[1])
		if err != nil {
			return Move{}, err
		}
		castle := Kingside
		if m[4] == "O-O-O" {
			castle = Queenside
		}
		return Move{Physical: &PhysicalMove{Board: board, Castle: castle}}, nil
	}

	if m := superphysicalRe.FindStringSubmatch(s); m != nil {
		return parseSuperphysical(m)
	}

	if m := physicalRe.FindStringSubmatch(s); m != nil {
		return parsePhysical(m)
	}

	return Move{}, fmt.Errorf("notation: cannot parse move %q", s)
}

func parsePhysical(m []string) (Move, error) {
	// Submatch indices follow physicalRe's group order:
	// 1:absBoard-whole 2:line 3:time 4:piece 5:fromFile 6:fromRank
	// 7:capture 8:toFile 9:toRank 10:promote
	board, err := parseAbsBoardMatch(m[1])
	if err != nil {
		return Move{}, err
	}
	pm := &PhysicalMove{
		Board:     board,
		PieceName: optByte(m[4]),
		FromFile:  optByte(m[5]),
		FromRank:  optByte(m[6]),
		Capture:   m[7] == "x",
		ToFile:    m[8][0],
		ToRank:    m[9][0],
		PromoteTo: optByte(m[10]),
	}
	return Move{Physical: pm}, nil
}

func parseSuperphysical(m []string) (Move, error) {
	// Group numbering (by position of each '(' in superphysicalRe):
	// 1:fromBoard-whole 2:fromBoard-line 3:fromBoard-time 4:piece
	// 5:fromFile 6:fromRank 7:jump 8:capture 9:toBoard-whole
	// (10-13: toBoard's own nested groups, read directly off the
	// toBoard-whole string instead of by index) 14:toFile 15:toRank
	// 16:promote.
	fromBoard, err := parseAbsBoardMatch(m[1])
	if err != nil {
		return Move{}, err
	}
	jump := NonBranchingJump
	if m[7] == ">>" {
		jump = BranchingJump
	}

	sm := &SuperphysicalMove{
		FromBoard: fromBoard,
		PieceName: optByte(m[4]),
		FromFile:  optByte(m[5]),
		FromRank:  optByte(m[6]),
		Jump:      jump,
		Capture:   m[8] == "x",
		ToFile:    m[14][0],
		ToRank:    m[15][0],
		PromoteTo: optByte(m[16]),
	}

	toBoard := m[9]
	if strings.HasPrefix(toBoard, "$") {
		rb, err := parseRelBoardMatch(toBoard)
		if err != nil {
			return Move{}, err
		}
		sm.ToRel = rb
	} else {
		ab, err := parseAbsBoardMatch(toBoard)
		if err != nil {
			return Move{}, err
		}
		sm.ToAbs = ab
	}
	return Move{Superphysical: sm}, nil
}

// parseAbsBoardMatch parses the whole "(...)" token (or "" for absent)
// captured by absBoardBody as a sub-expression of a larger pattern: it
// re-runs absBoardRe against it to recover the line/time digit groups,
// since Go's regexp package numbers capture groups positionally across
// the whole pattern rather than letting a sub-pattern be reused.
func parseAbsBoardMatch(whole string) (*AbsBoard, error) {
	if whole == "" {
		return nil, nil
	}
	m := absBoardRe.FindStringSubmatch(whole)
	if m == nil {
		return nil, fmt.Errorf("notation: malformed board tag %q", whole)
	}
	line, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fmt.Errorf("notation: bad line in board tag %q: %w", whole, err)
	}
	time, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, fmt.Errorf("notation: bad time in board tag %q: %w", whole, err)
	}
	return &AbsBoard{Line: &line, Time: &time}, nil
}

func parseRelBoardMatch(whole string) (*RelBoard, error) {
	m := relBoardRe.FindStringSubmatch(whole)
	if m == nil {
		return nil, fmt.Errorf("notation: malformed relative board tag %q", whole)
	}
	rb := &RelBoard{}
	if m[1] == "=" {
		rb.LineSame = true
	} else {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("notation: bad line delta in %q: %w", whole, err)
		}
		rb.LineDelta = &n
	}
	if m[2] != "" {
		rb.HasTime = true
		if m[2] == "=" {
			rb.TimeSame = true
		} else {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("notation: bad time delta in %q: %w", whole, err)
			}
			rb.TimeDelta = &n
		}
	}
	return rb, nil
}

func optByte(s string) *byte {
	if s == "" {
		return nil
	}
	b := s[0]
	return &b
}
