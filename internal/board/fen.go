package board

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Oliverans/fivedchess/internal/piece"
)

// ErrBadFEN reports a malformed board string: wrong rank count, unknown
// piece letter, or an out-of-range digit run.
var ErrBadFEN = errors.New("board: malformed FEN")

// Parse parses a `/`-separated rank-major board string (ranks ordered
// high-to-low, top-to-bottom) of the given size. Uppercase letters are
// White, lowercase Black, digits compress empty runs, a `*` suffix on a
// piece letter marks it unmoved, and `w`/`W` denote black/white wall
// squares.
func Parse(fen string, sizeX, sizeY int) (Board, error) {
	b := New(sizeX, sizeY)
	ranks := strings.Split(fen, "/")
	if len(ranks) != sizeY {
		return Board{}, ErrBadFEN
	}
	for i, rankStr := range ranks {
		rank := sizeY - 1 - i // ranks are given top-to-bottom, i.e. high-to-low
		file := 0
		runes := []rune(rankStr)
		for j := 0; j < len(runes); j++ {
			ch := runes[j]
			switch {
			case ch >= '1' && ch <= '9':
				n := int(ch - '0')
				file += n
			case ch == 'w' || ch == 'W':
				// Wall squares never move and absorb piece-list queries
				// trivially regardless of letter case; the color
				// distinction the grammar allows is not tracked since
				// nothing in the engine consults it.
				if file >= sizeX {
					return Board{}, ErrBadFEN
				}
				b.setRaw(rank*8+file, piece.Wall)
				file++
			default:
				if file >= sizeX {
					return Board{}, ErrBadFEN
				}
				unmoved := j+1 < len(runes) && runes[j+1] == '*'
				k, ok := piece.FromLetter(byte(ch), unmoved)
				if !ok {
					return Board{}, ErrBadFEN
				}
				b.setRaw(rank*8+file, k)
				file++
				if unmoved {
					j++
				}
			}
		}
		if file != sizeX {
			return Board{}, ErrBadFEN
		}
	}
	return b, nil
}

// FEN serializes the board: ranks top-to-bottom, files a through h, runs
// of empty squares compressed to a digit. showUmove additionally appends
// `*` to any piece still carrying its unmoved flag.
func (b *Board) FEN(showUmove bool) string {
	var sb strings.Builder
	for i := 0; i < b.sizeY; i++ {
		rank := b.sizeY - 1 - i
		empties := 0
		for file := 0; file < b.sizeX; file++ {
			k := b.squares[rank*8+file]
			if k == piece.Empty {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			if k == piece.Wall {
				sb.WriteByte('w')
				continue
			}
			letter := k.Letter()
			if k.Color() == piece.White {
				sb.WriteByte(letter)
			} else {
				sb.WriteByte(letter - 'A' + 'a')
			}
			if showUmove && k.IsUnmoved() {
				sb.WriteByte('*')
			}
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		if i != b.sizeY-1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
