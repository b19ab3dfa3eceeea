// Package fen5d parses and formats 5D-FEN board blocks:
// `[<rank-major-position>:<l-sign><l-number>:<t-number>:<w|b>]`, one
// bracketed block per board in a match's starting position. The position
// token itself reuses internal/board's FEN grammar; this package only
// handles the bracket wrapper and the timeline/turn/color fields around
// it, delegating the l-sign/l-number encoding to whichever
// multiverse.Variant the match is using, since Odd and Even variants
// disagree about what a negative line number means.
package fen5d

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/piece"
)

// ParseBlock decodes a single bracketed board block, e.g.
// "[rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR*:+0:1:w]", into a
// multiverse.BoardInfo. The brackets are optional on input so callers can
// pass either a full block or its inner fields.
func ParseBlock(block string, variant multiverse.Variant, sizeX, sizeY int) (multiverse.BoardInfo, error) {
	inner := strings.TrimSpace(block)
	inner = strings.TrimPrefix(inner, "[")
	inner = strings.TrimSuffix(inner, "]")

	fields := strings.Split(inner, ":")
	if len(fields) != 4 {
		return multiverse.BoardInfo{}, fmt.Errorf("fen5d: board block %q has %d fields, want 4", block, len(fields))
	}
	posTok, lTok, tTok, cTok := fields[0], fields[1], fields[2], fields[3]

	b, err := board.Parse(posTok, sizeX, sizeY)
	if err != nil {
		return multiverse.BoardInfo{}, fmt.Errorf("fen5d: %w", err)
	}

	l, err := variant.ParseL(lTok)
	if err != nil {
		return multiverse.BoardInfo{}, fmt.Errorf("fen5d: %w", err)
	}

	t, err := strconv.Atoi(tTok)
	if err != nil {
		return multiverse.BoardInfo{}, fmt.Errorf("fen5d: bad turn number %q: %w", tTok, err)
	}

	var c piece.Color
	switch cTok {
	case "w":
		c = piece.White
	case "b":
		c = piece.Black
	default:
		return multiverse.BoardInfo{}, fmt.Errorf("fen5d: bad color token %q, want \"w\" or \"b\"", cTok)
	}

	return multiverse.BoardInfo{L: l, T: t, Color: c, Board: b}, nil
}

// ParseAll scans s for consecutive bracketed board blocks and decodes
// each, in source order, skipping whitespace between them. An unmatched
// '[' with no closing ']' is a parse error.
func ParseAll(s string, variant multiverse.Variant, sizeX, sizeY int) ([]multiverse.BoardInfo, error) {
	var out []multiverse.BoardInfo
	rest := s
	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return out, nil
		}
		if rest[0] != '[' {
			return nil, fmt.Errorf("fen5d: expected '[' at %q", rest)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("fen5d: unterminated board block %q", rest)
		}
		bi, err := ParseBlock(rest[:end+1], variant, sizeX, sizeY)
		if err != nil {
			return nil, err
		}
		out = append(out, bi)
		rest = rest[end+1:]
	}
}

// FormatBlock renders a BoardInfo as a single bracketed 5D-FEN board
// block, the inverse of ParseBlock given the same variant.
func FormatBlock(variant multiverse.Variant, bi multiverse.BoardInfo, showUmove bool) string {
	return fmt.Sprintf("[%s:%s:%d:%s]", bi.Board.FEN(showUmove), variant.PrettyL(bi.L), bi.T, bi.Color.String())
}

// FormatAll renders a sequence of BoardInfo values as consecutive
// bracketed blocks with no separator, matching the concatenated-blocks
// shape ParseAll consumes.
func FormatAll(variant multiverse.Variant, boards []multiverse.BoardInfo, showUmove bool) string {
	var sb strings.Builder
	for _, bi := range boards {
		sb.WriteString(FormatBlock(variant, bi, showUmove))
	}
	return sb.String()
}
