package fen5d

import (
	"testing"

	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/piece"
)

func TestParseBlockRoundTripsOddVariant(t *testing.T) {
	block := "[8/8/8/8/8/8/8/R7:0:1:w]"
	bi, err := ParseBlock(block, multiverse.Odd{}, 8, 8)
	if err != nil {
		t.Fatalf("ParseBlock: %v", err)
	}
	if bi.L != 0 || bi.T != 1 || bi.Color != piece.White {
		t.Fatalf("ParseBlock(%q) = %+v, want L=0 T=1 White", block, bi)
	}
	if got := FormatBlock(multiverse.Odd{}, bi, false); got != block {
		t.Fatalf("FormatBlock round trip = %q, want %q", got, block)
	}
}

func TestParseBlockNegativeLineOddVariant(t *testing.T) {
	bi, err := ParseBlock("[8/8/8/8/8/8/8/8:-2:0:b]", multiverse.Odd{}, 8, 8)
	if err != nil {
		t.Fatalf("ParseBlock: %v", err)
	}
	if bi.L != -2 {
		t.Fatalf("L = %d, want -2", bi.L)
	}
}

func TestParseBlockEvenVariantBlackSideZero(t *testing.T) {
	bi, err := ParseBlock("[8/8/8/8/8/8/8/8:-0:0:b]", multiverse.Even{}, 8, 8)
	if err != nil {
		t.Fatalf("ParseBlock: %v", err)
	}
	if bi.L != -1 {
		t.Fatalf("even variant \"-0\" decoded to L=%d, want -1 (black-side zero)", bi.L)
	}
	if got := FormatBlock(multiverse.Even{}, bi, false); got != "[8/8/8/8/8/8/8/8:-0:0:b]" {
		t.Fatalf("FormatBlock round trip = %q", got)
	}
}

func TestParseBlockRejectsWrongFieldCount(t *testing.T) {
	if _, err := ParseBlock("[8/8/8/8/8/8/8/8:0:0]", multiverse.Odd{}, 8, 8); err == nil {
		t.Fatalf("expected an error for a block missing its color field")
	}
}

func TestParseBlockRejectsBadColorToken(t *testing.T) {
	if _, err := ParseBlock("[8/8/8/8/8/8/8/8:0:0:x]", multiverse.Odd{}, 8, 8); err == nil {
		t.Fatalf("expected an error for an invalid color token")
	}
}

func TestParseAllDecodesConsecutiveBlocks(t *testing.T) {
	s := "[8/8/8/8/8/8/8/R7:0:0:w][8/8/8/8/8/8/8/r7:1:0:w]"
	bis, err := ParseAll(s, multiverse.Odd{}, 8, 8)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(bis) != 2 {
		t.Fatalf("ParseAll decoded %d blocks, want 2", len(bis))
	}
	if bis[0].L != 0 || bis[1].L != 1 {
		t.Fatalf("ParseAll lines = %d, %d, want 0, 1", bis[0].L, bis[1].L)
	}
}

func TestParseAllRejectsUnterminatedBlock(t *testing.T) {
	if _, err := ParseAll("[8/8/8/8/8/8/8/8:0:0:w", multiverse.Odd{}, 8, 8); err == nil {
		t.Fatalf("expected an error for an unterminated block")
	}
}

func TestFormatAllConcatenatesBlocks(t *testing.T) {
	s := "[8/8/8/8/8/8/8/R7:0:0:w][8/8/8/8/8/8/8/r7:1:0:w]"
	bis, err := ParseAll(s, multiverse.Odd{}, 8, 8)
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if got := FormatAll(multiverse.Odd{}, bis, false); got != s {
		t.Fatalf("FormatAll = %q, want %q", got, s)
	}
}
