package bitboard

import "testing"

func sq(file, rank int) int { return rank*8 + file }

func TestKnightAttackCorners(t *testing.T) {
	got := KnightAttack(sq(0, 0))
	want := uint64(0)
	want |= uint64(1) << uint(sq(2, 1))
	want |= uint64(1) << uint(sq(1, 2))
	if got != want {
		t.Fatalf("a1 knight attack = %064b, want %064b", got, want)
	}
}

func TestKingAttackCenter(t *testing.T) {
	got := KingAttack(sq(4, 4))
	if got == 0 {
		t.Fatalf("expected nonzero king attack from center square")
	}
	if n := popcount(got); n != 8 {
		t.Fatalf("expected 8 king attacks from a central square, got %d", n)
	}
}

func popcount(b uint64) int {
	n := 0
	for b != 0 {
		n++
		b &= b - 1
	}
	return n
}

func TestRookCopyMaskEdges(t *testing.T) {
	// From a1, radius 7 should only reach h1 and a8, never wrap.
	m := RookCopyMask(sq(0, 0), 7)
	want := uint64(1)<<uint(sq(7, 0)) | uint64(1)<<uint(sq(0, 7))
	if m != want {
		t.Fatalf("a1 rook copy mask radius 7 = %064b, want %064b", m, want)
	}
}

func TestBishopCopyMaskFromCenter(t *testing.T) {
	m := BishopCopyMask(sq(4, 4), 2)
	want := uint64(0)
	want |= uint64(1) << uint(sq(6, 6))
	want |= uint64(1) << uint(sq(2, 6))
	want |= uint64(1) << uint(sq(6, 2))
	want |= uint64(1) << uint(sq(2, 2))
	if m != want {
		t.Fatalf("e5 bishop copy mask radius 2 = %064b, want %064b", m, want)
	}
}

func TestRookAttackBlockedByOccupancy(t *testing.T) {
	occ := uint64(1) << uint(sq(4, 2)) // e3
	got := RookAttack(sq(4, 0), occ)   // e1 rook, blocker at e3
	if got&(uint64(1)<<uint(sq(4, 3))) != 0 {
		t.Fatalf("rook attack should not pass through a blocker")
	}
	if got&(uint64(1)<<uint(sq(4, 2))) == 0 {
		t.Fatalf("rook attack should include the blocker's own square")
	}
}

func TestWhiteBlackPawnAttacksAreMirrored(t *testing.T) {
	w := WhitePawnAttack(sq(4, 3))
	b := BlackPawnAttack(sq(4, 4))
	want := uint64(1)<<uint(sq(3, 4)) | uint64(1)<<uint(sq(5, 4))
	if w != want {
		t.Fatalf("white pawn attack from e4 = %064b, want %064b", w, want)
	}
	wantB := uint64(1)<<uint(sq(3, 3)) | uint64(1)<<uint(sq(5, 3))
	if b != wantB {
		t.Fatalf("black pawn attack from e5 = %064b, want %064b", b, wantB)
	}
}

func TestMarkedPosDescending(t *testing.T) {
	b := uint64(1)<<3 | uint64(1)<<10 | uint64(1)<<63
	got := MarkedPos(b)
	want := []int{63, 10, 3}
	if len(got) != len(want) {
		t.Fatalf("MarkedPos length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MarkedPos = %v, want %v", got, want)
		}
	}
}

func TestBBGetPosEmpty(t *testing.T) {
	if p := BBGetPos(0); p != -1 {
		t.Fatalf("BBGetPos(0) = %d, want -1", p)
	}
}
