package hypercuboid

import (
	"testing"

	"github.com/Oliverans/fivedchess/internal/board"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/piece"
	"github.com/Oliverans/fivedchess/internal/state"
)

func benchState(b *testing.B, fen string) *state.State {
	b.Helper()
	bd, err := board.Parse(fen, 8, 8)
	if err != nil {
		b.Fatalf("board.Parse: %v", err)
	}
	mv, err := multiverse.New(multiverse.Odd{}, 8, 8, []multiverse.BoardInfo{{L: 0, T: 0, Color: piece.White, Board: bd}})
	if err != nil {
		b.Fatalf("multiverse.New: %v", err)
	}
	return state.New(mv)
}

func benchEnumerate(b *testing.B, fen string) {
	s := benchState(b, fen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := SearchLegalActions(s)
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkEnumerate_Initial(b *testing.B) {
	benchEnumerate(b, "r*n*b*q*k*b*n*r*/p*p*p*p*p*p*p*p*/8/8/8/8/P*P*P*P*P*P*P*P*/R*N*B*Q*K*B*N*R*")
}

func BenchmarkEnumerate_RookEndgame(b *testing.B) {
	benchEnumerate(b, "4k3/8/8/8/8/8/8/R3K3")
}

func BenchmarkBuild_Initial(b *testing.B) {
	s := benchState(b, "r*n*b*q*k*b*n*r*/p*p*p*p*p*p*p*p*/8/8/8/8/P*P*P*P*P*P*P*P*/R*N*B*Q*K*B*N*R*")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(s)
	}
}
