package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Oliverans/fivedchess/internal/fen5d"
	"github.com/Oliverans/fivedchess/internal/hypercuboid"
	"github.com/Oliverans/fivedchess/internal/multiverse"
	"github.com/Oliverans/fivedchess/internal/state"
)

const standardFEN = "[r*n*b*q*k*b*n*r*/p*p*p*p*p*p*p*p*/8/8/8/8/P*P*P*P*P*P*P*P*/R*N*B*Q*K*B*N*R*:0:1:w]"

func main() {
	fen := flag.String("fen", standardFEN, "5D-FEN board block(s) (defaults to the standard opening board)")
	variantName := flag.String("variant", "odd", "Timeline numbering variant: odd or even")
	sizeX := flag.Int("size-x", 8, "Board width")
	sizeY := flag.Int("size-y", 8, "Board height")
	moves := flag.String("moves", "", "Semicolon-separated move/submit prefix to apply before probing ('submit' advances the turn)")
	perft := flag.Bool("perft", false, "Count the legal actions of the position")
	mate := flag.Bool("mate", false, "Classify the position (none/softmate/checkmate/stalemate)")
	suggest := flag.Bool("suggest", false, "Print the first legal action found")
	list := flag.Int("list", 0, "List up to N legal actions")
	limit := flag.Int("limit", 0, "Stop -perft after this many actions (0 = exhaustive)")
	flag.Parse()

	var variant multiverse.Variant
	switch *variantName {
	case "odd":
		variant = multiverse.Odd{}
	case "even":
		variant = multiverse.Even{}
	default:
		fmt.Fprintf(os.Stderr, "unknown variant %q\n", *variantName)
		os.Exit(2)
	}

	boards, err := fen5d.ParseAll(*fen, variant, *sizeX, *sizeY)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing 5D-FEN: %v\n", err)
		os.Exit(2)
	}
	mv, err := multiverse.New(variant, *sizeX, *sizeY, boards)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building multiverse: %v\n", err)
		os.Exit(2)
	}
	s := state.New(mv)

	for _, tok := range strings.Split(*moves, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if tok == "submit" {
			if !s.Submit(false) {
				fmt.Fprintf(os.Stderr, "cannot submit here\n")
				os.Exit(1)
			}
			continue
		}
		res, err := s.ParseMove(tok)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parsing move %q: %v\n", tok, err)
			os.Exit(1)
		}
		if !res.Found {
			fmt.Fprintf(os.Stderr, "move %q: %d candidates\n", tok, len(res.Candidates))
			os.Exit(1)
		}
		if !s.ApplyMove(res.Move, res.Promotion) {
			fmt.Fprintf(os.Stderr, "move %q rejected\n", tok)
			os.Exit(1)
		}
	}

	switch {
	case *perft:
		start := time.Now()
		n := hypercuboid.CountActions(s, *limit)
		fmt.Printf("actions=%d elapsed=%s\n", n, time.Since(start).Round(time.Millisecond))
	case *mate:
		fmt.Println(hypercuboid.GetMateType(s))
	case *suggest:
		act, ok := hypercuboid.SuggestAction(s)
		if !ok {
			fmt.Println("no legal action")
			os.Exit(1)
		}
		fmt.Println(strings.TrimSpace(act.String()))
	case *list > 0:
		it := hypercuboid.SearchLegalActions(s)
		for i := 0; i < *list; i++ {
			act, ok := it.Next()
			if !ok {
				break
			}
			fmt.Println(strings.TrimSpace(act.String()))
		}
	default:
		fmt.Println(fen5d.FormatAll(variant, currentBoards(s), true))
	}
}

// currentBoards flattens the state back into per-board blocks, tails
// last, for the default round-trip output mode.
func currentBoards(s *state.State) []multiverse.BoardInfo {
	var out []multiverse.BoardInfo
	for _, l := range s.M.Lines() {
		start := s.M.GetTimelineStart(l)
		end := s.M.GetTimelineEnd(l)
		for turn := start; !end.Less(turn); turn = turn.Next() {
			if b, ok := s.M.GetBoard(l, turn.T, turn.Color); ok {
				out = append(out, multiverse.BoardInfo{L: l, T: turn.T, Color: turn.Color, Board: *b})
			}
		}
	}
	return out
}
