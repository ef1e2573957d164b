package game

import (
	"testing"

	"github.com/datavorous/touchgrass/bitboard"
	"github.com/datavorous/touchgrass/fen"
	"github.com/datavorous/touchgrass/position"
)

func TestMain(m *testing.M) {
	bitboard.Init()
	m.Run()
}

func TestNewGameOngoing(t *testing.T) {
	g := NewGame()
	if g.GameState() != Ongoing {
		t.Fatalf("starting position state = %v, want ongoing", g.GameState())
	}
	if len(g.LegalMoves()) != 20 {
		t.Fatalf("starting position has %d legal moves, want 20", len(g.LegalMoves()))
	}
}

func TestMakeMoveFlipsTurnAndUndoRestores(t *testing.T) {
	g := NewGame()
	before := g.Board

	var e2e4 position.Move
	found := false
	for _, m := range g.LegalMoves() {
		if m.From().String() == "e2" && m.To().String() == "e4" {
			e2e4 = m
			found = true
		}
	}
	if !found {
		t.Fatalf("e2e4 not found among legal moves")
	}

	if err := g.MakeMove(e2e4); err != nil {
		t.Fatalf("MakeMove(e2e4) returned error: %v", err)
	}
	if g.SideToMove != bitboard.Black {
		t.Fatalf("side to move = %v, want black", g.SideToMove)
	}

	if !g.UndoLast() {
		t.Fatalf("UndoLast() = false, want true")
	}
	if g.SideToMove != bitboard.White {
		t.Fatalf("side to move after undo = %v, want white", g.SideToMove)
	}
	if g.Board != before {
		t.Fatalf("board after undo does not match the pre-move board")
	}
}

func TestMakeMoveRejectsIllegalMove(t *testing.T) {
	g := NewGame()
	bogus := position.NewMove(bitboard.ParseSquare("e2"), bitboard.ParseSquare("e5"), 0, position.Normal)
	if err := g.MakeMove(bogus); err != ErrIllegalMove {
		t.Fatalf("MakeMove(bogus) = %v, want ErrIllegalMove", err)
	}
}

// Fool's mate: the shortest possible path to checkmate, used by the spec to
// exercise the checkmate_<winner> path.
func TestFoolsMateCheckmate(t *testing.T) {
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}
	g := NewGame()
	for _, uci := range moves {
		m, ok := findMove(g, uci)
		if !ok {
			t.Fatalf("move %q not found among legal moves", uci)
		}
		if err := g.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%q) returned error: %v", uci, err)
		}
	}
	if g.GameState() != CheckmateBlack {
		t.Fatalf("state after fool's mate = %v, want checkmate_black", g.GameState())
	}
}

func TestStalemate(t *testing.T) {
	res, err := fen.Parse("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	g := NewGameFromPosition(res.Board, res.SideToMove)
	if g.GameState() != Stalemate {
		t.Fatalf("state = %v, want stalemate", g.GameState())
	}
}

func findMove(g *Game, uci string) (position.Move, bool) {
	from := bitboard.ParseSquare(uci[0:2])
	to := bitboard.ParseSquare(uci[2:4])
	for _, m := range g.LegalMoves() {
		if m.From() == from && m.To() == to {
			return m, true
		}
	}
	return position.Move(0), false
}
