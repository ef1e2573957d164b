// Package game is the façade layer on top of position and movegen: it owns
// whose turn it is, the move history needed to undo, and the terminal-state
// check (ongoing/checkmate/stalemate). Repetition and the fifty-move rule
// are out of scope, unlike the teacher's second-generation Game, which
// tracked both via a FEN-keyed repetition map.
package game

import (
	"fmt"

	"github.com/datavorous/touchgrass/bitboard"
	"github.com/datavorous/touchgrass/movegen"
	"github.com/datavorous/touchgrass/position"
)

// ErrIllegalMove is returned by MakeMove when the candidate move is not in
// the current legal move list.
var ErrIllegalMove = fmt.Errorf("game: illegal move")

// State is the outcome of game_state(): whether play continues, and if not,
// who won or whether it was a draw by stalemate.
type State int

const (
	Ongoing State = iota
	CheckmateWhite
	CheckmateBlack
	Stalemate
)

func (s State) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case CheckmateWhite:
		return "checkmate_white"
	case CheckmateBlack:
		return "checkmate_black"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// playedMove is one entry in the undo history: the record Apply produced,
// plus whose move it was, so UndoLast can hand the turn back correctly.
type playedMove struct {
	record position.MoveRecord
	mover  bitboard.Color
}

// Game pairs a Board with whose turn it is and the moves played so far.
// Unlike the teacher's Game, which reconstructed prior positions by
// reparsing stored FEN strings on undo, this keeps position.MoveRecord
// values and calls Board.Undo directly — cheaper and exact, since Apply
// already captures everything Undo needs.
type Game struct {
	Board      position.Board
	SideToMove bitboard.Color
	history    []playedMove
	legal      []position.Move
}

// NewGame returns a Game starting from the standard opening position.
func NewGame() *Game {
	g := &Game{
		Board:      position.NewBoard(),
		SideToMove: bitboard.White,
	}
	g.refreshLegalMoves()
	return g
}

// NewGameFromPosition returns a Game starting from an arbitrary board and
// side to move, as set up by a UCI "position fen ..." command.
func NewGameFromPosition(b position.Board, side bitboard.Color) *Game {
	g := &Game{Board: b, SideToMove: side}
	g.refreshLegalMoves()
	return g
}

func (g *Game) refreshLegalMoves() {
	g.legal = movegen.LegalMoves(g.Board, g.SideToMove)
}

// LegalMoves returns the legal moves for the side to move in the current
// position.
func (g *Game) LegalMoves() []position.Move {
	return g.legal
}

// MakeMove applies m if it is legal for the side to move, flips whose turn
// it is, and records the move so UndoLast can reverse it. Returns
// ErrIllegalMove without mutating the game if m is not legal.
func (g *Game) MakeMove(m position.Move) error {
	found := false
	for _, candidate := range g.legal {
		if candidate == m {
			found = true
			break
		}
	}
	if !found {
		return ErrIllegalMove
	}

	rec, err := g.Board.Apply(m)
	if err != nil {
		// LegalMoves only ever contains moves Apply accepts; reaching
		// this would mean movegen and position have drifted apart.
		return fmt.Errorf("game: legal move rejected by Apply: %w", err)
	}

	g.history = append(g.history, playedMove{record: rec, mover: g.SideToMove})
	g.SideToMove = g.SideToMove.Opposite()
	g.refreshLegalMoves()
	return nil
}

// UndoLast reverses the most recently played move. Reports false if there
// is no move to undo.
func (g *Game) UndoLast() bool {
	if len(g.history) == 0 {
		return false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.Board.Undo(last.record)
	g.SideToMove = last.mover
	g.refreshLegalMoves()
	return true
}

// GameState reports the terminal status of the current position. Side to
// move is evaluated BEFORE any further flip happens (MakeMove already
// flipped it when the position was reached), so a non-empty legal move
// list always means the side about to move still has somewhere to go.
func (g *Game) GameState() State {
	if len(g.legal) > 0 {
		return Ongoing
	}
	if movegen.InCheck(&g.Board, g.SideToMove) {
		// The side to move is the one mated; the state names the winner.
		if g.SideToMove == bitboard.White {
			return CheckmateBlack
		}
		return CheckmateWhite
	}
	return Stalemate
}
