// Package search is a stand-in for the search/evaluation engine, which is
// explicitly out of scope for this core (see spec.md §1: it is an
// "external collaborator" that "consumes only legal_moves(color) and
// apply/undo"). BestMove satisfies the one thing the UCI "go" command
// needs from it — something to print as bestmove — without implementing
// any actual chess strength.
package search

import "github.com/datavorous/touchgrass/position"

// BestMove picks a move from legal to report as the engine's reply. It
// always returns the first legal move in generation order: there is no
// evaluation here, only enough behavior to keep the UCI loop's data flow
// complete. A real search would replace this function's body, not its
// signature.
func BestMove(legal []position.Move) (position.Move, bool) {
	if len(legal) == 0 {
		return 0, false
	}
	return legal[0], true
}
