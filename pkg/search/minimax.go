// Package search contains the depth-limited alpha-beta search over positions.
package search

import (
	"sort"

	"github.com/herohde/diomede/pkg/board"
	"github.com/herohde/diomede/pkg/eval"
)

// RankedMove pairs a root successor with its backed-up search score.
type RankedMove struct {
	Position board.Position
	Score    eval.Score
}

// Minimax scores every legal move from the root with alpha-beta pruning and
// returns the successors sorted best-first, ties kept in generation order.
// The root's side to move is the maximizer. An empty list means the root has
// no legal moves. Pseudo-code:
//
//	function alphabeta(node, depth, α, β, maximizingPlayer) is
//
//	if depth = 0 or node is a terminal node then
//	    return the heuristic value of node
//	if maximizingPlayer then
//	    value := −∞
//	    for each child of node do
//	        value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
//	        α := max(α, value)
//	        if value > β then
//	            break (* β cutoff *)
//	    return value
//	else
//	    value := +∞
//	    for each child of node do
//	        value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
//	        β := min(β, value)
//	        if value < α then
//	            break (* α cutoff *)
//	    return value
//
// See: https://en.wikipedia.org/wiki/Alpha–beta_pruning.
func Minimax(mm *board.MoveMap, s eval.Settings, root *board.Position) []RankedMove {
	moves := root.Successors(mm)

	ranked := make([]RankedMove, 0, len(moves))
	for i := range moves {
		score := alphabeta(&moves[i], mm, s, s.SearchDepth, false, eval.NegInfScore, eval.InfScore)
		ranked = append(ranked, RankedMove{Position: moves[i], Score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// BestMoves runs Minimax with the default settings at the dynamic depth for
// the position.
func BestMoves(mm *board.MoveMap, root *board.Position) []RankedMove {
	s := eval.NewSettingsDepth(eval.DynamicDepth(root))
	return Minimax(mm, s, root)
}

// alphabeta returns the score of the position from the perspective of the
// root's mover. The static evaluator always scores for the side to move, so
// minimizing leaves negate it. Terminal nodes score 0 for stalemate and a
// depth-adjusted infinity for checkmate, preferring mates in fewer plies.
func alphabeta(pos *board.Position, mm *board.MoveMap, s eval.Settings, depth int, maximizing bool, alpha, beta eval.Score) eval.Score {
	if depth == 0 {
		if maximizing {
			return eval.Evaluate(pos, mm, s)
		}
		return -eval.Evaluate(pos, mm, s)
	}

	children := pos.Successors(mm)
	if len(children) == 0 {
		if !pos.IsChecked(mm, pos.Turn()) {
			return 0 // stalemate
		}
		if maximizing {
			return eval.NegInfScore + eval.Score(s.SearchDepth-depth)
		}
		return eval.InfScore - eval.Score(s.SearchDepth-depth)
	}

	if maximizing {
		value := eval.NegInfScore
		for i := range children {
			score := alphabeta(&children[i], mm, s, depth-1, false, alpha, beta)
			if score > value {
				value = score
			}
			if value > beta {
				break // beta cutoff
			}
			if value > alpha {
				alpha = value
			}
		}
		return value
	}

	value := eval.InfScore
	for i := range children {
		score := alphabeta(&children[i], mm, s, depth-1, true, alpha, beta)
		if score < value {
			value = score
		}
		if value < alpha {
			break // alpha cutoff
		}
		if value < beta {
			beta = value
		}
	}
	return value
}
