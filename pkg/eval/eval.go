// Package eval contains the static position evaluation and its settings.
package eval

import (
	"fmt"
	"math"

	"github.com/herohde/diomede/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// Score is a signed position score in centi-pawns, from the perspective of
// the side to move. The infinities are reserved for forced mates. 32 bits.
type Score int32

const (
	InfScore    Score = math.MaxInt32
	NegInfScore Score = math.MinInt32
)

// Settings hold the search depth and the evaluation weights. The zero-depth
// defaults mirror the classical piece values with a mild positional flavor.
type Settings struct {
	SearchDepth int

	PawnValue   Score
	RookValue   Score
	KnightValue Score
	BishopValue Score
	QueenValue  Score
	KingValue   Score

	CheckValue   Score
	PositionMult Score
	AttackDiv    Score
}

// NewSettings returns the default weights with a zero search depth.
func NewSettings() Settings {
	return Settings{
		SearchDepth:  0,
		PawnValue:    100,
		RookValue:    563,
		KnightValue:  305,
		BishopValue:  333,
		QueenValue:   950,
		KingValue:    0,
		CheckValue:   90,
		PositionMult: 10,
		AttackDiv:    25,
	}
}

// NewSettingsDepth returns the default weights at the given search depth.
func NewSettingsDepth(depth int) Settings {
	s := NewSettings()
	s.SearchDepth = mathx.Max(0, depth)
	return s
}

// PieceValue returns the configured value of the piece, either color.
func PieceValue(p board.Piece, s Settings) Score {
	switch p.Kind() {
	case board.Rook:
		return s.RookValue
	case board.Knight:
		return s.KnightValue
	case board.Bishop:
		return s.BishopValue
	case board.Queen:
		return s.QueenValue
	case board.King:
		return s.KingValue
	case board.Pawn:
		return s.PawnValue
	default:
		return 0
	}
}

// Terms is the per-term breakdown of a static evaluation.
type Terms struct {
	Material Score
	Check    Score
	Position Score
	Attacked Score
}

func (t Terms) Total() Score {
	return t.Material + t.Check + t.Position + t.Attacked
}

func (t Terms) String() string {
	return fmt.Sprintf("total=%v (material=%v, check=%v, position=%v, attacked=%v)", t.Total(), t.Material, t.Check, t.Position, t.Attacked)
}

// Evaluate returns the static score of the position from the side-to-move
// perspective. Deterministic and side-effect free.
func Evaluate(pos *board.Position, mm *board.MoveMap, s Settings) Score {
	return EvaluateTerms(pos, mm, s).Total()
}

// EvaluateTerms computes the four evaluation terms for the side to move:
// material balance, an opponent-in-check bonus, center control for own
// pieces, and a penalty for own pieces under attack.
func EvaluateTerms(pos *board.Position, mm *board.MoveMap, s Settings) Terms {
	turn := pos.Turn()
	var t Terms

	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		piece := pos.At(sq)
		if !piece.IsValid() {
			continue
		}
		v := PieceValue(piece, s)
		if piece.Color() != turn {
			t.Material -= v
			continue
		}
		t.Material += v
		t.Position += centrality(sq)
		if pos.IsAttacked(mm, sq) {
			t.Attacked -= v
		}
	}

	t.Position *= s.PositionMult
	t.Attacked /= s.AttackDiv
	if pos.IsChecked(mm, turn.Opponent()) {
		t.Check = s.CheckValue
	}
	return t
}

// centrality scores a square 0-6 by how close it is to the board center.
func centrality(sq board.Square) Score {
	row, col := sq.Row(), sq.Col()
	return Score(min(row, 7-row) + min(col, 7-col))
}

// DynamicDepth suggests a search depth from the material complexity of the
// position: pawns weigh 1, other pieces 4 and kings 0, so depth grows as the
// board empties.
func DynamicDepth(pos *board.Position) int {
	complexity := 0
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		piece := pos.At(sq)
		if !piece.IsValid() {
			continue
		}
		switch piece.Kind() {
		case board.Pawn:
			complexity++
		case board.King:
			// free
		default:
			complexity += 4
		}
	}

	switch {
	case complexity <= 10:
		return 7
	case complexity <= 20:
		return 6
	case complexity <= 40:
		return 5
	case complexity <= 60:
		return 5
	case complexity <= 80:
		return 4
	default:
		return 4
	}
}
