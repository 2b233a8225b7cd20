package board_test

import (
	"strings"
	"testing"

	"github.com/herohde/diomede/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRays(t *testing.T) {
	mm := board.NewMoveMap()

	tests := []struct {
		name     string
		kind     board.Kind
		square   string
		expected []string
	}{
		{"rook center", board.Rook, "d5", []string{
			"d6 d7 d8", "d4 d3 d2 d1", "c5 b5 a5", "e5 f5 g5 h5",
		}},
		{"rook corner", board.Rook, "a1", []string{
			"a2 a3 a4 a5 a6 a7 a8", "b1 c1 d1 e1 f1 g1 h1",
		}},
		{"bishop corner", board.Bishop, "a8", []string{
			"b7 c6 d5 e4 f3 g2 h1",
		}},
		{"bishop center", board.Bishop, "e4", []string{
			"d5 c6 b7 a8", "f5 g6 h7", "f3 g2 h1", "d3 c2 b1",
		}},
		{"knight home", board.Knight, "b1", []string{
			"a3", "c3", "d2",
		}},
		{"knight center", board.Knight, "e4", []string{
			"d6", "f6", "c5", "g5", "c3", "g3", "d2", "f2",
		}},
		{"king center", board.King, "e4", []string{
			"d5", "f5", "f3", "d3", "e5", "e3", "d4", "f4",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq, err := board.ParseSquare(tt.square)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, printRays(mm.Rays(tt.kind, sq)))
		})
	}
}

func TestQueenRays(t *testing.T) {
	mm := board.NewMoveMap()

	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		bishop := printRays(mm.Rays(board.Bishop, sq))
		rook := printRays(mm.Rays(board.Rook, sq))
		assert.Equal(t, append(bishop, rook...), printRays(mm.Rays(board.Queen, sq)))
	}
}

func TestPawnGeometry(t *testing.T) {
	mm := board.NewMoveMap()

	tests := []struct {
		color    board.Color
		square   string
		mov, atk []string
	}{
		{board.White, "e2", []string{"e3", "e4"}, []string{"d3", "f3"}},
		{board.White, "e3", []string{"e4"}, []string{"d4", "f4"}},
		{board.White, "a7", []string{"a8"}, []string{"b8"}},
		{board.White, "h4", []string{"h5"}, []string{"g5"}},
		{board.Black, "e7", []string{"e6", "e5"}, []string{"d6", "f6"}},
		{board.Black, "e2", []string{"e1"}, []string{"d1", "f1"}},
		{board.Black, "a2", []string{"a1"}, []string{"b1"}},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			sq, err := board.ParseSquare(tt.square)
			require.NoError(t, err)

			pm := mm.Pawn(tt.color, sq)
			assert.Equal(t, tt.mov, printSquares(pm.Mov))
			assert.Equal(t, tt.atk, printSquares(pm.Atk))
		})
	}
}

func TestKingCover(t *testing.T) {
	mm := board.NewMoveMap()

	sq, err := board.ParseSquare("e4")
	require.NoError(t, err)

	cover := mm.KingCover(board.White, sq)
	assert.Len(t, cover, 16) // 8 knight + 4 diagonal + 4 straight

	// Threats come first from ahead: for White that is the low-row side.
	prev := -1
	for _, ray := range cover {
		row := ray[0].Square.Row()
		assert.LessOrEqual(t, prev, row)
		prev = row
	}

	// A diagonal ray ahead of the king: bishop, queen, king and pawn on the
	// first square, bishop and queen only beyond it.
	d5 := firstSquareRay(t, cover, "d5")
	assertAttackers(t, d5[0].Attackers, board.BlackBishop, board.BlackQueen, board.BlackKing, board.BlackPawn)
	assertNotAttackers(t, d5[0].Attackers, board.BlackRook, board.BlackKnight, board.WhiteQueen)
	assertAttackers(t, d5[1].Attackers, board.BlackBishop, board.BlackQueen)
	assertNotAttackers(t, d5[1].Attackers, board.BlackKing, board.BlackPawn)

	// A diagonal ray behind the king has no pawn threat.
	d3 := firstSquareRay(t, cover, "d3")
	assertAttackers(t, d3[0].Attackers, board.BlackBishop, board.BlackQueen, board.BlackKing)
	assertNotAttackers(t, d3[0].Attackers, board.BlackPawn)

	// A straight ray: rook, queen and king on the first square only.
	e5 := firstSquareRay(t, cover, "e5")
	assertAttackers(t, e5[0].Attackers, board.BlackRook, board.BlackQueen, board.BlackKing)
	assertNotAttackers(t, e5[0].Attackers, board.BlackPawn, board.BlackBishop)
	assertAttackers(t, e5[1].Attackers, board.BlackRook, board.BlackQueen)
	assertNotAttackers(t, e5[1].Attackers, board.BlackKing)

	// A knight ray: knight only.
	d6 := firstSquareRay(t, cover, "d6")
	assertAttackers(t, d6[0].Attackers, board.BlackKnight)
	assertNotAttackers(t, d6[0].Attackers, board.BlackQueen, board.BlackKing)
}

func TestKingCoverBlack(t *testing.T) {
	mm := board.NewMoveMap()

	sq, err := board.ParseSquare("e4")
	require.NoError(t, err)

	cover := mm.KingCover(board.Black, sq)
	assert.Len(t, cover, 16)

	// For Black, ahead is the high-row side.
	prev := 8
	for _, ray := range cover {
		row := ray[0].Square.Row()
		assert.GreaterOrEqual(t, prev, row)
		prev = row
	}

	// White pawns attack from ahead of a black defender.
	d3 := firstSquareRay(t, cover, "d3")
	assertAttackers(t, d3[0].Attackers, board.WhiteBishop, board.WhiteQueen, board.WhiteKing, board.WhitePawn)

	d5 := firstSquareRay(t, cover, "d5")
	assertNotAttackers(t, d5[0].Attackers, board.WhitePawn)
}

func TestMoveMapDeterministic(t *testing.T) {
	assert.Equal(t, board.NewMoveMap(), board.NewMoveMap())
}

func firstSquareRay(t *testing.T, cover []board.CoverRay, str string) board.CoverRay {
	t.Helper()

	sq, err := board.ParseSquare(str)
	require.NoError(t, err)

	for _, ray := range cover {
		if ray[0].Square == sq {
			return ray
		}
	}
	require.Fail(t, "no cover ray starting at "+str)
	return nil
}

func assertAttackers(t *testing.T, set board.PieceSet, pieces ...board.Piece) {
	t.Helper()
	for _, p := range pieces {
		assert.True(t, set.Contains(p), "missing attacker %v", p)
	}
}

func assertNotAttackers(t *testing.T, set board.PieceSet, pieces ...board.Piece) {
	t.Helper()
	for _, p := range pieces {
		assert.False(t, set.Contains(p), "unexpected attacker %v", p)
	}
}

func printSquares(squares []board.Square) []string {
	var list []string
	for _, sq := range squares {
		list = append(list, sq.String())
	}
	return list
}

func printRays(rays []board.Ray) []string {
	var list []string
	for _, ray := range rays {
		list = append(list, strings.Join(printSquares(ray), " "))
	}
	return list
}
