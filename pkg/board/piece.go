package board

import "strings"

// Piece represents a colored piece as stored on the board: White pieces are
// 0-5, NoPiece is 6 and Black pieces are 7-12, so that a square fits in a
// 4-bit field and a rank fits in a 32-bit word. 4 bits.
type Piece uint8

const (
	WhiteRook Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteQueen
	WhiteKing
	WhitePawn
	NoPiece
	BlackRook
	BlackKnight
	BlackBishop
	BlackQueen
	BlackKing
	BlackPawn
)

// NewPiece returns the colored piece for the given color and kind.
func NewPiece(c Color, k Kind) Piece {
	if c == White {
		return Piece(k)
	}
	return Piece(k) + BlackRook
}

func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'R':
		return WhiteRook, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'P':
		return WhitePawn, true
	case 'r':
		return BlackRook, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	case 'p':
		return BlackPawn, true
	default:
		return NoPiece, false
	}
}

// IsValid returns true iff the piece is an actual piece of either color.
func (p Piece) IsValid() bool {
	return p <= BlackPawn && p != NoPiece
}

// Color returns the color of the piece. Not meaningful for NoPiece.
func (p Piece) Color() Color {
	if p < NoPiece {
		return White
	}
	return Black
}

// Kind returns the colorless kind of the piece.
func (p Piece) Kind() Kind {
	if p < NoPiece {
		return Kind(p)
	}
	return Kind(p - BlackRook)
}

// SameSide returns true iff both pieces are actual pieces of the same color.
// NoPiece is on no side.
func (p Piece) SameSide(o Piece) bool {
	if p < NoPiece && o < NoPiece {
		return true
	}
	return p.IsValid() && o.IsValid() && p > NoPiece && o > NoPiece
}

func (p Piece) String() string {
	if !p.IsValid() {
		return " "
	}
	if p.Color() == White {
		return strings.ToUpper(p.Kind().String())
	}
	return p.Kind().String()
}

// Kind represents a chess piece kind (King, Pawn, etc) with no color. The
// numbering matches the White piece codes. 3 bits.
type Kind uint8

const (
	Rook Kind = iota
	Knight
	Bishop
	Queen
	King
	Pawn
)

// Promotions lists the promotion kinds in generation order.
var Promotions = [4]Kind{Rook, Knight, Bishop, Queen}

func (k Kind) IsValid() bool {
	return k <= Pawn
}

func (k Kind) String() string {
	switch k {
	case Rook:
		return "r"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Queen:
		return "q"
	case King:
		return "k"
	case Pawn:
		return "p"
	default:
		return "?"
	}
}

// PieceSet is a set of colored pieces, one bit per piece code. 16 bits.
type PieceSet uint16

// Add returns the set extended with the given piece.
func (s PieceSet) Add(p Piece) PieceSet {
	return s | 1<<p
}

// Contains returns true iff the set contains the given piece.
func (s PieceSet) Contains(p Piece) bool {
	return s&(1<<p) != 0
}
