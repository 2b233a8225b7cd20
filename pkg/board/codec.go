package board

import (
	"encoding/binary"
	"fmt"
)

// EncodedSize is the length of a serialized position: eight 32-bit board
// words, the previous move pair, the 16-bit ply, both king squares, both en
// passant squares and the castling rights nibble.
const EncodedSize = 41

// Marshal encodes the position into a fixed 41-byte little-endian record:
// board[0..7], prev.From, prev.To, ply, white king, black king, white en
// passant, black en passant, castling rights.
func Marshal(p *Position) []byte {
	buf := make([]byte, EncodedSize)
	for i, word := range p.board {
		binary.LittleEndian.PutUint32(buf[i*4:], word)
	}
	buf[32] = byte(p.prev.From)
	buf[33] = byte(p.prev.To)
	binary.LittleEndian.PutUint16(buf[34:], p.ply)
	buf[36] = byte(p.kings[White])
	buf[37] = byte(p.kings[Black])
	buf[38] = byte(p.passant[White])
	buf[39] = byte(p.passant[Black])
	buf[40] = byte(p.castles)
	return buf
}

// Unmarshal decodes a position from the Marshal encoding. It rejects
// malformed input: bad length, unused piece codes, king squares inconsistent
// with the board, out-of-range squares or castling bits, or a zero ply.
func Unmarshal(data []byte) (Position, error) {
	if len(data) != EncodedSize {
		return Position{}, fmt.Errorf("invalid encoded position: %v bytes, expected %v", len(data), EncodedSize)
	}

	var p Position
	for i := range p.board {
		p.board[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	p.prev = Move{From: Square(data[32]), To: Square(data[33])}
	p.ply = binary.LittleEndian.Uint16(data[34:])
	p.kings = [NumColors]Square{Square(data[36]), Square(data[37])}
	p.passant = [NumColors]Square{Square(data[38]), Square(data[39])}
	p.castles = Castling(data[40])

	if p.ply == 0 {
		return Position{}, fmt.Errorf("invalid ply: 0")
	}
	if !p.prev.From.IsValid() || !p.prev.To.IsValid() {
		return Position{}, fmt.Errorf("invalid previous move: %v", p.prev)
	}
	if p.passant[White] > NoSquare || p.passant[Black] > NoSquare {
		return Position{}, fmt.Errorf("invalid en passant squares: %v, %v", data[38], data[39])
	}
	if p.castles > FullCastlingRights {
		return Position{}, fmt.Errorf("invalid castling rights: %#x", data[40])
	}

	kings := [NumColors]int{}
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		piece := p.At(sq)
		if piece > BlackPawn {
			return Position{}, fmt.Errorf("invalid piece code %v at %v", uint8(piece), sq)
		}
		if piece.IsValid() && piece.Kind() == King {
			kings[piece.Color()]++
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return Position{}, fmt.Errorf("invalid number of kings")
	}
	if !p.kings[White].IsValid() || p.At(p.kings[White]) != WhiteKing {
		return Position{}, fmt.Errorf("white king not at %v", p.kings[White])
	}
	if !p.kings[Black].IsValid() || p.At(p.kings[Black]) != BlackKing {
		return Position{}, fmt.Errorf("black king not at %v", p.kings[Black])
	}
	return p, nil
}
