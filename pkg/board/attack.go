package board

// covered walks the defender's king-cover rays at the square and returns the
// first threatening enemy piece found, if any. Along each ray: a friendly
// piece blocks it, an enemy piece listed in the square's attacker set is a
// threat, any other enemy piece blocks, and empty squares continue outward.
func (p *Position) covered(mm *MoveMap, c Color, sq Square) (Piece, bool) {
	for _, ray := range mm.KingCover(c, sq) {
		for _, cs := range ray {
			found := p.At(cs.Square)
			if found == NoPiece {
				continue
			}
			if found.Color() == c {
				break
			}
			if cs.Attackers.Contains(found) {
				return found, true
			}
			break
		}
	}
	return NoPiece, false
}

// IsChecked returns true iff the color's king is attacked.
func (p *Position) IsChecked(mm *MoveMap, c Color) bool {
	_, ok := p.covered(mm, c, p.kings[c])
	return ok
}

// IsAttacked returns true iff the piece on the square is attacked by any
// enemy piece. False for empty squares.
func (p *Position) IsAttacked(mm *MoveMap, sq Square) bool {
	piece := p.At(sq)
	if !piece.IsValid() {
		return false
	}
	_, ok := p.covered(mm, piece.Color(), sq)
	return ok
}

// ThreatenedBy returns every enemy piece that could capture the piece on the
// given square, one per unblocked inbound ray. Empty for empty squares.
func (p *Position) ThreatenedBy(mm *MoveMap, sq Square) []Piece {
	piece := p.At(sq)
	if !piece.IsValid() {
		return nil
	}

	var threats []Piece
	for _, ray := range mm.KingCover(piece.Color(), sq) {
		for _, cs := range ray {
			found := p.At(cs.Square)
			if found == NoPiece {
				continue
			}
			if !found.SameSide(piece) && cs.Attackers.Contains(found) {
				threats = append(threats, found)
			}
			break
		}
	}
	return threats
}

// ProtectedBy returns every friendly piece covering the piece on the given
// square, one per unblocked inbound ray. Empty for empty squares.
func (p *Position) ProtectedBy(mm *MoveMap, sq Square) []Piece {
	piece := p.At(sq)
	if !piece.IsValid() {
		return nil
	}

	// Inbound rays for the opposite color list attackers of this piece's own
	// color, which here are its defenders.
	var friends []Piece
	for _, ray := range mm.KingCover(piece.Color().Opponent(), sq) {
		for _, cs := range ray {
			found := p.At(cs.Square)
			if found == NoPiece {
				continue
			}
			if found.SameSide(piece) && cs.Attackers.Contains(found) {
				friends = append(friends, found)
			}
			break
		}
	}
	return friends
}

// Threatens returns every enemy piece the piece on the given square can
// capture. Empty for empty squares.
func (p *Position) Threatens(mm *MoveMap, sq Square) []Piece {
	piece := p.At(sq)
	if !piece.IsValid() {
		return nil
	}

	var rays []Ray
	if piece.Kind() == Pawn {
		for _, atk := range mm.Pawn(piece.Color(), sq).Atk {
			rays = append(rays, Ray{atk})
		}
	} else {
		rays = mm.Rays(piece.Kind(), sq)
	}

	var found []Piece
	for _, ray := range rays {
		for _, target := range ray {
			loc := p.At(target)
			if loc == NoPiece {
				continue
			}
			if !loc.SameSide(piece) {
				found = append(found, loc)
			}
			break
		}
	}
	return found
}
