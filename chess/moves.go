package chess

// Move is a source/destination pair, the shape any transport or persistence
// layer around the kernel would carry.
type Move struct {
	From Location `json:"from"`
	To   Location `json:"to"`
}

func (b Board) emptyAt(loc Location) bool {
	_, ok := b.PieceAt(loc)
	return !ok
}

func (b Board) enemyAt(loc Location, owner Color) bool {
	p, ok := b.PieceAt(loc)
	return ok && p.Owner != owner
}

func (b Board) allyAt(loc Location, owner Color) bool {
	p, ok := b.PieceAt(loc)
	return ok && p.Owner == owner
}

// LegalDestinations returns every square the piece at from may move to.
// The result is a set: ordering carries no meaning. A square with no alive
// piece yields an empty set.
//
// The rules are the demo's deliberately minimal ones: no check safety, no
// castling, no en passant, no promotion.
func (b Board) LegalDestinations(from Location) []Location {
	piece, ok := b.PieceAt(from)
	if !ok {
		return nil
	}

	var candidates []Location
	switch piece.Kind {
	case King:
		candidates = b.offsetMoves(from, piece.Owner, kingOffsets)
	case Knight:
		candidates = b.offsetMoves(from, piece.Owner, knightOffsets)
	case Rook:
		candidates = b.rayMoves(from, piece.Owner, straightDirs)
	case Bishop:
		candidates = b.rayMoves(from, piece.Owner, diagonalDirs)
	case Queen:
		candidates = b.rayMoves(from, piece.Owner, straightDirs)
		candidates = append(candidates, b.rayMoves(from, piece.Owner, diagonalDirs)...)
	case Pawn:
		candidates = b.pawnMoves(from, piece.Owner)
	}

	// Ray walks stop at the edge on their own; this catches the fixed-offset
	// kinds stepping off the board.
	moves := candidates[:0]
	for _, loc := range candidates {
		if loc.InBounds() {
			moves = append(moves, loc)
		}
	}
	return moves
}

var (
	kingOffsets = []Location{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	knightOffsets = []Location{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	straightDirs = []Location{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = []Location{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// offsetMoves is the king/knight rule: every offset square not held by an
// ally.
func (b Board) offsetMoves(from Location, owner Color, offsets []Location) []Location {
	var moves []Location
	for _, off := range offsets {
		to := Location{from.Rank + off.Rank, from.File + off.File}
		if !b.allyAt(to, owner) {
			moves = append(moves, to)
		}
	}
	return moves
}

// rayMoves walks outward from from along each direction, one square at a
// time: empty squares are included and the walk continues; the first occupied
// square ends the walk, included only when it holds an enemy.
func (b Board) rayMoves(from Location, owner Color, dirs []Location) []Location {
	var moves []Location
	for _, dir := range dirs {
		to := Location{from.Rank + dir.Rank, from.File + dir.File}
		for to.InBounds() {
			if b.allyAt(to, owner) {
				break
			}
			moves = append(moves, to)
			if b.enemyAt(to, owner) {
				break
			}
			to = Location{to.Rank + dir.Rank, to.File + dir.File}
		}
	}
	return moves
}

func (b Board) pawnMoves(from Location, owner Color) []Location {
	dir, startRank := 1, 1
	if owner == Black {
		dir, startRank = -1, 6
	}

	var moves []Location
	oneAhead := Location{from.Rank + dir, from.File}
	if b.emptyAt(oneAhead) {
		moves = append(moves, oneAhead)
		// The double step only requires the intermediate square to be empty;
		// the landing square's occupancy is not checked. This mirrors the
		// demo's rule as written.
		if from.Rank == startRank {
			moves = append(moves, Location{from.Rank + 2*dir, from.File})
		}
	}
	for _, df := range []int{-1, 1} {
		diag := Location{from.Rank + dir, from.File + df}
		if b.enemyAt(diag, owner) {
			moves = append(moves, diag)
		}
	}
	return moves
}

// Apply moves the piece at from to to and returns the resulting board; the
// receiver is untouched. Any alive occupant of to is marked dead and kept in
// the collection at its square. Apply rejects a move whose destination is not
// in LegalDestinations(from).
func (b Board) Apply(from, to Location) (Board, error) {
	mover, ok := b.PieceAt(from)
	if !ok {
		return Board{}, ErrNoPieceAtSource
	}

	legal := false
	for _, loc := range b.LegalDestinations(from) {
		if loc == to {
			legal = true
			break
		}
	}
	if !legal {
		return Board{}, ErrIllegalDestination
	}

	next := Board{placements: make([]Placement, len(b.placements))}
	copy(next.placements, b.placements)
	for i, pl := range next.placements {
		switch {
		case pl.Piece.Alive && pl.Loc == to:
			next.placements[i].Piece.Alive = false
		case pl.Piece.Alive && pl.Loc == from && pl.Piece == mover:
			next.placements[i].Loc = to
		}
	}
	return next, nil
}
