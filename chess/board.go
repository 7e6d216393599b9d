// Package chess implements the rules kernel behind the board demo: an
// immutable board model and legal-move computation. It knows nothing about
// turns, rendering, or input; the caller owns those.
package chess

import "fmt"

type Color int

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other color.
func (c Color) Opposite() Color {
	return 1 - c
}

type Kind int

const (
	King Kind = iota
	Queen
	Bishop
	Knight
	Rook
	Pawn
)

func (k Kind) String() string {
	switch k {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Rook:
		return "Rook"
	case Pawn:
		return "Pawn"
	}
	return "Unknown"
}

// Piece is a piece as it sits in a board's collection. A captured piece stays
// in the collection with Alive false so renderers can still show it; it no
// longer occupies its square.
type Piece struct {
	Kind  Kind
	Owner Color
	Alive bool
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Owner, p.Kind)
}

// Symbol returns the figurine rune for the piece.
func (p Piece) Symbol() string {
	white := map[Kind]string{
		King: "♔", Queen: "♕", Rook: "♖", Bishop: "♗", Knight: "♘", Pawn: "♙",
	}
	black := map[Kind]string{
		King: "♚", Queen: "♛", Rook: "♜", Bishop: "♝", Knight: "♞", Pawn: "♟",
	}
	if p.Owner == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// Location is a square coordinate: rank and file, each 0-7 on the board.
// Out-of-range locations are legal to construct and query; they are simply
// never occupied.
type Location struct {
	Rank int `json:"rank"`
	File int `json:"file"`
}

func (l Location) InBounds() bool {
	return l.Rank >= 0 && l.Rank < 8 && l.File >= 0 && l.File < 8
}

func (l Location) String() string {
	if !l.InBounds() {
		return "invalid"
	}
	return fmt.Sprintf("%c%d", 'a'+l.File, l.Rank+1)
}

// SquareColor returns the checkerboard color of a square, from coordinate
// parity alone. Even parity is Black, so a1 is a dark square.
func SquareColor(l Location) Color {
	if (l.Rank-l.File)%2 == 0 {
		return Black
	}
	return White
}

// Squares returns all 64 board locations in row-major order (rank 0..7, and
// file 0..7 within each rank).
func Squares() []Location {
	locs := make([]Location, 0, 64)
	for rank := range 8 {
		for file := range 8 {
			locs = append(locs, Location{rank, file})
		}
	}
	return locs
}

// Placement is one entry of a board's collection: a piece and the square it
// sits on (or sat on, if captured).
type Placement struct {
	Piece Piece
	Loc   Location
}

// Board is an ordered collection of placements. It is a value: no operation
// mutates a Board in place, moves return a fresh one. Captured pieces are
// kept in the collection, flagged dead, and excluded from occupancy.
type Board struct {
	placements []Placement
}

// NewBoard returns the standard 32-piece starting position. White occupies
// ranks 0 and 1, Black ranks 6 and 7.
func NewBoard() Board {
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	var placements []Placement
	for file, kind := range backRank {
		placements = append(placements, Placement{Piece{kind, White, true}, Location{0, file}})
	}
	for file := range 8 {
		placements = append(placements, Placement{Piece{Pawn, White, true}, Location{1, file}})
	}
	for file := range 8 {
		placements = append(placements, Placement{Piece{Pawn, Black, true}, Location{6, file}})
	}
	for file, kind := range backRank {
		placements = append(placements, Placement{Piece{kind, Black, true}, Location{7, file}})
	}
	return Board{placements: placements}
}

// NewDebugBoard builds a board from an arbitrary list of placements, for
// exercising pieces in isolation. No completeness checks: any subset of
// pieces is a valid board.
func NewDebugBoard(placements ...Placement) Board {
	b := Board{placements: make([]Placement, len(placements))}
	copy(b.placements, placements)
	return b
}

// PieceAt returns the alive piece occupying loc, if any. Querying any
// location is fine, in bounds or not.
func (b Board) PieceAt(loc Location) (Piece, bool) {
	for _, pl := range b.placements {
		if pl.Piece.Alive && pl.Loc == loc {
			return pl.Piece, true
		}
	}
	return Piece{}, false
}

// Placements returns a copy of the board's collection, dead pieces included,
// in insertion order.
func (b Board) Placements() []Placement {
	out := make([]Placement, len(b.placements))
	copy(out, b.placements)
	return out
}

// Captured returns the dead pieces of the given color, in collection order.
func (b Board) Captured(c Color) []Piece {
	var out []Piece
	for _, pl := range b.placements {
		if !pl.Piece.Alive && pl.Piece.Owner == c {
			out = append(out, pl.Piece)
		}
	}
	return out
}
