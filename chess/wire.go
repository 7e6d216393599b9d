package chess

// PieceRecord is the flat, serializable form of one board entry. A board
// travels as an ordered list of these; together with Move it is the whole
// wire surface a transport or persistence layer needs.
type PieceRecord struct {
	Kind  Kind  `json:"kind"`
	Owner Color `json:"owner"`
	Alive bool  `json:"alive"`
	Rank  int   `json:"rank"`
	File  int   `json:"file"`
}

// Records flattens the board to its wire form, preserving collection order.
func (b Board) Records() []PieceRecord {
	records := make([]PieceRecord, 0, len(b.placements))
	for _, pl := range b.placements {
		records = append(records, PieceRecord{
			Kind:  pl.Piece.Kind,
			Owner: pl.Piece.Owner,
			Alive: pl.Piece.Alive,
			Rank:  pl.Loc.Rank,
			File:  pl.Loc.File,
		})
	}
	return records
}

// BoardFromRecords rebuilds a board from its wire form.
func BoardFromRecords(records []PieceRecord) Board {
	placements := make([]Placement, 0, len(records))
	for _, r := range records {
		placements = append(placements, Placement{
			Piece: Piece{Kind: r.Kind, Owner: r.Owner, Alive: r.Alive},
			Loc:   Location{Rank: r.Rank, File: r.File},
		})
	}
	return Board{placements: placements}
}
