package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var locationSet = cmpopts.SortSlices(func(a, b Location) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.File < b.File
})

func loc(rank, file int) Location {
	return Location{Rank: rank, File: file}
}

func alive(kind Kind, owner Color, rank, file int) Placement {
	return Placement{Piece{kind, owner, true}, loc(rank, file)}
}

func assertDestinations(t *testing.T, b Board, from Location, want []Location) {
	t.Helper()
	got := b.LegalDestinations(from)
	if diff := cmp.Diff(want, got, locationSet, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("destinations from %s mismatch (-want +got):\n%s", from, diff)
	}
}

func TestKnightDestinations(t *testing.T) {
	tests := []struct {
		name  string
		extra []Placement
		from  Location
		want  []Location
	}{
		{
			name: "corner",
			from: loc(0, 0),
			want: []Location{loc(1, 2), loc(2, 1)},
		},
		{
			name: "center",
			from: loc(3, 3),
			want: []Location{
				loc(1, 2), loc(1, 4), loc(2, 1), loc(2, 5),
				loc(4, 1), loc(4, 5), loc(5, 2), loc(5, 4),
			},
		},
		{
			name:  "ally blocks, enemy does not",
			extra: []Placement{alive(Pawn, White, 1, 2), alive(Pawn, Black, 2, 1)},
			from:  loc(0, 0),
			want:  []Location{loc(2, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placements := append([]Placement{alive(Knight, White, tt.from.Rank, tt.from.File)}, tt.extra...)
			assertDestinations(t, NewDebugBoard(placements...), tt.from, tt.want)
		})
	}
}

func TestKingDestinations(t *testing.T) {
	t.Run("center", func(t *testing.T) {
		b := NewDebugBoard(alive(King, White, 4, 4))
		assertDestinations(t, b, loc(4, 4), []Location{
			loc(3, 3), loc(3, 4), loc(3, 5),
			loc(4, 3), loc(4, 5),
			loc(5, 3), loc(5, 4), loc(5, 5),
		})
	})

	t.Run("corner with ally", func(t *testing.T) {
		b := NewDebugBoard(alive(King, Black, 7, 7), alive(Rook, Black, 7, 6))
		assertDestinations(t, b, loc(7, 7), []Location{loc(6, 6), loc(6, 7)})
	})
}

func TestRookRayStops(t *testing.T) {
	// White rook at d4, ally at d6, enemy at f4. North stops short of the
	// ally, east includes the enemy square and nothing past it.
	b := NewDebugBoard(
		alive(Rook, White, 3, 3),
		alive(Pawn, White, 5, 3),
		alive(Pawn, Black, 3, 5),
	)
	assertDestinations(t, b, loc(3, 3), []Location{
		loc(4, 3),                       // north, stops before ally at (5,3)
		loc(2, 3), loc(1, 3), loc(0, 3), // south to the edge
		loc(3, 4), loc(3, 5), // east, capture square included
		loc(3, 2), loc(3, 1), loc(3, 0), // west to the edge
	})
}

func TestBishopRayStops(t *testing.T) {
	b := NewDebugBoard(
		alive(Bishop, Black, 3, 3),
		alive(Knight, Black, 5, 5),
		alive(Pawn, White, 1, 1),
	)
	assertDestinations(t, b, loc(3, 3), []Location{
		loc(4, 4),            // toward ally, stops short
		loc(2, 2), loc(1, 1), // capture ends the ray
		loc(4, 2), loc(5, 1), loc(6, 0),
		loc(2, 4), loc(1, 5), loc(0, 6),
	})
}

func TestQueenOnEmptyBoard(t *testing.T) {
	// All four straight rays and all four diagonal rays out to the edge.
	b := NewDebugBoard(alive(Queen, White, 3, 3))

	var want []Location
	for _, sq := range Squares() {
		if sq == loc(3, 3) {
			continue
		}
		dr, df := sq.Rank-3, sq.File-3
		if dr == 0 || df == 0 || dr == df || dr == -df {
			want = append(want, sq)
		}
	}
	if len(want) != 27 {
		t.Fatalf("expected 27 reference squares, got %d", len(want))
	}
	assertDestinations(t, b, loc(3, 3), want)
}

func TestQueenIsRookPlusBishop(t *testing.T) {
	queen := NewDebugBoard(alive(Queen, White, 4, 2), alive(Pawn, Black, 4, 5), alive(Pawn, White, 2, 2))
	rook := NewDebugBoard(alive(Rook, White, 4, 2), alive(Pawn, Black, 4, 5), alive(Pawn, White, 2, 2))
	bishop := NewDebugBoard(alive(Bishop, White, 4, 2), alive(Pawn, Black, 4, 5), alive(Pawn, White, 2, 2))

	want := append(rook.LegalDestinations(loc(4, 2)), bishop.LegalDestinations(loc(4, 2))...)
	assertDestinations(t, queen, loc(4, 2), want)
}

func TestPawnDestinations(t *testing.T) {
	tests := []struct {
		name  string
		pawn  Placement
		extra []Placement
		want  []Location
	}{
		{
			name: "white on start rank steps one or two",
			pawn: alive(Pawn, White, 1, 3),
			want: []Location{loc(2, 3), loc(3, 3)},
		},
		{
			name: "black on start rank steps one or two",
			pawn: alive(Pawn, Black, 6, 3),
			want: []Location{loc(5, 3), loc(4, 3)},
		},
		{
			name: "off start rank only one step",
			pawn: alive(Pawn, White, 2, 3),
			want: []Location{loc(3, 3)},
		},
		{
			name:  "blocked square ahead means no forward moves",
			pawn:  alive(Pawn, White, 1, 3),
			extra: []Placement{alive(Pawn, Black, 2, 3)},
			want:  nil,
		},
		{
			name:  "diagonal only against enemies",
			pawn:  alive(Pawn, White, 2, 3),
			extra: []Placement{alive(Pawn, Black, 3, 2), alive(Pawn, White, 3, 4)},
			want:  []Location{loc(3, 3), loc(3, 2)},
		},
		{
			name:  "no diagonal against empty squares",
			pawn:  alive(Pawn, Black, 5, 5),
			extra: []Placement{alive(Pawn, White, 4, 5), alive(Knight, White, 4, 4)},
			want:  []Location{loc(4, 4)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placements := append([]Placement{tt.pawn}, tt.extra...)
			assertDestinations(t, NewDebugBoard(placements...), tt.pawn.Loc, tt.want)
		})
	}
}

// The double step checks only the intermediate square for emptiness, never
// the landing square itself. A piece camped two squares ahead of an
// unblocked start-rank pawn is therefore a reachable destination. That is
// the rule this engine implements, quirk and all.
func TestPawnDoubleStepIgnoresLandingSquare(t *testing.T) {
	b := NewDebugBoard(
		alive(Pawn, White, 1, 3),
		alive(Knight, Black, 3, 3),
	)
	assertDestinations(t, b, loc(1, 3), []Location{loc(2, 3), loc(3, 3)})

	next, err := b.Apply(loc(1, 3), loc(3, 3))
	if err != nil {
		t.Fatalf("double step onto occupied landing square: %v", err)
	}
	if _, ok := next.PieceAt(loc(3, 3)); !ok {
		t.Fatal("pawn should occupy the landing square")
	}
	if got := next.Captured(Black); len(got) != 1 || got[0].Kind != Knight {
		t.Fatalf("expected the knight captured, got %v", got)
	}
}

func TestPawnDirectionality(t *testing.T) {
	for _, owner := range []Color{White, Black} {
		b := NewDebugBoard(alive(Pawn, owner, 4, 4))
		for _, d := range b.LegalDestinations(loc(4, 4)) {
			if owner == White && d.Rank <= 4 {
				t.Errorf("white pawn offered non-advancing move to %s", d)
			}
			if owner == Black && d.Rank >= 4 {
				t.Errorf("black pawn offered non-advancing move to %s", d)
			}
		}
	}
}

func TestLegalDestinationsEmptySquare(t *testing.T) {
	b := NewBoard()
	if got := b.LegalDestinations(loc(4, 4)); len(got) != 0 {
		t.Errorf("empty square yielded destinations %v", got)
	}
	if got := b.LegalDestinations(loc(-3, 12)); len(got) != 0 {
		t.Errorf("out-of-range square yielded destinations %v", got)
	}
}

func TestApplyRelocatesMover(t *testing.T) {
	b := NewBoard()
	next, err := b.Apply(loc(1, 4), loc(3, 4))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, ok := next.PieceAt(loc(1, 4)); ok {
		t.Error("source square still occupied after move")
	}
	piece, ok := next.PieceAt(loc(3, 4))
	if !ok || piece.Kind != Pawn || piece.Owner != White {
		t.Errorf("destination holds %v, want white pawn", piece)
	}

	// The input board is a value: untouched by the move.
	if _, ok := b.PieceAt(loc(1, 4)); !ok {
		t.Error("original board lost its pawn")
	}
	if _, ok := b.PieceAt(loc(3, 4)); ok {
		t.Error("original board gained a piece")
	}
}

func TestApplyCaptureKeepsDeadPiece(t *testing.T) {
	b := NewDebugBoard(
		alive(Rook, White, 0, 0),
		alive(Bishop, Black, 0, 5),
	)
	next, err := b.Apply(loc(0, 0), loc(0, 5))
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	piece, ok := next.PieceAt(loc(0, 5))
	if !ok || piece.Kind != Rook {
		t.Fatalf("destination holds %v, want the rook", piece)
	}

	// The bishop is dead, still in the collection, still at its square.
	var found bool
	for _, pl := range next.Placements() {
		if pl.Piece.Kind == Bishop {
			found = true
			if pl.Piece.Alive {
				t.Error("captured bishop still alive")
			}
			if pl.Loc != loc(0, 5) {
				t.Errorf("captured bishop moved to %s", pl.Loc)
			}
		}
	}
	if !found {
		t.Error("captured bishop removed from the collection")
	}
}

func TestApplyErrors(t *testing.T) {
	b := NewBoard()

	if _, err := b.Apply(loc(4, 4), loc(5, 4)); !errors.Is(err, ErrNoPieceAtSource) {
		t.Errorf("empty source: got %v, want ErrNoPieceAtSource", err)
	}
	if _, err := b.Apply(loc(0, 0), loc(5, 0)); !errors.Is(err, ErrIllegalDestination) {
		t.Errorf("blocked rook: got %v, want ErrIllegalDestination", err)
	}
	if _, err := b.Apply(loc(1, 0), loc(4, 0)); !errors.Is(err, ErrIllegalDestination) {
		t.Errorf("triple pawn push: got %v, want ErrIllegalDestination", err)
	}
}

func TestApplySequence(t *testing.T) {
	// Two consecutive moves of the same knight: it ends up at the latest
	// destination, nowhere else.
	b := NewDebugBoard(alive(Knight, White, 0, 1))

	b1, err := b.Apply(loc(0, 1), loc(2, 2))
	if err != nil {
		t.Fatalf("first move: %v", err)
	}
	b2, err := b1.Apply(loc(2, 2), loc(4, 3))
	if err != nil {
		t.Fatalf("second move: %v", err)
	}

	for _, sq := range Squares() {
		_, occupied := b2.PieceAt(sq)
		if occupied != (sq == loc(4, 3)) {
			t.Errorf("square %s occupancy = %v", sq, occupied)
		}
	}
}
