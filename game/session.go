// Package game holds the turn and selection state for one game in progress.
// The chess kernel is stateless about turns; a Session is the caller-side
// state machine that drives it: waiting for a selection, or holding one and
// waiting for a destination.
package game

import "github.com/jadpole/chessterm/chess"

// Session is one game in progress: the current board, whose turn it is, and
// the selection in flight, if any.
type Session struct {
	Board       chess.Board
	ActiveColor chess.Color

	selected     *chess.Location
	destinations []chess.Location
}

// NewSession starts a game from the standard position, White to move.
func NewSession() *Session {
	return &Session{
		Board:       chess.NewBoard(),
		ActiveColor: chess.White,
	}
}

// NewSessionWithBoard starts a game from an arbitrary board, for debug
// setups.
func NewSessionWithBoard(board chess.Board, toMove chess.Color) *Session {
	return &Session{Board: board, ActiveColor: toMove}
}

// Selected returns the selected square, if a piece is selected.
func (s *Session) Selected() (chess.Location, bool) {
	if s.selected == nil {
		return chess.Location{}, false
	}
	return *s.selected, true
}

// Destinations returns the legal destinations of the selected piece. Empty
// when nothing is selected.
func (s *Session) Destinations() []chess.Location {
	return s.destinations
}

// IsDestination reports whether loc is a legal destination of the selected
// piece.
func (s *Session) IsDestination(loc chess.Location) bool {
	for _, d := range s.destinations {
		if d == loc {
			return true
		}
	}
	return false
}

// Select picks up the piece at loc. It only succeeds on an alive piece of the
// active color; selecting the already-selected square drops the selection
// instead. Returns true if the session state changed.
func (s *Session) Select(loc chess.Location) bool {
	if s.selected != nil && *s.selected == loc {
		s.Deselect()
		return true
	}
	piece, ok := s.Board.PieceAt(loc)
	if !ok || piece.Owner != s.ActiveColor {
		return false
	}
	s.selected = &loc
	s.destinations = s.Board.LegalDestinations(loc)
	return true
}

// Choose plays the selected piece to loc. On a legal destination the move is
// applied, the turn passes, and the selection clears. Anything else leaves
// the session unchanged and reports false; a click on a bad square is not an
// error, just a no-op.
func (s *Session) Choose(loc chess.Location) bool {
	if s.selected == nil || !s.IsDestination(loc) {
		return false
	}
	next, err := s.Board.Apply(*s.selected, loc)
	if err != nil {
		return false
	}
	s.Board = next
	s.ActiveColor = s.ActiveColor.Opposite()
	s.Deselect()
	return true
}

// Deselect drops the selection without touching the board.
func (s *Session) Deselect() {
	s.selected = nil
	s.destinations = nil
}
