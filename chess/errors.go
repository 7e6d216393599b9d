package chess

import "errors"

var (
	ErrNoPieceAtSource    = errors.New("no piece at source square")
	ErrIllegalDestination = errors.New("illegal destination square")
)
