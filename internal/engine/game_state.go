package engine

import (
	"fmt"
	"io"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// GameState is a Position plus the two FEN clocks.
type GameState struct {
	position      *Position
	moveNumber    uint
	halfMoveClock uint
}

// NewGameState returns the standard starting position.
func NewGameState() *GameState {
	return MustGameStateFromFEN(InitialFEN)
}

// Position returns the position. Callers must not share it across
// goroutines without cloning.
func (gs *GameState) Position() *Position {
	return gs.position
}

// CurrentMoveNumber returns the 1-based full-move counter.
func (gs *GameState) CurrentMoveNumber() uint {
	return gs.moveNumber
}

// PliesSinceLastCaptureOrPawnAdvance returns the half-move clock.
func (gs *GameState) PliesSinceLastCaptureOrPawnAdvance() uint {
	return gs.halfMoveClock
}

// Apply plays m and returns the next state. The half-move clock resets on
// captures and pawn moves; the move number advances after Black moves.
func (gs *GameState) Apply(m chess.Move) (*GameState, error) {
	mover := gs.position.activeColor
	next := gs.position.Clone()

	resetsClock, err := next.apply(m)
	if err != nil {
		return nil, err
	}

	ns := &GameState{
		position:      next,
		moveNumber:    gs.moveNumber,
		halfMoveClock: gs.halfMoveClock + 1,
	}
	if resetsClock {
		ns.halfMoveClock = 0
	}
	if mover == chess.Black {
		ns.moveNumber++
	}
	return ns, nil
}

// Clone returns an independent copy of gs.
func (gs *GameState) Clone() *GameState {
	return &GameState{
		position:      gs.position.Clone(),
		moveNumber:    gs.moveNumber,
		halfMoveClock: gs.halfMoveClock,
	}
}

// Print writes the board dump followed by the move number and half-move
// clock.
func (gs *GameState) Print(w io.Writer) error {
	if err := gs.position.Print(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Current move number: %d\nPlies since last capture/pawn move: %d\n",
		gs.moveNumber, gs.halfMoveClock)
	return err
}
