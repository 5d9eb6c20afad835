package domain

import (
	"errors"
	"fmt"
)

// ErrUnsatisfiable marks a structurally valid puzzle with no digit
// assignment satisfying all constraints. It is a defined negative result,
// not an input fault; callers distinguish it from MalformedPuzzleError.
var ErrUnsatisfiable = errors.New("no assignment satisfies all constraints")

// MalformedPuzzleError reports a structural problem in the puzzle input.
// X/Y name the offending cell; both are -1 when no single cell is at fault.
type MalformedPuzzleError struct {
	X, Y   int
	Reason string
}

func (e *MalformedPuzzleError) Error() string {
	if e.X < 0 && e.Y < 0 {
		return "malformed puzzle: " + e.Reason
	}
	return fmt.Sprintf("malformed puzzle at (%d,%d): %s", e.X, e.Y, e.Reason)
}

// Malformed builds a MalformedPuzzleError for the given cell.
func Malformed(x, y int, reason string) *MalformedPuzzleError {
	return &MalformedPuzzleError{X: x, Y: y, Reason: reason}
}

// MalformedDoc builds a document-level MalformedPuzzleError.
func MalformedDoc(reason string) *MalformedPuzzleError {
	return &MalformedPuzzleError{X: -1, Y: -1, Reason: reason}
}
