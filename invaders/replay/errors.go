package replay

import (
	"errors"
	"fmt"
)

var ErrMismatch = errors.New("record mismatch")

// Record fields compared by the verifier, in comparison order.
const (
	FieldScore    = "score"
	FieldWin      = "win"
	FieldEndFrame = "end_frame"
	FieldInputs   = "inputs"
)

// MismatchError reports the first record field whose claimed value differs from the replay.
type MismatchError struct {
	Field      string
	Claimed    any
	Recomputed any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s doesn't match, claimed %v, recomputed %v", e.Field, e.Claimed, e.Recomputed)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}
