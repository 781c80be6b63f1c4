package interaction

import (
	"errors"
	"fmt"
)

// ErrNoSelection is matched by every SelectionError.
var ErrNoSelection = errors.New("no object selected")

// SelectionError reports an operation that needs a selected object when
// none is selected.
type SelectionError struct {
	Op string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("interaction: %s: %v", e.Op, ErrNoSelection)
}

func (e *SelectionError) Unwrap() error {
	return ErrNoSelection
}
