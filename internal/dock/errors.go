package dock

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable wraps every failure to obtain a usable status document:
	// transport errors, non-2xx responses and bodies that are not a JSON object.
	ErrUnavailable = errors.New("dock: status unavailable")

	// ErrNotFound is returned when no record matches the selected identifier.
	ErrNotFound = errors.New("dock: not found")

	// ErrNoBattery is returned when the matched record reports an empty slot.
	ErrNoBattery = errors.New("dock: no battery inserted")
)

// DataFormatError reports a record whose cell readings cannot be split into a
// bottom and a top brick.
type DataFormatError struct {
	Got  int
	Want int
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("dock: cell_voltage_mv has %d readings, want at least %d", e.Got, e.Want)
}
