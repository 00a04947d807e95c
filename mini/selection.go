package mini

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotNumeric is returned for selections that are not a number.
	ErrNotNumeric = errors.New("not a number")

	// ErrOutOfRange is returned for selections outside of the displayed list.
	ErrOutOfRange = errors.New("selection out of range")
)

// ParseSelection parses a 1-based selection into a list of n items and
// returns the 0-based index.
func ParseSelection(input string, n int) (int, error) {
	input = strings.TrimSpace(input)

	v, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, input)
	}

	if v < 1 || v > n {
		return 0, fmt.Errorf("%w: %d is not within 1-%d", ErrOutOfRange, v, n)
	}

	return v - 1, nil
}
