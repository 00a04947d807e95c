package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// parse reads "v1.2.3", "1.2" or "1.2.3-rc1" into major, minor and patch.
// Pre-release and build suffixes are ignored.
func parse(s string) ([3]int, error) {
	var v [3]int

	core, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(s), "v"), "-")
	core, _, _ = strings.Cut(core, "+")

	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return v, fmt.Errorf("invalid version: %q", s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return v, fmt.Errorf("invalid version: %q", s)
		}
		v[i] = n
	}

	return v, nil
}

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range lo.Zip2(av[:], bv[:]) {
		switch {
		case pair.A > pair.B:
			return 1, nil
		case pair.A < pair.B:
			return -1, nil
		}
	}

	return 0, nil
}
