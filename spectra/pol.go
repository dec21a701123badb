// SPDX-License-Identifier: MIT
package spectra

import (
	"fmt"
	"strings"
)

// ParsePolarization normalizes a polarization string to upper case and
// validates it: a nonempty subset of {X, Y, Z} with no repeats.
func ParsePolarization(s string) (string, error) {
	up := strings.ToUpper(s)
	if up == "" {
		return "", fmt.Errorf("%w: %q", ErrBadPolarization, s)
	}
	seen := map[rune]bool{}
	for _, r := range up {
		if (r != 'X' && r != 'Y' && r != 'Z') || seen[r] {
			return "", fmt.Errorf("%w: %q", ErrBadPolarization, s)
		}
		seen[r] = true
	}

	return up, nil
}
