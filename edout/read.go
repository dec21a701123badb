// SPDX-License-Identifier: MIT
package edout

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Occupation is the ground-state occupation block of eig.txt.
type Occupation struct {
	// Holes is the d-hole count of the calculation.
	Holes int `json:"Num Holes"`
	// Orbitals maps orbital labels (dx2, dz2, ...) to their occupation.
	Orbitals map[string]float64 `json:"orbitals"`
}

// ReadOccupation extracts the "Num Holes" count and the orbital occupation
// table that follows it. The table ends at the first dashed or empty line;
// rows that are not exactly "label value" pairs are skipped.
//
// Errors:
//   - ErrNoOccupation — marker line absent.
func ReadOccupation(path string) (Occupation, error) {
	f, err := os.Open(path)
	if err != nil {
		return Occupation{}, fmt.Errorf("edout: open occupation file: %w", err)
	}
	defer f.Close()

	occ := Occupation{Orbitals: map[string]float64{}}
	found := false

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !found {
			if !strings.Contains(line, "Num Holes") {
				continue
			}
			_, after, ok := strings.Cut(line, ":")
			if !ok {
				return Occupation{}, fmt.Errorf("edout: malformed Num Holes line %q", line)
			}
			holes, err := strconv.Atoi(strings.TrimSpace(after))
			if err != nil {
				return Occupation{}, fmt.Errorf("edout: malformed Num Holes line %q: %w", line, err)
			}
			occ.Holes = holes
			found = true
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "-") {
			break
		}
		parts := strings.Fields(trimmed)
		if len(parts) != 2 {
			continue
		}
		val, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return Occupation{}, fmt.Errorf("edout: malformed occupation row %q: %w", trimmed, err)
		}
		occ.Orbitals[parts[0]] = val
	}
	if err := sc.Err(); err != nil {
		return Occupation{}, fmt.Errorf("edout: read occupation file: %w", err)
	}
	if !found {
		return Occupation{}, fmt.Errorf("%w in %s", ErrNoOccupation, path)
	}

	return occ, nil
}

// ReadGroundState extracts the "Ground State composition" line of ed.out:
// everything after the first comma is a comma-separated list of
// "state: weight" items. A missing marker line yields an empty map, not an
// error (older binaries omit it).
func ReadGroundState(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edout: open ground state file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, "Ground State composition") {
			continue
		}
		_, rest, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("edout: malformed composition line %q", line)
		}

		composition := map[string]float64{}
		for _, item := range strings.Split(rest, ",") {
			key, val, ok := strings.Cut(item, ":")
			if !ok {
				return nil, fmt.Errorf("edout: malformed composition item %q", item)
			}
			weight, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return nil, fmt.Errorf("edout: malformed composition item %q: %w", item, err)
			}
			composition[strings.TrimSpace(key)] = weight
		}

		return composition, nil
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edout: read ground state file: %w", err)
	}

	return map[string]float64{}, nil
}
