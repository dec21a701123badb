// SPDX-License-Identifier: MIT
package edout

import "errors"

// ErrNoOccupation is returned when eig.txt carries no "Num Holes" marker.
var ErrNoOccupation = errors.New("edout: no occupation block found")
