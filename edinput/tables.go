// SPDX-License-Identifier: MIT
package edinput

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed atomicdata.yaml
var atomicDataYAML []byte

// AtomicParams holds the per-ion CONTROL parameters from the embedded
// tables: spin-orbit couplings and Slater-Condon integral sets for the
// ground and core-excited configurations.
type AtomicParams struct {
	SO    []float64 `yaml:"so"`
	SC2   []float64 `yaml:"sc2"`
	SC2EX []float64 `yaml:"sc2ex"`
	FG    []float64 `yaml:"fg"`
}

type atomicTable struct {
	ZeroValenceHoles map[string]int                  `yaml:"zero_valence_holes"`
	Elements         map[string]map[int]AtomicParams `yaml:"elements"`
}

var (
	tableOnce sync.Once
	table     atomicTable
	tableErr  error
)

func loadTable() (atomicTable, error) {
	tableOnce.Do(func() {
		tableErr = yaml.Unmarshal(atomicDataYAML, &table)
	})

	return table, tableErr
}

// LookupAtomic resolves element and valence to the d-hole count and the
// tabulated CONTROL parameters.
//
// Errors:
//   - ErrNegativeHoles — valence below the filled-shell configuration.
//   - ErrNoAtomicData  — element or valence absent from the tables.
func LookupAtomic(element string, valence int) (int, AtomicParams, error) {
	tbl, err := loadTable()
	if err != nil {
		return 0, AtomicParams{}, fmt.Errorf("edinput: embedded tables: %w", err)
	}

	zero, ok := tbl.ZeroValenceHoles[element]
	if !ok {
		return 0, AtomicParams{}, fmt.Errorf("%w: %s(%d+)", ErrNoAtomicData, element, valence)
	}
	holes := zero + valence
	if holes < 0 {
		return 0, AtomicParams{}, fmt.Errorf("%w: %s with valence %d", ErrNegativeHoles, element, valence)
	}
	params, ok := tbl.Elements[element][valence]
	if !ok {
		return 0, AtomicParams{}, fmt.Errorf("%w: %s(%d+)", ErrNoAtomicData, element, valence)
	}

	return holes, params, nil
}
