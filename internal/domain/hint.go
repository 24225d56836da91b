package domain

import "fmt"

// HintKind distinguishes placements from candidate eliminations.
type HintKind string

const (
	HintPlacement   HintKind = "placement"
	HintElimination HintKind = "elimination"
)

// UnitAxis selects the axis of an elimination unit.
type UnitAxis string

const (
	AxisRow    UnitAxis = "row"
	AxisColumn UnitAxis = "column"
)

// UnitRef names a single row or column by index.
type UnitRef struct {
	Axis  UnitAxis `json:"axis"`
	Index int      `json:"index"`
}

// Hint is one deduced move. A placement hint carries a target cell; an
// elimination hint carries the unit the candidate can be pruned from.
// Hints are snapshots: they say nothing about the board once it mutates.
type Hint struct {
	Kind        HintKind  `json:"kind"`
	Cell        CellCoord `json:"cell,omitempty"`
	Unit        UnitRef   `json:"unit,omitempty"`
	Value       uint8     `json:"value"`
	Technique   string    `json:"technique"`
	Explanation string    `json:"explanation,omitempty"`
}

// NewPlacement builds a placement hint with the standard explanation text.
func NewPlacement(row, col int, v uint8, technique string) Hint {
	return Hint{
		Kind:        HintPlacement,
		Cell:        CellCoord{Row: row, Col: col},
		Value:       v,
		Technique:   technique,
		Explanation: fmt.Sprintf("Place %d at R%dC%d.", v, row+1, col+1),
	}
}

// NewElimination builds an elimination hint against one row or column.
func NewElimination(unit UnitRef, v uint8, technique, explanation string) Hint {
	return Hint{
		Kind:        HintElimination,
		Unit:        unit,
		Value:       v,
		Technique:   technique,
		Explanation: explanation,
	}
}
