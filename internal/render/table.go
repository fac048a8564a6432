// Package render turns a dock record into the cell voltage table shown to the
// user, and writes tables and status messages as HTML fragments.
package render

import (
	"fmt"

	"github.com/jamesprial/dock-status/internal/dock"
)

// Highlight marks a cell that equals its brick's extremum.
type Highlight string

const (
	HighlightNone Highlight = ""
	HighlightMax  Highlight = "max"
	HighlightMin  Highlight = "min"
)

// Cell is one reading in the table body.
type Cell struct {
	Value     int       `json:"value"`
	Highlight Highlight `json:"highlight,omitempty"`
}

// Row pairs the bottom and top reading of one virtual cell.
type Row struct {
	Label  string `json:"label"`
	Bottom Cell   `json:"bottom"`
	Top    Cell   `json:"top"`
}

// FooterRow is one summary line below the body.
type FooterRow struct {
	Label     string    `json:"label"`
	Bottom    string    `json:"bottom"`
	Top       string    `json:"top"`
	Highlight Highlight `json:"highlight,omitempty"`
}

// Table is the rendered view of one record.
type Table struct {
	Identifier string      `json:"identifier"`
	Rows       []Row       `json:"rows"`
	Footer     []FooterRow `json:"footer"`
	Bottom     dock.Stats  `json:"bottom"`
	Top        dock.Stats  `json:"top"`
}

// Build renders rec for the selected identifier. The caller has already
// checked that the record holds a battery. A record with fewer than
// dock.CellCount readings yields a *dock.DataFormatError.
func Build(identifier string, rec dock.Record) (*Table, error) {
	bricks, err := dock.Split(rec.CellVoltageMV)
	if err != nil {
		return nil, err
	}

	bottom := dock.Compute(bricks.Bottom)
	top := dock.Compute(bricks.Top)

	rows := make([]Row, len(bricks.Bottom))
	for i, v := range bricks.Bottom {
		rows[i] = Row{
			Label:  fmt.Sprintf("Cell %d", i+1),
			Bottom: Cell{Value: v, Highlight: classify(v, bottom)},
			Top:    Cell{Value: bricks.Top[i], Highlight: classify(bricks.Top[i], top)},
		}
	}

	return &Table{
		Identifier: identifier,
		Rows:       rows,
		Footer: []FooterRow{
			{Label: "Max", Bottom: fmt.Sprint(bottom.Max), Top: fmt.Sprint(top.Max), Highlight: HighlightMax},
			{Label: "Min", Bottom: fmt.Sprint(bottom.Min), Top: fmt.Sprint(top.Min), Highlight: HighlightMin},
			{Label: "Avg", Bottom: bottom.AverageText(), Top: top.AverageText()},
			{Label: "Total", Bottom: fmt.Sprint(bottom.Sum), Top: fmt.Sprint(top.Sum)},
		},
		Bottom: bottom,
		Top:    top,
	}, nil
}

// classify compares v against its brick's extrema. Every tying cell is
// highlighted; max takes precedence when max == min.
func classify(v int, s dock.Stats) Highlight {
	switch v {
	case s.Max:
		return HighlightMax
	case s.Min:
		return HighlightMin
	default:
		return HighlightNone
	}
}
