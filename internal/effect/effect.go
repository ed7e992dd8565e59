// Package effect aligns a case matrix with a control matrix, computes the
// per-row Cohen's d effect size, and writes the result table.
package effect

import (
	"fmt"

	"cohend/internal/matrix"
	"cohend/internal/stats"
)

// Result is one computed output row: the row name and its effect size.
type Result struct {
	Name   string
	CohenD float64
}

// Compute pairs up the rows of the case and control matrices and computes
// Cohen's d for each pair. Row i of cases is compared against row i of
// controls; the matrices must have the same number of rows and matching row
// names at every position.
func Compute(cases, controls *matrix.Matrix) ([]Result, error) {
	if cases.NumRows() != controls.NumRows() {
		return nil, fmt.Errorf("row count mismatch: case matrix has %d rows, control matrix has %d",
			cases.NumRows(), controls.NumRows())
	}

	for i := range cases.Rows {
		if cases.Rows[i].Name != controls.Rows[i].Name {
			return nil, fmt.Errorf("row names do not match at row %d: case %q vs control %q",
				i+1, cases.Rows[i].Name, controls.Rows[i].Name)
		}
	}

	results := make([]Result, 0, cases.NumRows())
	for i, row := range cases.Rows {
		results = append(results, Result{
			Name:   row.Name,
			CohenD: stats.CohenD(row.Values, controls.Rows[i].Values),
		})
	}
	return results, nil
}
