// Package matrix loads delimited expression matrices: one label column
// followed by numeric sample columns, with a header line that is ignored.
package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Row is a single labeled observation: a row name and its sample values.
type Row struct {
	Name   string
	Values []float64
}

// Matrix is an ordered collection of labeled rows, in file order.
type Matrix struct {
	Rows []Row
}

// NumRows returns the number of data rows in the matrix.
func (m *Matrix) NumRows() int { return len(m.Rows) }

// Read parses the delimited file at path into a Matrix. The first line is
// treated as a header and discarded; in every following line the first field
// is the row name and the remaining fields are parsed as float64.
func Read(path string, delimiter rune) (*Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open matrix file: %w", err)
	}
	defer file.Close()

	m, err := parse(file, delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func parse(r io.Reader, delimiter rune) (*Matrix, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter

	// Header row: only its width matters, the csv reader pins the field
	// count of every later record to it.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("missing header line")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	m := &Matrix{}
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row := Row{
			Name:   rec[0],
			Values: make([]float64, 0, len(rec)-1),
		}
		for i, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, row %q, column %d: non-numeric value %q",
					line, row.Name, i+2, field)
			}
			row.Values = append(row.Values, v)
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}
