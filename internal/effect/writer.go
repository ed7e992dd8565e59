package effect

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV writes the result table to path as comma-separated values with a
// `row_names,cohen_d` header, one line per result, in input order. Callers
// run Compute first, so a failed run never leaves a partial output file.
func WriteCSV(path string, results []Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write([]string{"row_names", "cohen_d"}); err != nil {
		file.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range results {
		rec := []string{r.Name, strconv.FormatFloat(r.CohenD, 'g', -1, 64)}
		if err := w.Write(rec); err != nil {
			file.Close()
			return fmt.Errorf("failed to write row %q: %w", r.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
