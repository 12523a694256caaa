package compare

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// FileName is the conventional name of the exported series file.
func (s Series) FileName() string {
	return fmt.Sprintf("%s_%s.csv", s.Model, s.Algorithm)
}

// CSV marshals the series for the external chart renderer: one row per
// point with the puzzle name, the theoretical x-value and the observed
// y-value.
func (s Series) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"puzzle", "theoretical", "actual"}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, p := range s.Points {
		row := []string{
			p.Puzzle,
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write point %s: %w", p.Puzzle, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush: %w", err)
	}
	return buf.Bytes(), nil
}
