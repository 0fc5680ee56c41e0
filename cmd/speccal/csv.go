package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-spectro/spectro/pipeline"
)

var errColumns = errors.New("expected 2 or 3 columns")

// readSample parses x,y[,sigma] rows. The column count of the first data
// row fixes the layout for the rest of the file.
func readSample(r io.Reader) (pipeline.Sample, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var s pipeline.Sample
	cols := 0
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return pipeline.Sample{}, err
		}
		line++

		if _, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64); err != nil {
			// Header or label row.
			continue
		}

		if cols == 0 {
			cols = len(rec)
			if cols != 2 && cols != 3 {
				return pipeline.Sample{}, fmt.Errorf("record %d: %w, got %d", line, errColumns, cols)
			}
			if cols == 3 {
				s.Sigma = []float64{}
			}
		}
		if len(rec) != cols {
			return pipeline.Sample{}, fmt.Errorf("record %d: got %d columns, want %d", line, len(rec), cols)
		}

		vals := make([]float64, cols)
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return pipeline.Sample{}, fmt.Errorf("record %d column %d: %w", line, i+1, err)
			}
			vals[i] = v
		}

		s.X = append(s.X, vals[0])
		s.Y = append(s.Y, vals[1])
		if cols == 3 {
			s.Sigma = append(s.Sigma, vals[2])
		}
	}

	return s, nil
}

func writeSample(w io.Writer, s pipeline.Sample) error {
	cw := csv.NewWriter(w)
	for i := range s.X {
		rec := []string{formatFloat(s.X[i]), formatFloat(s.Y[i])}
		if s.Sigma != nil {
			rec = append(rec, formatFloat(s.Sigma[i]))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
