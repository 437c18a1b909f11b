// Package report persists accepted critical points as JSON-lines records,
// one scan result per line.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sbl8/so8vacua/algebra"
	"github.com/sbl8/so8vacua/scan"
)

// Write encodes results to w, one JSON object per line.
func Write(w io.Writer, results []scan.Result) error {
	enc := json.NewEncoder(w)
	for i := range results {
		if err := enc.Encode(&results[i]); err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
	}
	return nil
}

// Read decodes a stream written by Write. Records with a coordinate of the
// wrong dimension are rejected.
func Read(r io.Reader) ([]scan.Result, error) {
	dec := json.NewDecoder(r)
	var out []scan.Result
	for {
		var rec scan.Result
		err := dec.Decode(&rec)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode record %d: %w", len(out), err)
		}
		if len(rec.V70) != algebra.NumNoncompact {
			return nil, fmt.Errorf("record %d: coordinate has %d components, want %d",
				len(out), len(rec.V70), algebra.NumNoncompact)
		}
		out = append(out, rec)
	}
}

// WriteFile writes results to path, replacing any existing file.
func WriteFile(path string, results []scan.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads a result file written by WriteFile.
func ReadFile(path string) ([]scan.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
