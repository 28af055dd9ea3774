package main

import (
	"encoding/json"
	"fmt"
	"io"

	"natlint/internal/observ"
)

func printTimings(out io.Writer, timer *observ.Timer, asJSON bool) error {
	if out == nil || timer == nil {
		return nil
	}
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(timer.Report()); err != nil {
			return fmt.Errorf("failed to encode timings: %w", err)
		}
		return nil
	}
	if _, err := io.WriteString(out, timer.Summary()); err != nil {
		return fmt.Errorf("failed to print timings: %w", err)
	}
	return nil
}
