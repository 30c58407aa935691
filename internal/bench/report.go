package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CSVHeader is the first row of every CSV report.
var CSVHeader = []string{"size", "sequence", "comparisons", "swaps", "array_accesses", "time_nano"}

// WriteCSV writes the header and one row per result.
func WriteCSV(w io.Writer, report *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, res := range report.Results {
		row := []string{
			strconv.Itoa(res.Size),
			res.Sequence.String(),
			strconv.FormatInt(res.Stats.Comparisons, 10),
			strconv.FormatInt(res.Stats.Swaps, 10),
			strconv.FormatInt(res.Stats.ArrayAccesses, 10),
			strconv.FormatInt(res.Stats.TimeNano(), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the full report as indented JSON.
func WriteJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteFile writes report to path in the given format, creating parent
// directories as needed.
func WriteFile(path, format string, report *Report) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close report file: %w", closeErr)
		}
	}()

	switch format {
	case FormatCSV:
		err = WriteCSV(f, report)
	case FormatJSON:
		err = WriteJSON(f, report)
	default:
		return fmt.Errorf("%w: format %q must be csv or json", ErrInvalidPlan, format)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteSummary prints a human-readable summary grouped by size, with
// thousands separators.
func WriteSummary(w io.Writer, report *Report) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "Run %s (%s, strategy %s, seed %d)\n",
		report.RunID, report.Name, report.Strategy, report.Seed); err != nil {
		return err
	}

	lastSize := -1
	for _, res := range report.Results {
		if res.Size != lastSize {
			if _, err := p.Fprintf(w, "\nSize: %d\n", res.Size); err != nil {
				return err
			}
			lastSize = res.Size
		}
		if err := writeResult(p, w, res); err != nil {
			return err
		}
	}

	unsorted := len(report.Unsorted())
	if unsorted > 0 {
		_, err := p.Fprintf(w, "\n%d of %d results were not sorted\n", unsorted, len(report.Results))
		return err
	}
	_, err := p.Fprintf(w, "\nAll %d results sorted\n", len(report.Results))
	return err
}

// WriteProgress prints a single result as it completes.
func WriteProgress(w io.Writer, res Result) error {
	return writeResult(message.NewPrinter(language.English), w, res)
}

func writeResult(p *message.Printer, w io.Writer, res Result) error {
	_, err := p.Fprintf(w, "  %-9s size=%d comparisons=%d swaps=%d accesses=%d time=%dns%s\n",
		res.Sequence.String(),
		res.Size,
		res.Stats.Comparisons,
		res.Stats.Swaps,
		res.Stats.ArrayAccesses,
		res.Stats.TimeNano(),
		unsortedMarker(res),
	)
	return err
}

func unsortedMarker(res Result) string {
	if res.Sorted {
		return ""
	}
	return " ERROR: not sorted"
}
