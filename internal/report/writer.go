package report

import (
	"io"

	"github.com/nao1215/stkscan/internal/model"
)

// Writer defines the interface for report output.
// Implementations write audit results in various formats.
type Writer interface {
	// Write outputs the reports, in the order given, to the configured
	// destination. Returns the number of bytes written and any error
	// encountered.
	Write(reports []*model.WorldReport) (int, error)
}

// MultiWriter writes to multiple Writers in turn.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the reports to all configured Writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(reports []*model.WorldReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(reports)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// Totals sums the results of a whole run.
type Totals struct {
	// Worlds is the number of worlds audited successfully.
	Worlds int `json:"worlds"`

	// Failed is the number of worlds that could not be read.
	Failed int `json:"failed"`

	Standard        int `json:"standard"`
	NonStandard     int `json:"non_standard"`
	CorruptedBoards int `json:"corrupted_boards"`
}

// Summarize computes run totals. Failed worlds only count toward Failed.
func Summarize(reports []*model.WorldReport) Totals {
	var t Totals
	for _, r := range reports {
		if r.Failed() {
			t.Failed++
			continue
		}
		t.Worlds++
		t.Standard += r.Stats.Standard
		t.NonStandard += r.Stats.NonStandard
		t.CorruptedBoards += r.CorruptedBoards()
	}
	return t
}

// STKPercentage returns the share of non-standard elements over the run.
func (t Totals) STKPercentage() float64 {
	stats := model.WorldStats{Standard: t.Standard, NonStandard: t.NonStandard}
	return stats.STKPercentage()
}
