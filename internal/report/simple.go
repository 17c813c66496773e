package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/stkscan/internal/model"
)

// SimpleWriter outputs one summary line per audited world:
//
//	<world> | non-STK: <n> | STK: <m> | % STK: <p>
//
// "non-STK" counts standard elements and "STK" counts non-standard ones.
// The block is preceded by an empty line so it stands apart from the
// progress output above it. Worlds that could not be read get no line.
type SimpleWriter struct {
	baseWriter

	// totals appends a line summing all worlds when more than one was audited.
	totals bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithTotals appends a run total line after the world lines.
func WithTotals(totals bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.totals = totals
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the summary block.
func (w *SimpleWriter) Write(reports []*model.WorldReport) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	for _, r := range reports {
		if r.Failed() {
			continue
		}
		sb.WriteString(SummaryLine(r.Stats))
		sb.WriteString("\n")
	}

	if w.totals {
		t := Summarize(reports)
		if t.Worlds > 1 {
			sb.WriteString(fmt.Sprintf("%d worlds | non-STK: %d | STK: %d | %% STK: %.1f\n",
				t.Worlds, t.Standard, t.NonStandard, t.STKPercentage()))
		}
	}

	return w.output.Write([]byte(sb.String()))
}

// SummaryLine formats the summary line of one world.
func SummaryLine(stats *model.WorldStats) string {
	return fmt.Sprintf("%s | non-STK: %d | STK: %d | %% STK: %.1f",
		stats.WorldName, stats.Standard, stats.NonStandard, stats.STKPercentage())
}
