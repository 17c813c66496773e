package report

import (
	"fmt"
	"io"

	"github.com/nao1215/stkscan/internal/model"
)

// ProgressWriter prints audit events as they happen. It implements
// audit.Observer.
//
// Observer methods cannot fail, so the first write error is kept and
// reported by Err; later events are dropped.
type ProgressWriter struct {
	baseWriter

	started bool
	err     error
}

// NewProgressWriter creates a ProgressWriter that outputs to the given writer.
func NewProgressWriter(output io.Writer) *ProgressWriter {
	return &ProgressWriter{baseWriter: newBaseWriter(output)}
}

// WorldStarted prints "Checking <world>...". The first call is preceded
// by an empty line.
func (p *ProgressWriter) WorldStarted(target model.Target) {
	if !p.started {
		p.started = true
		p.printf("\n")
	}
	p.printf("Checking %s...\n", target.Name)
}

// DetailFound prints one non-standard element.
func (p *ProgressWriter) DetailFound(rec model.DetailRecord) {
	p.printf("%s STK element on %s %d,%d: %d\n", rec.WorldName, rec.BoardTitle, rec.X, rec.Y, rec.Color)
}

// BoardCorrupted prints a corruption warning for one board.
func (p *ProgressWriter) BoardCorrupted(w model.CorruptionWarning) {
	p.printf("Warning: %s board %s may be corrupted.\n", w.WorldName, w.BoardTitle)
}

// WorldFailed prints why a world was skipped.
func (p *ProgressWriter) WorldFailed(target model.Target, err error) {
	p.printf("Error: %s could not be read: %v\n", target.Name, err)
}

// Err returns the first write error, if any.
func (p *ProgressWriter) Err() error {
	return p.err
}

func (p *ProgressWriter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.output, format, args...)
}
