package audit

import (
	"github.com/nao1215/stkscan/internal/model"
	"github.com/nao1215/stkscan/internal/palette"
)

// Outcome is the classification of one element.
type Outcome int

const (
	// Standard means the element uses a color from its palette,
	// or its type places no restriction on color.
	Standard Outcome = iota

	// NonStandard means the element uses a color outside its palette (STK).
	NonStandard

	// Unclassifiable means the element id is outside the format.
	Unclassifiable
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Standard:
		return "standard"
	case NonStandard:
		return "non-standard"
	case Unclassifiable:
		return "unclassifiable"
	default:
		return "unknown"
	}
}

// Classifier evaluates elements against a palette table.
type Classifier struct {
	table *palette.Table
}

// NewClassifier creates a Classifier backed by table.
// A nil table selects palette.Default().
func NewClassifier(table *palette.Table) *Classifier {
	if table == nil {
		table = palette.Default()
	}
	return &Classifier{table: table}
}

// Classify returns the outcome for e. When the element id is outside the
// format it returns Unclassifiable together with a *palette.UnknownTypeError.
func (c *Classifier) Classify(e model.Element) (Outcome, error) {
	allowed, err := c.table.AllowedColors(e.TypeID)
	if err != nil {
		return Unclassifiable, err
	}
	if allowed.Empty() || allowed.Contains(e.Color) {
		return Standard, nil
	}
	return NonStandard, nil
}

// Restricted reports whether the element's type has a non-empty palette.
func (c *Classifier) Restricted(e model.Element) bool {
	return c.table.Restricted(e.TypeID)
}
