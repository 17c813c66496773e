package audit

import (
	"errors"
	"log/slog"

	"github.com/nao1215/stkscan/internal/model"
	"github.com/nao1215/stkscan/internal/palette"
)

// Scanner walks boards and worlds, classifying every element.
type Scanner struct {
	classifier *Classifier

	// detail enables collection of a DetailRecord per non-standard element.
	detail bool

	// restrictedOnly skips elements whose type has no palette restriction,
	// so they count neither as standard nor as non-standard.
	restrictedOnly bool

	observer Observer
	logger   *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithDetail enables per-element detail records.
func WithDetail(detail bool) Option {
	return func(s *Scanner) {
		s.detail = detail
	}
}

// WithRestrictedOnly excludes unrestricted element types from the counts.
func WithRestrictedOnly(restrictedOnly bool) Option {
	return func(s *Scanner) {
		s.restrictedOnly = restrictedOnly
	}
}

// WithObserver sets the receiver of detail and corruption events.
func WithObserver(o Observer) Option {
	return func(s *Scanner) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithLogger sets a custom logger for the scanner.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a Scanner classifying against table.
// A nil table selects palette.Default().
func NewScanner(table *palette.Table, opts ...Option) *Scanner {
	s := &Scanner{
		classifier: NewClassifier(table),
		observer:   NopObserver{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// BoardResult holds the outcome of scanning one board.
type BoardResult struct {
	Standard    int
	NonStandard int

	// Details is empty unless detail mode is on.
	Details []model.DetailRecord

	// Warning is set when the scan stopped on an unknown element id.
	// The counts then cover only the elements before that one.
	Warning *model.CorruptionWarning
}

// ScanBoard classifies the elements of board in order. index is the
// position of the board in its world and is only used for reporting.
//
// An element with an id outside the format ends the scan of this board.
// Counts gathered up to that element are kept and one CorruptionWarning is
// emitted; the caller is expected to continue with the next board.
func (s *Scanner) ScanBoard(worldName string, index int, board *model.Board) BoardResult {
	result := BoardResult{Details: make([]model.DetailRecord, 0)}

	for _, e := range board.Elements {
		outcome, err := s.classifier.Classify(e)
		if err != nil {
			var unknown *palette.UnknownTypeError
			if !errors.As(err, &unknown) {
				s.logger.Error("unexpected classification error",
					"world", worldName,
					"board", board.Title,
					"error", err,
				)
			}
			w := model.CorruptionWarning{
				WorldName:  worldName,
				BoardTitle: board.Title,
				BoardIndex: index,
				Tile:       e.Tile,
				TypeID:     e.TypeID,
			}
			s.logger.Debug("board scan stopped on unknown element",
				"world", worldName,
				"board", board.Title,
				"boardIndex", index,
				"tile", e.Tile,
				"typeID", e.TypeID,
			)
			s.observer.BoardCorrupted(w)
			result.Warning = &w
			return result
		}

		switch outcome {
		case Standard:
			if s.restrictedOnly && !s.classifier.Restricted(e) {
				continue
			}
			result.Standard++
		case NonStandard:
			result.NonStandard++
			if s.detail {
				x, y := e.Position()
				rec := model.DetailRecord{
					WorldName:  worldName,
					BoardTitle: board.Title,
					X:          x,
					Y:          y,
					Color:      e.Color,
				}
				s.observer.DetailFound(rec)
				result.Details = append(result.Details, rec)
			}
		case Unclassifiable:
			// Unreachable: Classify reports it through err.
		}
	}

	return result
}

// Aggregate scans every board of world in order and returns exactly one
// report, however many boards turned out to be corrupted.
func (s *Scanner) Aggregate(worldName string, world *model.World) *model.WorldReport {
	report := model.NewWorldReport(worldName)
	report.Digest = world.Digest

	for i := range world.Boards {
		board := &world.Boards[i]
		result := s.ScanBoard(worldName, i, board)

		report.Stats.Add(result.Standard, result.NonStandard)
		report.Details = append(report.Details, result.Details...)
		if result.Warning != nil {
			report.Warnings = append(report.Warnings, *result.Warning)
		}
	}

	s.logger.Debug("world aggregated",
		"world", worldName,
		"boards", len(world.Boards),
		"standard", report.Stats.Standard,
		"nonStandard", report.Stats.NonStandard,
		"corruptedBoards", report.CorruptedBoards(),
	)

	return report
}
