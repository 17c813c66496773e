package zzt

import (
	"log/slog"

	"github.com/nao1215/stkscan/internal/model"
)

// Loader reads world files from disk for the audit runner.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader. A nil logger selects slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads and decodes the world file at path.
func (l *Loader) Load(path string) (*model.World, error) {
	world, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("world loaded",
		"path", path,
		"name", world.Name,
		"boards", len(world.Boards),
		"digest", world.Digest,
	)
	return world, nil
}
