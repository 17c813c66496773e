package model

// DetailRecord describes one element using a non-standard color.
type DetailRecord struct {
	WorldName  string `json:"world_name"`
	BoardTitle string `json:"board_title"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Color      int    `json:"color"`
}

// CorruptionWarning marks a board whose scan stopped early because an
// element carried an id outside the format.
type CorruptionWarning struct {
	WorldName  string `json:"world_name"`
	BoardTitle string `json:"board_title"`

	// BoardIndex is the zero-based position of the board in the world.
	BoardIndex int `json:"board_index"`

	// Tile is the offset of the offending element.
	Tile int `json:"tile"`

	// TypeID is the offending element id.
	TypeID int `json:"type_id"`
}

// WorldReport is the complete audit result for one world.
type WorldReport struct {
	// Stats holds the classification counts. Never nil.
	Stats *WorldStats `json:"stats"`

	// Details lists non-standard elements in scan order.
	// Only filled when detail mode is on.
	Details []DetailRecord `json:"details,omitempty"`

	// Warnings lists boards that may be corrupted.
	Warnings []CorruptionWarning `json:"warnings,omitempty"`

	// Path is the file the world was read from.
	Path string `json:"path,omitempty"`

	// Digest is the hex SHA3-256 of the world file.
	Digest string `json:"digest,omitempty"`

	// Error is set when the world could not be read.
	// Such reports carry zero counts and are left out of summaries.
	Error string `json:"error,omitempty"`
}

// NewWorldReport creates an empty report for the named world.
func NewWorldReport(worldName string) *WorldReport {
	return &WorldReport{
		Stats:    NewWorldStats(worldName),
		Details:  make([]DetailRecord, 0),
		Warnings: make([]CorruptionWarning, 0),
	}
}

// Failed reports whether the world could not be audited.
func (r *WorldReport) Failed() bool {
	return r.Error != ""
}

// CorruptedBoards returns the number of boards flagged as possibly corrupted.
func (r *WorldReport) CorruptedBoards() int {
	return len(r.Warnings)
}
