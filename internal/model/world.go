package model

// Board grid dimensions of the ZZT format.
const (
	// BoardWidth is the number of tile columns on a board.
	BoardWidth = 60

	// BoardHeight is the number of tile rows on a board.
	BoardHeight = 25

	// BoardTiles is the number of tiles on a board.
	BoardTiles = BoardWidth * BoardHeight
)

// Element is one tile of a board as stored in the world file.
type Element struct {
	// TypeID is the element id. Intact boards only use ids below palette.MaxType.
	TypeID int `json:"type_id"`

	// Color is the raw color attribute byte.
	Color int `json:"color"`

	// Tile is the linear offset of the tile in the 60-column board grid.
	Tile int `json:"tile"`
}

// Position returns the zero-based column and row of the element.
func (e Element) Position() (x, y int) {
	return e.Tile % BoardWidth, e.Tile / BoardWidth
}

// Board is a single screen of a world.
type Board struct {
	// Title is the board name shown in the editor.
	Title string `json:"title"`

	// Elements holds the tiles in file order.
	Elements []Element `json:"elements"`
}

// World is a decoded ZZT world file.
type World struct {
	// Name is the world name stored in the file header.
	Name string `json:"name"`

	// Boards holds every board in file order, title screen first.
	Boards []Board `json:"boards"`

	// Digest is the hex SHA3-256 of the raw file bytes.
	// Empty when the world was not read from a file.
	Digest string `json:"digest,omitempty"`
}

// Target is a world file queued for auditing.
type Target struct {
	// Name is the display name used in every output line.
	Name string `json:"name"`

	// Path is the location of the file on disk.
	Path string `json:"path"`
}
