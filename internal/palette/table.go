package palette

import "fmt"

// UnknownTypeError is returned when an element id falls outside [0, MaxType).
// Such an id cannot come from an intact board.
type UnknownTypeError struct {
	TypeID int
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown element type %d (valid range is 0-%d)", e.TypeID, int(MaxType)-1)
}

// Table maps every element type to its standard palette.
// A Table is read-only after construction and safe for concurrent use.
type Table struct {
	entries map[ElementType]Palette
}

// NewTable builds a table from explicit entries. Every id in [0, MaxType)
// missing from entries is recorded as Unrestricted, so lookups never fall
// back to an implicit default.
func NewTable(entries map[ElementType]Palette) *Table {
	t := &Table{entries: make(map[ElementType]Palette, int(MaxType))}
	for id := ElementType(0); id < MaxType; id++ {
		t.entries[id] = Unrestricted
	}
	for id, p := range entries {
		if id.Valid() {
			t.entries[id] = p
		}
	}
	return t
}

// AllowedColors returns the standard palette for the element id.
// An empty palette means every color is standard for that type.
// Ids outside [0, MaxType) yield an *UnknownTypeError.
func (t *Table) AllowedColors(typeID int) (Palette, error) {
	id := ElementType(typeID)
	if !id.Valid() {
		return Palette{}, &UnknownTypeError{TypeID: typeID}
	}
	return t.entries[id], nil
}

// Restricted reports whether the element id has a non-empty palette.
// It returns false for ids outside the format.
func (t *Table) Restricted(typeID int) bool {
	p, err := t.AllowedColors(typeID)
	return err == nil && !p.Empty()
}

// defaultEntries is the curated mapping used by Default.
var defaultEntries = map[ElementType]Palette{
	Gem:         StandardHack,
	Key:         StandardHack,
	Door:        StandardHack,
	Bomb:        StandardHack,
	Clockwise:   StandardHack,
	Counter:     StandardHack,
	Solid:       StandardHack,
	Normal:      StandardHack,
	Breakable:   StandardHack,
	Boulder:     StandardHack,
	SliderNS:    StandardHack,
	SliderEW:    StandardHack,
	Fake:        StandardHack,
	Invisible:   StandardHack,
	BlinkWall:   StandardHack,
	Transporter: StandardHack,
	Line:        StandardHack,
	BlinkRayH:   StandardHack,
	BlinkRayV:   StandardHack,
	Object:      StandardHack,
	Slime:       StandardHack,
	SpinningGun: StandardHack,
	Pusher:      StandardHack,
	Head:        StandardHack,
	Segment:     StandardHack,

	Water:      WaterColors,
	Passage:    PassageColors,
	Shark:      SharkColors,
	Duplicator: Single(15),

	Ammo:      Single(3),
	Torch:     Single(6),
	Energizer: Single(5),
	Forest:    Single(32),
	Ricochet:  Single(10),
	Bear:      Single(6),
	Ruffian:   Single(13),
	Lion:      Single(12),
	Tiger:     Single(11),

	Empty:      Unrestricted,
	BoardEdge:  Unrestricted,
	Messenger:  Unrestricted,
	Monitor:    Unrestricted,
	Player:     Unrestricted,
	Scroll:     Unrestricted,
	Star:       Unrestricted,
	Bullet:     Unrestricted,
	Unused46:   Unrestricted,
	TextBlue:   Unrestricted,
	TextGreen:  Unrestricted,
	TextCyan:   Unrestricted,
	TextRed:    Unrestricted,
	TextPurple: Unrestricted,
	TextBrown:  Unrestricted,
	TextBlack:  Unrestricted,
}

var defaultTable = NewTable(defaultEntries)

// Default returns the process-wide standard palette table.
func Default() *Table {
	return defaultTable
}
