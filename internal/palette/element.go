package palette

import "strconv"

// ElementType is the numeric element id stored in a board tile.
type ElementType int

// ZZT element ids.
const (
	Empty ElementType = iota
	BoardEdge
	Messenger
	Monitor
	Player
	Ammo
	Torch
	Gem
	Key
	Door
	Scroll
	Passage
	Duplicator
	Bomb
	Energizer
	Star
	Clockwise
	Counter
	Bullet
	Water
	Forest
	Solid
	Normal
	Breakable
	Boulder
	SliderNS
	SliderEW
	Fake
	Invisible
	BlinkWall
	Transporter
	Line
	Ricochet
	BlinkRayH
	Bear
	Ruffian
	Object
	Slime
	Shark
	SpinningGun
	Pusher
	Lion
	Tiger
	BlinkRayV
	Head
	Segment
	Unused46
	TextBlue
	TextGreen
	TextCyan
	TextRed
	TextPurple
	TextBrown
	TextBlack

	// MaxType is one past the highest element id the format defines.
	MaxType
)

var elementNames = [MaxType]string{
	Empty:       "Empty",
	BoardEdge:   "Board Edge",
	Messenger:   "Messenger",
	Monitor:     "Monitor",
	Player:      "Player",
	Ammo:        "Ammo",
	Torch:       "Torch",
	Gem:         "Gem",
	Key:         "Key",
	Door:        "Door",
	Scroll:      "Scroll",
	Passage:     "Passage",
	Duplicator:  "Duplicator",
	Bomb:        "Bomb",
	Energizer:   "Energizer",
	Star:        "Star",
	Clockwise:   "Clockwise Conveyor",
	Counter:     "Counter Clockwise Conveyor",
	Bullet:      "Bullet",
	Water:       "Water",
	Forest:      "Forest",
	Solid:       "Solid Wall",
	Normal:      "Normal Wall",
	Breakable:   "Breakable Wall",
	Boulder:     "Boulder",
	SliderNS:    "Slider (NS)",
	SliderEW:    "Slider (EW)",
	Fake:        "Fake Wall",
	Invisible:   "Invisible Wall",
	BlinkWall:   "Blink Wall",
	Transporter: "Transporter",
	Line:        "Line Wall",
	Ricochet:    "Ricochet",
	BlinkRayH:   "Horizontal Blink Ray",
	Bear:        "Bear",
	Ruffian:     "Ruffian",
	Object:      "Object",
	Slime:       "Slime",
	Shark:       "Shark",
	SpinningGun: "Spinning Gun",
	Pusher:      "Pusher",
	Lion:        "Lion",
	Tiger:       "Tiger",
	BlinkRayV:   "Vertical Blink Ray",
	Head:        "Centipede Head",
	Segment:     "Centipede Segment",
	Unused46:    "Unused",
	TextBlue:    "Blue Text",
	TextGreen:   "Green Text",
	TextCyan:    "Cyan Text",
	TextRed:     "Red Text",
	TextPurple:  "Purple Text",
	TextBrown:   "Brown Text",
	TextBlack:   "Black Text",
}

// Valid reports whether t is an element id defined by the format.
func (t ElementType) Valid() bool {
	return t >= 0 && t < MaxType
}

// String returns the element name, or "Unknown(<id>)" for ids outside the format.
func (t ElementType) String() string {
	if !t.Valid() {
		return "Unknown(" + strconv.Itoa(int(t)) + ")"
	}
	return elementNames[t]
}
