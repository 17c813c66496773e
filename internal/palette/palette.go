package palette

import "slices"

// Palette is an immutable set of color codes.
// The zero value is the empty palette, which means "no restriction".
type Palette struct {
	// colors is sorted and free of duplicates.
	colors []int
}

// New returns a palette holding the given color codes.
func New(colors ...int) Palette {
	if len(colors) == 0 {
		return Palette{}
	}
	c := slices.Clone(colors)
	slices.Sort(c)
	return Palette{colors: slices.Compact(c)}
}

// Single returns a palette holding exactly one color code.
func Single(color int) Palette {
	return Palette{colors: []int{color}}
}

// With returns a new palette holding the colors of p plus the given ones.
// p itself is left untouched.
func (p Palette) With(colors ...int) Palette {
	return New(append(slices.Clone(p.colors), colors...)...)
}

// Empty reports whether the palette places no restriction on colors.
func (p Palette) Empty() bool {
	return len(p.colors) == 0
}

// Len returns the number of color codes in the palette.
func (p Palette) Len() int {
	return len(p.colors)
}

// Contains reports whether color is a member of the palette.
func (p Palette) Contains(color int) bool {
	_, found := slices.BinarySearch(p.colors, color)
	return found
}

// Colors returns the color codes in ascending order.
func (p Palette) Colors() []int {
	return slices.Clone(p.colors)
}

// Shared palettes. Each is declared once and referenced by every element
// type that uses it.
var (
	// StandardHack holds the colors conventionally produced for unmodified
	// elements of most types.
	StandardHack = New(3, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15, 20, 31, 47, 63, 79, 95, 111, 127, 143, 191, 223, 239)

	// PassageColors holds the white-on-background colors a passage can take.
	PassageColors = New(15, 31, 47, 63, 79, 95, 111, 127)

	// WaterColors extends StandardHack with the two blinking water variants.
	WaterColors = StandardHack.With(159, 249)

	// SharkColors holds the colors a shark takes on the water it swims in.
	SharkColors = New(7, 23, 39, 55, 71, 87, 103, 119)

	// Unrestricted is the empty palette: every color is standard.
	Unrestricted = Palette{}
)
