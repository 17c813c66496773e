package palette

import (
	"errors"
	"slices"
	"testing"
)

// TestPalette tests the Palette set operations.
func TestPalette(t *testing.T) {
	t.Parallel()

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()
		var p Palette
		if !p.Empty() {
			t.Error("expected zero palette to be empty")
		}
		if p.Contains(0) {
			t.Error("expected empty palette to contain nothing")
		}
	})

	t.Run("New sorts and removes duplicates", func(t *testing.T) {
		t.Parallel()
		p := New(15, 3, 15, 7)
		want := []int{3, 7, 15}
		if got := p.Colors(); !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Single holds one color", func(t *testing.T) {
		t.Parallel()
		p := Single(32)
		if p.Len() != 1 || !p.Contains(32) {
			t.Errorf("expected palette {32}, got %v", p.Colors())
		}
	})

	t.Run("With does not modify the receiver", func(t *testing.T) {
		t.Parallel()
		base := New(1, 2)
		extended := base.With(3)
		if base.Contains(3) {
			t.Error("expected base palette to stay unchanged")
		}
		if !extended.Contains(3) || !extended.Contains(1) {
			t.Errorf("expected extended palette to hold 1 and 3, got %v", extended.Colors())
		}
	})

	t.Run("Colors returns a copy", func(t *testing.T) {
		t.Parallel()
		p := New(3, 5)
		c := p.Colors()
		c[0] = 99
		if p.Contains(99) {
			t.Error("expected mutation of Colors result not to leak into palette")
		}
	})
}

// TestSharedPalettes verifies the shared palette literals.
func TestSharedPalettes(t *testing.T) {
	t.Parallel()

	t.Run("standard hack palette", func(t *testing.T) {
		t.Parallel()
		if StandardHack.Len() != 23 {
			t.Errorf("expected 23 colors, got %d", StandardHack.Len())
		}
		for _, c := range []int{3, 15, 20, 143, 239} {
			if !StandardHack.Contains(c) {
				t.Errorf("expected StandardHack to contain %d", c)
			}
		}
		for _, c := range []int{0, 1, 99, 159, 249} {
			if StandardHack.Contains(c) {
				t.Errorf("expected StandardHack not to contain %d", c)
			}
		}
	})

	t.Run("water extends standard hack", func(t *testing.T) {
		t.Parallel()
		if WaterColors.Len() != StandardHack.Len()+2 {
			t.Errorf("expected %d colors, got %d", StandardHack.Len()+2, WaterColors.Len())
		}
		if !WaterColors.Contains(159) || !WaterColors.Contains(249) {
			t.Error("expected water to contain 159 and 249")
		}
	})

	t.Run("passage palette", func(t *testing.T) {
		t.Parallel()
		want := []int{15, 31, 47, 63, 79, 95, 111, 127}
		if got := PassageColors.Colors(); !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("unrestricted is empty", func(t *testing.T) {
		t.Parallel()
		if !Unrestricted.Empty() {
			t.Error("expected Unrestricted to be empty")
		}
	})
}

// TestTableAllowedColors tests lookups against the default table.
func TestTableAllowedColors(t *testing.T) {
	t.Parallel()

	table := Default()

	tests := []struct {
		name string
		id   ElementType
		want Palette
	}{
		{name: "key uses standard hack", id: Key, want: StandardHack},
		{name: "door uses standard hack", id: Door, want: StandardHack},
		{name: "object uses standard hack", id: Object, want: StandardHack},
		{name: "passage uses passage colors", id: Passage, want: PassageColors},
		{name: "water uses water colors", id: Water, want: WaterColors},
		{name: "shark uses shark colors", id: Shark, want: SharkColors},
		{name: "duplicator is white", id: Duplicator, want: Single(15)},
		{name: "ammo is fixed", id: Ammo, want: Single(3)},
		{name: "torch is fixed", id: Torch, want: Single(6)},
		{name: "energizer is fixed", id: Energizer, want: Single(5)},
		{name: "forest is fixed", id: Forest, want: Single(32)},
		{name: "ricochet is fixed", id: Ricochet, want: Single(10)},
		{name: "bear is fixed", id: Bear, want: Single(6)},
		{name: "ruffian is fixed", id: Ruffian, want: Single(13)},
		{name: "lion is fixed", id: Lion, want: Single(12)},
		{name: "tiger is fixed", id: Tiger, want: Single(11)},
		{name: "empty is unrestricted", id: Empty, want: Unrestricted},
		{name: "player is unrestricted", id: Player, want: Unrestricted},
		{name: "scroll is unrestricted", id: Scroll, want: Unrestricted},
		{name: "text is unrestricted", id: TextBlack, want: Unrestricted},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := table.AllowedColors(int(tt.id))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got.Colors(), tt.want.Colors()) {
				t.Errorf("expected %v, got %v", tt.want.Colors(), got.Colors())
			}
		})
	}

	t.Run("every id in range resolves", func(t *testing.T) {
		t.Parallel()
		for id := 0; id < int(MaxType); id++ {
			if _, err := table.AllowedColors(id); err != nil {
				t.Errorf("id %d: unexpected error: %v", id, err)
			}
		}
	})

	t.Run("ids outside range return UnknownTypeError", func(t *testing.T) {
		t.Parallel()
		for _, id := range []int{-1, int(MaxType), 54, 200, 255} {
			_, err := table.AllowedColors(id)
			var unknown *UnknownTypeError
			if !errors.As(err, &unknown) {
				t.Fatalf("id %d: expected UnknownTypeError, got %v", id, err)
			}
			if unknown.TypeID != id {
				t.Errorf("expected TypeID %d, got %d", id, unknown.TypeID)
			}
		}
	})
}

// TestTableRestricted tests the Restricted helper.
func TestTableRestricted(t *testing.T) {
	t.Parallel()

	table := Default()

	if !table.Restricted(int(Gem)) {
		t.Error("expected gem to be restricted")
	}
	if table.Restricted(int(Empty)) {
		t.Error("expected empty to be unrestricted")
	}
	if table.Restricted(99) {
		t.Error("expected unknown id not to be reported as restricted")
	}
}

// TestNewTable tests construction from explicit entries.
func TestNewTable(t *testing.T) {
	t.Parallel()

	table := NewTable(map[ElementType]Palette{
		Gem:          Single(1),
		MaxType + 10: Single(2),
	})

	p, err := table.AllowedColors(int(Gem))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Contains(1) {
		t.Errorf("expected gem palette {1}, got %v", p.Colors())
	}

	p, err = table.AllowedColors(int(Key))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Empty() {
		t.Errorf("expected missing entry to be unrestricted, got %v", p.Colors())
	}

	if _, err := table.AllowedColors(int(MaxType) + 10); err == nil {
		t.Error("expected out of range entry to be ignored")
	}
}

// TestElementTypeString tests element names.
func TestElementTypeString(t *testing.T) {
	t.Parallel()

	if Door.String() != "Door" {
		t.Errorf("expected Door, got %q", Door.String())
	}
	if got := ElementType(60).String(); got != "Unknown(60)" {
		t.Errorf("expected Unknown(60), got %q", got)
	}
	for id := ElementType(0); id < MaxType; id++ {
		if id.String() == "" {
			t.Errorf("id %d has no name", id)
		}
	}
}
