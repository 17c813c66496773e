package zzt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestParse tests decoding of well formed worlds.
func TestParse(t *testing.T) {
	t.Parallel()

	data := encodeWorld(t, "TOWN",
		testBoard{title: "Title screen", runs: grid([2]byte{8, 3}, [2]byte{8, 99}), settings: 88},
		testBoard{title: "Cave", runs: grid([2]byte{200, 15}), settings: 120},
	)

	world, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("world name", func(t *testing.T) {
		t.Parallel()
		if world.Name != "TOWN" {
			t.Errorf("expected TOWN, got %q", world.Name)
		}
	})

	t.Run("boards in file order", func(t *testing.T) {
		t.Parallel()
		if len(world.Boards) != 2 {
			t.Fatalf("expected 2 boards, got %d", len(world.Boards))
		}
		if world.Boards[0].Title != "Title screen" || world.Boards[1].Title != "Cave" {
			t.Errorf("unexpected titles %q, %q", world.Boards[0].Title, world.Boards[1].Title)
		}
	})

	t.Run("every tile becomes an element", func(t *testing.T) {
		t.Parallel()
		for _, b := range world.Boards {
			if len(b.Elements) != 1500 {
				t.Errorf("board %q: expected 1500 elements, got %d", b.Title, len(b.Elements))
			}
		}
	})

	t.Run("elements carry id color and tile", func(t *testing.T) {
		t.Parallel()
		second := world.Boards[0].Elements[1]
		if second.TypeID != 8 || second.Color != 99 || second.Tile != 1 {
			t.Errorf("unexpected element %+v", second)
		}
		last := world.Boards[0].Elements[1499]
		if last.TypeID != 0 || last.Tile != 1499 {
			t.Errorf("unexpected last element %+v", last)
		}
	})

	t.Run("out of range ids are kept", func(t *testing.T) {
		t.Parallel()
		if got := world.Boards[1].Elements[0].TypeID; got != 200 {
			t.Errorf("expected id 200, got %d", got)
		}
	})
}

// TestParseText tests code page 437 decoding of names.
func TestParseText(t *testing.T) {
	t.Parallel()

	data := encodeWorld(t, "CAF\x82", testBoard{title: "\x9c Shop", runs: grid()})
	world, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if world.Name != "CAFé" {
		t.Errorf("expected CAFé, got %q", world.Name)
	}
	if world.Boards[0].Title != "£ Shop" {
		t.Errorf("expected £ Shop, got %q", world.Boards[0].Title)
	}
}

// TestParseRunOverflow tests that a run spilling past the grid is clipped.
func TestParseRunOverflow(t *testing.T) {
	t.Parallel()

	runs := make([][3]byte, 0, 6)
	for i := 0; i < 6; i++ {
		runs = append(runs, [3]byte{0, 22, 14})
	}
	world, err := Parse(encodeWorld(t, "BIG", testBoard{title: "Walls", runs: runs}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(world.Boards[0].Elements); got != 1500 {
		t.Errorf("expected 1500 elements, got %d", got)
	}
}

// TestParseErrors tests rejection of malformed data.
func TestParseErrors(t *testing.T) {
	t.Parallel()

	valid := encodeWorld(t, "OK", testBoard{title: "A", runs: grid(), settings: 10})

	superZZT := bytes.Clone(valid)
	binary.LittleEndian.PutUint16(superZZT[0:2], uint16(0xFFFE))

	textFile := bytes.Clone(valid)
	copy(textFile, "hello")

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty input", data: nil, want: ErrTruncated},
		{name: "short header", data: valid[:100], want: ErrTruncated},
		{name: "header without boards", data: valid[:HeaderSize], want: ErrTruncated},
		{name: "cut inside tile data", data: valid[:HeaderSize+60], want: ErrTruncated},
		{name: "super zzt world", data: superZZT, want: ErrNotZZT},
		{name: "other file", data: textFile, want: ErrNotZZT},
		{
			name: "size smaller than tiles",
			data: encodeWorld(t, "BAD", testBoard{title: "A", runs: grid(), size: 10}),
			want: ErrBoardSize,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.data)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestDecode tests reading from a stream.
func TestDecode(t *testing.T) {
	t.Parallel()

	data := encodeWorld(t, "HASHED", testBoard{title: "A", runs: grid()})

	world, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if world.Digest != Digest(data) {
		t.Errorf("expected digest %s, got %s", Digest(data), world.Digest)
	}
	if len(world.Digest) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(world.Digest))
	}

	other := encodeWorld(t, "OTHER", testBoard{title: "A", runs: grid()})
	if Digest(other) == world.Digest {
		t.Error("expected different files to have different digests")
	}
}

// TestLoadFile tests reading worlds from disk.
func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("reads a world", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "TOWN.ZZT")
		if err := os.WriteFile(path, encodeWorld(t, "TOWN", testBoard{title: "A", runs: grid()}), 0o600); err != nil {
			t.Fatalf("failed to write world: %v", err)
		}
		world, err := LoadFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if world.Name != "TOWN" {
			t.Errorf("expected TOWN, got %q", world.Name)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFile(filepath.Join(dir, "MISSING.ZZT"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected not exist error, got %v", err)
		}
	})

	t.Run("loader adapts LoadFile", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "CAVE.ZZT")
		if err := os.WriteFile(path, encodeWorld(t, "CAVE", testBoard{title: "A", runs: grid()}), 0o600); err != nil {
			t.Fatalf("failed to write world: %v", err)
		}
		world, err := NewLoader(nil).Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if world.Digest == "" {
			t.Error("expected digest to be set")
		}
	})
}
