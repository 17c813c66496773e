package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/stkscan/internal/model"
	"github.com/nao1215/stkscan/internal/zzt"
)

// boardSpec describes a board for writeWorld. Tiles are placed from the
// top left corner; the rest of the board is empty.
type boardSpec struct {
	title string
	tiles [][2]byte
}

// writeWorld encodes a ZZT world into dir/file and returns its path.
func writeWorld(t *testing.T, dir, file string, boards ...boardSpec) string {
	t.Helper()

	header := make([]byte, zzt.HeaderSize)
	binary.LittleEndian.PutUint16(header[0:2], 0xFFFF)
	binary.LittleEndian.PutUint16(header[2:4], uint16(len(boards)-1))
	header[29] = byte(len(file))
	copy(header[30:50], file)

	var buf bytes.Buffer
	buf.Write(header)

	for _, b := range boards {
		var body bytes.Buffer
		title := make([]byte, 51)
		title[0] = byte(len(b.title))
		copy(title[1:], b.title)
		body.Write(title)

		for _, tile := range b.tiles {
			body.Write([]byte{1, tile[0], tile[1]})
		}
		rest := model.BoardTiles - len(b.tiles)
		for rest > 0 {
			n := min(rest, 255)
			body.Write([]byte{byte(n), 0, 0x0F})
			rest -= n
		}
		// Board info and stats are not decoded.
		body.Write(make([]byte, 88))

		if err := binary.Write(&buf, binary.LittleEndian, uint16(body.Len())); err != nil {
			t.Fatalf("failed to write board size: %v", err)
		}
		buf.Write(body.Bytes())
	}

	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatalf("failed to write world: %v", err)
	}
	return path
}

// runCLI runs stkscan with args and returns the exit status and output.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}
