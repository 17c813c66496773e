package zzt

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/nao1215/stkscan/internal/model"
)

// testBoard describes a board for encodeWorld.
type testBoard struct {
	title string
	runs  [][3]byte

	// settings is the number of zero bytes appended after the tile data.
	settings int

	// size overrides the size prefix when non-zero.
	size int
}

// grid returns runs placing tiles at the start of the board and filling the
// rest with empties.
func grid(tiles ...[2]byte) [][3]byte {
	runs := make([][3]byte, 0, len(tiles)+8)
	for _, tile := range tiles {
		runs = append(runs, [3]byte{1, tile[0], tile[1]})
	}
	rest := model.BoardTiles - len(tiles)
	for rest >= 256 {
		runs = append(runs, [3]byte{0, 0, 0})
		rest -= 256
	}
	if rest > 0 {
		runs = append(runs, [3]byte{byte(rest), 0, 0})
	}
	return runs
}

// encodeWorld builds the bytes of a ZZT world file.
func encodeWorld(t *testing.T, name string, boards ...testBoard) []byte {
	t.Helper()

	header := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(header[0:2], uint16(0xFFFF))
	binary.LittleEndian.PutUint16(header[2:4], uint16(len(boards)-1))
	header[worldNameOffset] = byte(len(name))
	copy(header[worldNameOffset+1:], name)

	var buf bytes.Buffer
	buf.Write(header)

	for _, b := range boards {
		var body bytes.Buffer
		title := make([]byte, 1+boardTitleMax)
		title[0] = byte(len(b.title))
		copy(title[1:], b.title)
		body.Write(title)
		for _, run := range b.runs {
			body.Write(run[:])
		}
		body.Write(make([]byte, b.settings))

		size := body.Len()
		if b.size != 0 {
			size = b.size
		}
		if err := binary.Write(&buf, binary.LittleEndian, uint16(size)); err != nil {
			t.Fatalf("failed to write board size: %v", err)
		}
		buf.Write(body.Bytes())
	}

	return buf.Bytes()
}
