package zzt

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nao1215/stkscan/internal/model"
	"golang.org/x/crypto/sha3"
	"golang.org/x/text/encoding/charmap"
)

// Layout of the world header and board records.
const (
	// HeaderSize is the size of the world header in bytes.
	HeaderSize = 512

	// WorldTypeZZT is the magic world type of ZZT worlds.
	WorldTypeZZT = -1

	// WorldTypeSuperZZT is the magic world type of Super ZZT worlds.
	WorldTypeSuperZZT = -2

	worldNameOffset = 29
	worldNameMax    = 20
	boardTitleMax   = 50

	// MaxFileSize bounds the number of bytes read from a single world file.
	MaxFileSize = 16 << 20
)

var (
	// ErrNotZZT is returned when the header does not carry the ZZT world type.
	ErrNotZZT = errors.New("not a ZZT world file")

	// ErrTruncated is returned when the data ends before a complete header
	// or board could be read.
	ErrTruncated = errors.New("world file is truncated")

	// ErrBoardSize is returned when a board's size prefix is smaller than
	// the data its tile grid occupies.
	ErrBoardSize = errors.New("board size does not match its contents")

	// ErrTooLarge is returned when a world file exceeds MaxFileSize.
	ErrTooLarge = errors.New("world file is too large")
)

// Header holds the world header fields the reader uses.
type Header struct {
	// WorldType is WorldTypeZZT for every file the reader accepts.
	WorldType int16

	// BoardCount is the number of boards including the title screen.
	BoardCount int

	// Name is the world name, decoded from code page 437.
	Name string
}

// LoadFile reads and decodes the world file at path.
func LoadFile(path string) (*model.World, error) {
	f, err := os.Open(path) //nolint:gosec // world paths come from the user
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a complete world from r.
// The returned world carries the SHA3-256 digest of the bytes read.
func Decode(r io.Reader) (*model.World, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read world: %w", err)
	}
	if len(data) > MaxFileSize {
		return nil, ErrTooLarge
	}

	world, err := Parse(data)
	if err != nil {
		return nil, err
	}
	world.Digest = Digest(data)
	return world, nil
}

// Digest returns the hex encoded SHA3-256 of data.
func Digest(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Parse decodes a world held entirely in memory.
func Parse(data []byte) (*model.World, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	world := &model.World{
		Name:   header.Name,
		Boards: make([]model.Board, 0, header.BoardCount),
	}

	r := bytes.NewReader(data[HeaderSize:])
	for i := 0; i < header.BoardCount; i++ {
		board, err := readBoard(r)
		if err != nil {
			return nil, fmt.Errorf("board %d: %w", i, err)
		}
		world.Boards = append(world.Boards, *board)
	}

	return world, nil
}

// ParseHeader decodes the world header at the start of data.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncated, HeaderSize, len(data))
	}

	worldType := int16(binary.LittleEndian.Uint16(data[0:2]))
	if worldType != WorldTypeZZT {
		if worldType == WorldTypeSuperZZT {
			return nil, fmt.Errorf("%w: Super ZZT worlds are not supported", ErrNotZZT)
		}
		return nil, fmt.Errorf("%w: world type %d", ErrNotZZT, worldType)
	}

	boards := int16(binary.LittleEndian.Uint16(data[2:4]))
	if boards < 0 {
		return nil, fmt.Errorf("%w: negative board count %d", ErrNotZZT, boards)
	}

	return &Header{
		WorldType:  worldType,
		BoardCount: int(boards) + 1,
		Name:       pascalString(data[worldNameOffset:], worldNameMax),
	}, nil
}

// readBoard decodes one board record and leaves r at the next board.
func readBoard(r *bytes.Reader) (*model.Board, error) {
	var size uint16
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, fmt.Errorf("%w: board size", ErrTruncated)
	}

	title := make([]byte, 1+boardTitleMax)
	if _, err := io.ReadFull(r, title); err != nil {
		return nil, fmt.Errorf("%w: board title", ErrTruncated)
	}

	board := &model.Board{
		Title:    pascalString(title, boardTitleMax),
		Elements: make([]model.Element, 0, model.BoardTiles),
	}

	consumed := len(title)
	run := make([]byte, 3)
	for len(board.Elements) < model.BoardTiles {
		if _, err := io.ReadFull(r, run); err != nil {
			return nil, fmt.Errorf("%w: tile data of %q", ErrTruncated, board.Title)
		}
		consumed += len(run)

		count := int(run[0])
		if count == 0 {
			count = 256
		}
		// A run spilling past the grid is clipped to the last tile.
		count = min(count, model.BoardTiles-len(board.Elements))

		for i := 0; i < count; i++ {
			board.Elements = append(board.Elements, model.Element{
				TypeID: int(run[1]),
				Color:  int(run[2]),
				Tile:   len(board.Elements),
			})
		}
	}

	rest := int(size) - consumed
	if rest < 0 {
		return nil, fmt.Errorf("%w: %q declares %d bytes, tiles use %d", ErrBoardSize, board.Title, size, consumed)
	}
	// Settings and stats are not decoded. Seeking past the end is allowed,
	// so a short settings block on the last board is tolerated.
	if _, err := r.Seek(int64(rest), io.SeekCurrent); err != nil {
		return nil, err
	}

	return board, nil
}

// pascalString decodes a length-prefixed code page 437 string with a fixed
// capacity of maxLen bytes.
func pascalString(b []byte, maxLen int) string {
	if len(b) == 0 {
		return ""
	}
	n := min(int(b[0]), maxLen, len(b)-1)
	s, err := charmap.CodePage437.NewDecoder().Bytes(b[1 : 1+n])
	if err != nil {
		return string(b[1 : 1+n])
	}
	return string(s)
}
