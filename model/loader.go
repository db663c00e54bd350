package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultAliveMarkers are the characters that mark a live cell in a world file
	DefaultAliveMarkers = "X1"

	maxLineBytes = 1 << 20
)

// Loader reads world configurations.
//
// The format is line oriented: a header line "<height> <width>", then height
// rows of at least width characters each. A character found in Alive marks a
// live cell; any other character is dead. Characters past width and lines
// after the last row are ignored.
type Loader struct {
	Alive string
}

// LoadWorld reads the world at path using the default alive markers
func LoadWorld(path string) (*World, error) {
	return Loader{}.Load(path)
}

// ReadWorld parses a world from r using the default alive markers
func ReadWorld(r io.Reader) (*World, error) {
	return Loader{}.Read(r)
}

// Load opens path and parses it. The file is closed before returning.
func (l Loader) Load(path string) (*World, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: errors.Wrap(err, "[Loader.Load] failed to open world file")}
	}
	defer f.Close()

	world, err := l.Read(f)
	if err != nil {
		var ie *IOError
		if errors.As(err, &ie) && ie.Path == "" {
			ie.Path = path
		}
		return nil, err
	}
	return world, nil
}

// Read parses a world from r. On failure it returns a *FormatError or an
// *IOError and no world.
func (l Loader) Read(r io.Reader) (*World, error) {
	alive := l.Alive
	if alive == "" {
		alive = DefaultAliveMarkers
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, &IOError{Err: errors.Wrap(err, "[Loader.Read] failed to read header")}
		}
		return nil, &FormatError{Line: 1, Row: -1, Expected: "\"<height> <width>\"", Found: "end of input"}
	}

	height, width, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	// cells grow with the rows actually read, so a header that promises
	// more than the input holds fails on the missing row
	var cells []bool
	for row := range height {
		line := row + 2
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, &IOError{Err: errors.Wrapf(err, "[Loader.Read] failed to read row %d", row)}
			}
			return nil, &FormatError{
				Line:     line,
				Row:      row,
				Expected: fmt.Sprintf("%d rows", height),
				Found:    fmt.Sprintf("%d rows (row %d missing)", row, row),
			}
		}

		text := strings.TrimSuffix(scanner.Text(), "\r")
		if len(text) < width {
			return nil, &FormatError{
				Line:     line,
				Row:      row,
				Expected: fmt.Sprintf("at least %d characters", width),
				Found:    fmt.Sprintf("%d", len(text)),
			}
		}
		for col := range width {
			cells = append(cells, strings.IndexByte(alive, text[col]) >= 0)
		}
	}

	return &World{width: width, height: height, cells: cells}, nil
}

// parseHeader reads "<height> <width>" from the first line
func parseHeader(text string) (height, width int, err error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, &FormatError{
			Line:     1,
			Row:      -1,
			Expected: "2 dimensions \"<height> <width>\"",
			Found:    fmt.Sprintf("%d tokens %q", len(fields), text),
		}
	}

	dims := [2]int{}
	for i, name := range [2]string{"height", "width"} {
		n, convErr := strconv.Atoi(fields[i])
		if convErr != nil || n <= 0 {
			return 0, 0, &FormatError{
				Line:     1,
				Row:      -1,
				Expected: "positive integer " + name,
				Found:    strconv.Quote(fields[i]),
			}
		}
		dims[i] = n
	}
	if dims[1] > maxLineBytes {
		return 0, 0, &FormatError{
			Line:     1,
			Row:      -1,
			Expected: fmt.Sprintf("width of at most %d", maxLineBytes),
			Found:    strconv.Itoa(dims[1]),
		}
	}
	return dims[0], dims[1], nil
}
