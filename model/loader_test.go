package model

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestReadWorldRoundTrip(t *testing.T) {
	w, err := ReadWorld(strings.NewReader("3 3\n.X.\nXXX\n...\n"))
	if err != nil {
		t.Fatalf("ReadWorld: %v", err)
	}
	if w.Width() != 3 || w.Height() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", w.Width(), w.Height())
	}

	alive := map[[2]int]bool{{0, 1}: true, {1, 0}: true, {1, 1}: true, {1, 2}: true}
	for r := range 3 {
		for c := range 3 {
			if got := w.Alive(r, c); got != alive[[2]int{r, c}] {
				t.Errorf("cell (%d,%d) alive=%v, expected %v", r, c, got, alive[[2]int{r, c}])
			}
		}
	}
}

func TestReadWorldAcceptedVariants(t *testing.T) {
	tests := []struct {
		name   string
		loader Loader
		input  string
		want   []string
	}{
		{
			name:  "digit markers",
			input: "2 3\n101\n010\n",
			want:  []string{"X.X", ".X."},
		},
		{
			name:  "height before width",
			input: "2 4\nX...\n...X\n",
			want:  []string{"X...", "...X"},
		},
		{
			name:  "long rows and trailing lines ignored",
			input: "2 2\nX.XXXX\n.X\nXXXX\n",
			want:  []string{"X.", ".X"},
		},
		{
			name:  "crlf line endings",
			input: "2 2\r\nXX\r\n..\r\n",
			want:  []string{"XX", ".."},
		},
		{
			name:  "extra header whitespace",
			input: "  2\t 2  \n.X\nX.\n",
			want:  []string{".X", "X."},
		},
		{
			name:  "no final newline",
			input: "1 2\nX.",
			want:  []string{"X."},
		},
		{
			name:   "custom marker",
			loader: Loader{Alive: "#"},
			input:  "1 3\n#X#\n",
			want:   []string{"X.X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := tt.loader.Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			assertWorld(t, w, tt.want...)
		})
	}
}

func TestReadWorldFormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantRow int
		wantMsg string
	}{
		{"non-integer dimensions", "abc def\n", -1, "height"},
		{"missing width", "3\nXXX\n", -1, "2 dimensions"},
		{"too many tokens", "3 3 3\n", -1, "2 dimensions"},
		{"zero height", "0 3\n", -1, "height"},
		{"negative width", "3 -2\n", -1, "width"},
		{"empty input", "", -1, "end of input"},
		{"missing rows", "5 3\n...\n.X.\n...\n", 3, "row 3"},
		{"short row", "2 4\nXXXX\nXX\n", 1, "at least 4"},
		{"blank row", "2 2\nXX\n\n", 1, "at least 2"},
		{"overflowing dimensions", "3037000500 3037000500\nXX\n", -1, "width of at most"},
		{"huge width", "4000000000 4000000000\n...\n", -1, "width of at most"},
		{"huge header with short row", "100000 200000\nXX\n", 0, "at least 200000"},
		{"huge height with few rows", "100000000 3\n...\n.X.\n...\n", 3, "row 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ReadWorld(strings.NewReader(tt.input))
			if w != nil {
				t.Fatal("expected no world on failure")
			}

			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error = %v (%T), want *FormatError", err, err)
			}
			if fe.Row != tt.wantRow {
				t.Errorf("Row = %d, want %d", fe.Row, tt.wantRow)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("message %q does not mention %q", err.Error(), tt.wantMsg)
			}
			if IsIOError(err) {
				t.Error("format problem reported as IOError")
			}
		})
	}
}

func TestLoadWorldFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.txt")
	if err := os.WriteFile(path, []byte("3 3\n...\nXXX\n...\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := LoadWorld(path)
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	assertWorld(t, w, "...", "XXX", "...")
}

func TestLoadWorldMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	w, err := LoadWorld(path)
	if w != nil {
		t.Fatal("expected no world on failure")
	}

	var ie *IOError
	if !errors.As(err, &ie) {
		t.Fatalf("error = %v (%T), want *IOError", err, err)
	}
	if ie.Path != path {
		t.Errorf("Path = %q, want %q", ie.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("IOError does not unwrap to os.ErrNotExist: %v", err)
	}
	if IsFormatError(err) {
		t.Error("IO problem reported as FormatError")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadWorldReadFailure(t *testing.T) {
	_, err := ReadWorld(failingReader{})
	if !IsIOError(err) {
		t.Fatalf("error = %v, want IOError", err)
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("cause missing from %q", err.Error())
	}
}

func TestWriteWorldRoundTrip(t *testing.T) {
	w := worldFrom(t,
		".X..",
		"..X.",
		"XXX.",
	)

	var buf bytes.Buffer
	if err := WriteWorld(&buf, w, 'X', '.'); err != nil {
		t.Fatalf("WriteWorld: %v", err)
	}
	if got, want := buf.String(), "3 4\n.X..\n..X.\nXXX.\n"; got != want {
		t.Fatalf("WriteWorld wrote %q, want %q", got, want)
	}

	back, err := ReadWorld(&buf)
	if err != nil {
		t.Fatalf("ReadWorld: %v", err)
	}
	if !back.Equal(w) {
		t.Fatalf("round trip changed the world\n%s\nvs\n%s", back, w)
	}
}
