package sigil

import (
	"image/color"
	"testing"
)

func TestGenerateMatchesCupcake(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		input string
		want  string
	}{
		{
			name:  "Test5x5",
			rows:  5,
			input: "test",
			want: "XXXXX\n" +
				"-X-X-\n" +
				"-XXX-\n" +
				"-----\n" +
				"XXXXX\n",
		},
		{
			name:  "HexInput5x5",
			rows:  5,
			input: "56fbc0305cea0414184cb72b",
			want: "XX-XX\n" +
				"-XXX-\n" +
				"-X-X-\n" +
				"XXXXX\n" +
				"XX-XX\n",
		},
		{
			name:  "Test6x6",
			rows:  6,
			input: "test",
			want: "XXXXXX\n" +
				"-X--X-\n" +
				"--XX--\n" +
				"-XXXX-\n" +
				"XXXXXX\n" +
				"X-XX-X\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := DefaultTheme()
			theme.Rows = tt.rows

			s, err := Generate(theme, []byte(tt.input))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if got := s.String(); got != tt.want {
				t.Errorf("grid mismatch\ngot:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	theme := DefaultTheme()
	inputs := []string{"", "test", "alice@example.com", "56fbc0305cea0414184cb72b"}

	for _, input := range inputs {
		a, err := Generate(theme, []byte(input))
		if err != nil {
			t.Fatalf("Generate(%q) error = %v", input, err)
		}
		b, err := Generate(theme, []byte(input))
		if err != nil {
			t.Fatalf("Generate(%q) error = %v", input, err)
		}

		if a.cells != b.cells {
			t.Errorf("Generate(%q) produced different cell grids across calls", input)
		}
		if a.foreground != b.foreground || a.background != b.background {
			t.Errorf("Generate(%q) produced different colours across calls", input)
		}
	}
}

func TestMirrorSymmetry(t *testing.T) {
	inputs := []string{"", "a", "test", "mirror", "0123456789abcdef"}

	for rows := MinRows; rows <= MaxRows; rows++ {
		theme := DefaultTheme()
		theme.Rows = rows

		for _, input := range inputs {
			s, err := Generate(theme, []byte(input))
			if err != nil {
				t.Fatalf("Generate(rows=%d, %q) error = %v", rows, input, err)
			}

			for y := 0; y < rows; y++ {
				for x := 0; x < rows; x++ {
					left := s.cells.get(y*rows + x)
					right := s.cells.get(y*rows + rows - 1 - x)
					if left != right {
						t.Fatalf("rows=%d input=%q: cell (%d,%d)=%v but mirror (%d,%d)=%v",
							rows, input, x, y, left, rows-1-x, y, right)
					}
				}
			}
		}
	}
}

func TestInvertInvolution(t *testing.T) {
	theme := DefaultTheme()
	s, err := Generate(theme, []byte("test"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	inv := s.Invert()
	if inv.Foreground() != s.Background() || inv.Background() != s.Foreground() {
		t.Error("Invert() did not swap foreground and background")
	}
	if inv.cells != s.cells {
		t.Error("Invert() changed the cell grid")
	}
	if inv.Rows() != s.Rows() {
		t.Errorf("Invert() changed rows: got %d, want %d", inv.Rows(), s.Rows())
	}

	back := inv.Invert()
	if back.Foreground() != s.Foreground() || back.Background() != s.Background() {
		t.Error("Invert(Invert()) did not restore the original colours")
	}
}

func TestFromHashUsesSelectorByte(t *testing.T) {
	theme := DefaultTheme()

	for i := 0; i < 256; i++ {
		var digest [16]byte
		digest[0] = byte(i)

		s, err := FromHash(theme, digest)
		if err != nil {
			t.Fatalf("FromHash() error = %v", err)
		}

		want := theme.Foreground[i%len(theme.Foreground)]
		if s.Foreground() != want {
			t.Fatalf("selector %d: foreground = %v, want %v", i, s.Foreground(), want)
		}
	}
}

func TestThemeValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Theme)
		wantErr bool
	}{
		{name: "Default", mutate: func(*Theme) {}, wantErr: false},
		{name: "MinRows", mutate: func(th *Theme) { th.Rows = 1 }, wantErr: false},
		{name: "MaxRows", mutate: func(th *Theme) { th.Rows = 15 }, wantErr: false},
		{name: "ZeroRows", mutate: func(th *Theme) { th.Rows = 0 }, wantErr: true},
		{name: "SixteenRows", mutate: func(th *Theme) { th.Rows = 16 }, wantErr: true},
		{name: "NegativeRows", mutate: func(th *Theme) { th.Rows = -3 }, wantErr: true},
		{name: "EmptyPalette", mutate: func(th *Theme) { th.Foreground = nil }, wantErr: true},
		{
			name: "SingleColour",
			mutate: func(th *Theme) {
				th.Foreground = []color.RGBA{{R: 1, G: 2, B: 3, A: 255}}
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := DefaultTheme()
			tt.mutate(theme)

			_, err := Generate(theme, []byte("test"))
			if (err != nil) != tt.wantErr {
				t.Errorf("Generate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// rows=15 needs exactly the 120 bits the 15 grid bytes provide; make sure
// the widest grid builds from an all-ones source without issue.
func TestMaxRowsReadsExactlyAllBits(t *testing.T) {
	theme := DefaultTheme()
	theme.Rows = 15

	var digest [16]byte
	for i := range digest {
		digest[i] = 0xff
	}

	s, err := FromHash(theme, digest)
	if err != nil {
		t.Fatalf("FromHash() error = %v", err)
	}

	for y := 0; y < 15; y++ {
		for x := 0; x < 15; x++ {
			if !s.cells.get(y*15 + x) {
				t.Fatalf("all-ones source left cell (%d,%d) empty", x, y)
			}
		}
	}
}
