package cli

import (
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func testCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRunRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "test.png")
	opts := &renderOpts{output: out, width: 240, rows: 5}

	if err := testCLI().runRender("test", opts); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 240 || img.Bounds().Dy() != 240 {
		t.Errorf("image is %dx%d, want 240x240", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRunRenderDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")

	c := testCLI()
	if err := c.runRender("alice", &renderOpts{output: a, width: 120, rows: 5}); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}
	if err := c.runRender("alice", &renderOpts{output: b, width: 120, rows: 5}); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	dataA, err := os.ReadFile(a)
	if err != nil {
		t.Fatal(err)
	}
	dataB, err := os.ReadFile(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(dataA) != string(dataB) {
		t.Error("same input produced different PNG files")
	}
}

func TestRunRenderRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts renderOpts
	}{
		{"BadWidth", renderOpts{width: 241, rows: 5}},
		{"ZeroRows", renderOpts{width: 240, rows: 0}},
		{"TooManyRows", renderOpts{width: 240, rows: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.output = filepath.Join(t.TempDir(), "out.png")
			if err := testCLI().runRender("test", &opts); err == nil {
				t.Error("runRender() succeeded, want error")
			}
		})
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"alice", "alice.png"},
		{"alice@example.com", "alice_example.com.png"},
		{"../../etc/passwd", "etc_passwd.png"},
		{"", "sigil.png"},
		{"???", "sigil.png"},
	}

	for _, tt := range tests {
		if got := outputName(tt.input); got != tt.want {
			t.Errorf("outputName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
