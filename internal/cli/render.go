package cli

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sigilgen/sigil/pkg/sigil"
)

// defaultRenderWidth is the width used when --width is not given. 240 is
// a multiple of (rows+1)*2 for the default 5-row theme.
const defaultRenderWidth = 240

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; derived from the input when empty
	width    int    // image width in pixels
	rows     int    // grid dimension (1-15)
	inverted bool   // swap foreground and background colours
}

// renderCommand creates the render command for generating PNG identicons.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		width: defaultRenderWidth,
		rows:  5,
	}

	cmd := &cobra.Command{
		Use:   "render <input>",
		Short: "Render an identicon to a PNG file",
		Long:  `Render generates the identicon for an input string and writes it as a PNG file. The same input always produces the same image.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <input>.png)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", opts.width, "image width in pixels; must be a multiple of (rows+1)*2")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "grid dimension (1-15)")
	cmd.Flags().BoolVar(&opts.inverted, "inverted", false, "swap foreground and background colours")

	return cmd
}

func (c *CLI) runRender(input string, opts *renderOpts) error {
	theme := sigil.DefaultTheme()
	theme.Rows = opts.rows

	s, err := sigil.Generate(theme, []byte(input))
	if err != nil {
		return err
	}
	if opts.inverted {
		s = s.Invert()
	}

	img, err := s.ToImage(opts.width)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = outputName(input)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	c.Logger.Debug("rendered identicon", "input", input, "width", opts.width, "rows", opts.rows)
	printSuccess("Rendered %dx%d identicon", opts.width, opts.width)
	printFile(output)
	return nil
}

// outputName derives a PNG filename from the input string, replacing
// anything filesystem-hostile. An empty input becomes "sigil.png".
func outputName(input string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}, input)
	name = strings.Trim(name, "._")
	if name == "" {
		name = appName
	}
	return filepath.Base(name) + ".png"
}
