// Package sigil generates deterministic identicon images.
//
// An identicon is a small symmetric pixel-art image derived from an
// arbitrary byte input. The same input always produces the same image, and
// the output is compatible with Cupcake Sigil
// (https://github.com/tent/sigil).
//
// # Pipeline
//
// Input bytes are hashed to a 16-byte MD5 digest. The first digest byte
// selects a foreground colour from the theme's palette; the remaining 15
// bytes drive a horizontally mirrored boolean cell grid. The resulting
// [Sigil] rasterizes to a square [image.RGBA] of any size that is a
// multiple of (rows+1)*2.
//
// # Usage
//
//	theme := sigil.DefaultTheme()
//	s, err := sigil.Generate(theme, []byte("username"))
//	if err != nil {
//	    return err
//	}
//	img, err := s.ToImage(240)
//
// All operations are pure: a [Theme] is read-only after construction and
// may be shared across goroutines, and every generation call allocates
// only local state. Encoding the returned image (PNG etc.) is the
// caller's responsibility.
package sigil
