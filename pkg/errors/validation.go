package errors

import (
	"unicode"
)

// ValidateInput validates an identicon input string received over an
// external surface (HTTP path, CLI argument).
//
// The validation rules are intentionally conservative:
//   - No control characters or null bytes
//   - Maximum length of 1024 bytes
//
// Any remaining byte sequence, including the empty string, is a valid
// identicon input. The limits only guard the serving layer against abuse;
// the generation core accepts arbitrary bytes.
func ValidateInput(input string) error {
	const maxInputLength = 1024
	if len(input) > maxInputLength {
		return New(ErrCodeInvalidInput, "input too long (max %d bytes)", maxInputLength)
	}

	for _, r := range input {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "input contains invalid control characters")
		}
	}

	return nil
}

// IsHexDigest reports whether s is a 32-character hexadecimal string,
// i.e. the textual form of a 16-byte digest.
func IsHexDigest(s string) bool {
	if len(s) != 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ValidateWidth validates a requested image width against the theme's row
// count and the server's configured maximum.
//
// The width must be positive, at most max, and evenly divisible by
// (rows+1)*2 so that the rasterizer's cell and padding arithmetic stays
// exact. Violations are reported, never rounded.
func ValidateWidth(width, rows, max int) error {
	if width <= 0 {
		return New(ErrCodeInvalidSize, "width must be positive, got %d", width)
	}
	if width > max {
		return New(ErrCodeInvalidSize, "width %d exceeds maximum %d", width, max)
	}
	if div := (rows + 1) * 2; width%div != 0 {
		return New(ErrCodeInvalidSize, "width %d must be evenly divisible by %d", width, div)
	}
	return nil
}
