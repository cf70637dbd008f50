package sigil

import "crypto/md5"

// Hash maps an arbitrary byte sequence to the 16-byte digest that drives
// identicon generation. Any input, including empty, is valid.
//
// MD5 is used for Cupcake Sigil compatibility. Collision resistance is
// irrelevant here; only determinism and even bit distribution matter for
// visual variety.
func Hash(input []byte) [16]byte {
	return md5.Sum(input)
}
