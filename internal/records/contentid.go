package records

import "github.com/mr-tron/base58"

// ContentID renders a 32-byte content digest in its canonical display form:
// a v0 content identifier, base58-encoded with the sha2-256 multihash
// prefix. An all-zero digest means the field is unset and renders empty.
func ContentID(digest [32]byte) string {
	if digest == ([32]byte{}) {
		return ""
	}
	// 0x12 = sha2-256, 0x20 = 32-byte length.
	buf := make([]byte, 0, 34)
	buf = append(buf, 0x12, 0x20)
	buf = append(buf, digest[:]...)
	return base58.Encode(buf)
}
