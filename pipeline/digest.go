package pipeline

import (
	"encoding/hex"

	"github.com/opd-ai/rasterkit/frame"
	"golang.org/x/crypto/blake2b"
)

// frameDigest is the hash used by digest mode.
var frameDigest = Digest

// Digest returns the hex BLAKE2b-256 of a frame's payload. Two runs that
// emit identical frames log identical digests.
func Digest(buf *frame.Buffer) string {
	sum := blake2b.Sum256(buf.Pix)
	return hex.EncodeToString(sum[:])
}
