package importer

import (
	"crypto/sha256"
	"encoding/hex"
)

// DeriveProfileID computes the stable content-derived identifier used to
// deduplicate repeated uploads by the same person. Same inputs always
// yield the same id; no other state is consulted.
func DeriveProfileID(first, second string) string {
	sum := sha256.Sum256([]byte(first + "-" + second))
	return hex.EncodeToString(sum[:])
}
