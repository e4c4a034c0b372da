package types

import (
	"crypto/sha256"
	"crypto/subtle"
)

// LockSize is the byte length of a hash lock. The lock algorithm is pinned
// to SHA-256; counterparty contracts on other chains must use the same
// algorithm for the two locks to be compatible.
const LockSize = sha256.Size

// Digest returns the hash lock for a preimage.
func Digest(preimage []byte) []byte {
	sum := sha256.Sum256(preimage)
	return sum[:]
}

// VerifyPreimage reports whether sha256(preimage) equals hashLock.
func VerifyPreimage(preimage, hashLock []byte) bool {
	sum := sha256.Sum256(preimage)
	return subtle.ConstantTimeCompare(sum[:], hashLock) == 1
}
