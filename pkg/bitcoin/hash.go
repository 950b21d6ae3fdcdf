package bitcoin

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Sha256 returns the SHA256 hash of the input.
func Sha256(b []byte) []byte {
	result := sha256.Sum256(b)
	return result[:]
}

// DoubleSha256 returns the SHA256 hash of the SHA256 hash of the input.
func DoubleSha256(b []byte) []byte {
	return Sha256(Sha256(b))
}

// Ripemd160 returns the RIPEMD160 hash of the input.
func Ripemd160(b []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(b)
	return hasher.Sum(nil)
}

// Hash160 returns the RIPEMD160 hash of the SHA256 hash of the input. This is
//   the hash contained in P2PKH, P2WPKH, and P2SH locking scripts.
func Hash160(b []byte) []byte {
	return Ripemd160(Sha256(b))
}
