package bitcoin

import "errors"

var (
	ErrBadHashLength = errors.New("Hash has invalid length")
	ErrBadPublicKey  = errors.New("Public key is not a valid compressed secp256k1 point")
	ErrBadMerkleRoot = errors.New("Merkle root has invalid length")
)
