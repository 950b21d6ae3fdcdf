package bitcoin

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

// CompressedPublicKeyLength is the length of a serialized compressed secp256k1
//   public key.
const CompressedPublicKeyLength = 33

// PublicKeyFromBytes parses a 33 byte compressed secp256k1 public key. It
//   returns an error if the data is not a valid point on the curve.
func PublicKeyFromBytes(b []byte) (*btcec.PublicKey, error) {
	if len(b) != CompressedPublicKeyLength {
		return nil, ErrBadPublicKey
	}

	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, ErrBadPublicKey
	}
	return key, nil
}

// XOnly returns the 32 byte x-only serialization of the public key used in
//   taproot outputs. The sign of the y coordinate is dropped.
func XOnly(key *btcec.PublicKey) []byte {
	return schnorr.SerializePubKey(key)
}
