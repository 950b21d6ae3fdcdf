package bitcoin

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"
)

// TaprootOutputKey applies the BIP 341 tweak to an internal key and returns
//   the taproot output key. A nil or empty merkle root produces the key path
//   only commitment. A merkle root must be exactly 32 bytes.
func TaprootOutputKey(internal *btcec.PublicKey, merkleRoot []byte) (*btcec.PublicKey, error) {
	switch len(merkleRoot) {
	case 0:
		return txscript.ComputeTaprootKeyNoScript(internal), nil
	case 32:
		return txscript.ComputeTaprootOutputKey(internal, merkleRoot), nil
	}

	return nil, ErrBadMerkleRoot
}
