// Package inscription builds taproot leaf scripts that carry inscription
// payloads, along with the spend info (merkle root, control block) needed to
// reveal them. Two envelope encodings are provided: ordinal NFT payloads with
// an arbitrary MIME type, and BRC20 token transfers.
package inscription

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"

	"github.com/bitsigner/txout/pkg/bitcoin"
)

// TaprootScript is an inscription leaf script committed to by a single leaf
//   taproot script tree. It is immutable once constructed.
type TaprootScript struct {
	internalKey *btcec.PublicKey
	leafScript  []byte
}

func newTaprootScript(internalKey *btcec.PublicKey, leafScript []byte) *TaprootScript {
	return &TaprootScript{
		internalKey: internalKey,
		leafScript:  leafScript,
	}
}

// InternalKey returns the internal public key the script tree commits to.
func (t *TaprootScript) InternalKey() *btcec.PublicKey {
	return t.internalKey
}

// LeafScript returns the tapscript leaf embedding the inscription payload.
//   This is the script revealed by the witness when the output is spent.
func (t *TaprootScript) LeafScript() []byte {
	result := make([]byte, len(t.leafScript))
	copy(result, t.leafScript)
	return result
}

// MerkleRoot returns the merkle root of the script tree. The tree contains
//   only the inscription leaf, so the root is the leaf's tap hash.
func (t *TaprootScript) MerkleRoot() bitcoin.Hash32 {
	leaf := txscript.NewBaseTapLeaf(t.leafScript)
	return bitcoin.Hash32(leaf.TapHash())
}

// ControlBlock returns the serialized control block proving the leaf script
//   belongs to the committed script tree. For a single leaf tree the
//   inclusion proof is empty and the control block is 33 bytes.
func (t *TaprootScript) ControlBlock() ([]byte, error) {
	leaf := txscript.NewBaseTapLeaf(t.leafScript)
	tree := txscript.AssembleTaprootScriptTree(leaf)

	control := tree.LeafMerkleProofs[0].ToControlBlock(t.internalKey)
	return control.ToBytes()
}
