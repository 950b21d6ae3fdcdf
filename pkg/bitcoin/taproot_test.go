package bitcoin

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/txscript"
)

func TestPublicKeyFromBytes(t *testing.T) {
	// Compressed secp256k1 generator point.
	valid, _ := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")

	key, err := PublicKeyFromBytes(valid)
	if err != nil {
		t.Fatal(err)
	}

	xonly := XOnly(key)
	want, _ := hex.DecodeString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	if !bytes.Equal(xonly, want) {
		t.Errorf("x-only: got %x, want %x", xonly, want)
	}

	// Wrong length.
	if _, err := PublicKeyFromBytes(valid[1:]); err != ErrBadPublicKey {
		t.Errorf("32 byte key: got %v, want %v", err, ErrBadPublicKey)
	}

	// Invalid prefix byte.
	bad := make([]byte, len(valid))
	copy(bad, valid)
	bad[0] = 0x05
	if _, err := PublicKeyFromBytes(bad); err != ErrBadPublicKey {
		t.Errorf("bad prefix: got %v, want %v", err, ErrBadPublicKey)
	}

	// x coordinate not on the curve.
	notOnCurve := make([]byte, len(valid))
	copy(notOnCurve, valid)
	notOnCurve[32]++
	if _, err := PublicKeyFromBytes(notOnCurve); err != ErrBadPublicKey {
		t.Errorf("off curve: got %v, want %v", err, ErrBadPublicKey)
	}
}

func TestTaprootOutputKeyNoScript(t *testing.T) {
	// BIP 341 script pubkey test vector: internal key with no script tree.
	internalBytes, _ := hex.DecodeString("02d6889cb081036e0faefa3a35157ad71086b123b2b144b649798b494c300a961d")
	want, _ := hex.DecodeString("53a1f6e454df1aa2776a2814a721372d6258050de330b3c6d10ee8f4e0dda343")

	internal, err := PublicKeyFromBytes(internalBytes)
	if err != nil {
		t.Fatal(err)
	}

	output, err := TaprootOutputKey(internal, nil)
	if err != nil {
		t.Fatal(err)
	}

	if got := XOnly(output); !bytes.Equal(got, want) {
		t.Errorf("tweaked key: got %x, want %x", got, want)
	}
}

func TestTaprootOutputKeyWithRoot(t *testing.T) {
	internalBytes, _ := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	internal, err := PublicKeyFromBytes(internalBytes)
	if err != nil {
		t.Fatal(err)
	}

	leaf := txscript.NewBaseTapLeaf([]byte{txscript.OP_TRUE})
	root := leaf.TapHash()

	output, err := TaprootOutputKey(internal, root[:])
	if err != nil {
		t.Fatal(err)
	}

	want := txscript.ComputeTaprootOutputKey(internal, root[:])
	if !bytes.Equal(XOnly(output), XOnly(want)) {
		t.Errorf("tweaked key mismatch with txscript computation")
	}

	// A root that is not empty and not 32 bytes is rejected.
	for _, size := range []int{1, 31, 33} {
		if _, err := TaprootOutputKey(internal, make([]byte, size)); err != ErrBadMerkleRoot {
			t.Errorf("root size %d: got %v, want %v", size, err, ErrBadMerkleRoot)
		}
	}
}
