package txbuilder

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/bitsigner/txout/pkg/bitcoin"
)

func TestResolveP2PKHAddress(t *testing.T) {
	builder := NewOutputBuilder(bitcoin.MainNetParams)

	resolved, err := builder.ResolveAddress(5000, "1BitcoinEaterAddressDontSendf59kuE")
	if err != nil {
		t.Fatal(err)
	}

	to, ok := resolved.To.(ToBuilder)
	if !ok {
		t.Fatalf("resolved recipient is not a builder: %T", resolved.To)
	}
	variant, ok := to.Variant.(P2PKH)
	if !ok {
		t.Fatalf("resolved variant is not P2PKH: %T", to.Variant)
	}
	hash, ok := variant.Pubkey.(PubkeyHash)
	if !ok {
		t.Fatalf("resolved pubkey is not a hash: %T", variant.Pubkey)
	}

	want := fromHex(t, "759d6677091e973b9e9d99f19c68fbf43e3f05f9")
	if !bytes.Equal(hash, want) {
		t.Errorf("hash: got %x, want %x", hash, want)
	}
}

func TestBuildFromP2PKHAddress(t *testing.T) {
	builder := NewOutputBuilder(bitcoin.MainNetParams)

	out, err := builder.Build(Output{
		Amount: 5000,
		To:     ToAddress("1BitcoinEaterAddressDontSendf59kuE"),
	})
	if err != nil {
		t.Fatal(err)
	}

	want := fromHex(t, "76a914759d6677091e973b9e9d99f19c68fbf43e3f05f988ac")
	if !bytes.Equal(out.PkScript, want) {
		t.Errorf("script: got %x, want %x", out.PkScript, want)
	}
	if out.Value != 5000 {
		t.Errorf("value: got %d, want 5000", out.Value)
	}

	// Resolving then building equals building from the embedded hash.
	direct, err := builder.Build(Output{
		Amount: 5000,
		To:     ToBuilder{Variant: P2PKH{Pubkey: PubkeyHash(fromHex(t, "759d6677091e973b9e9d99f19c68fbf43e3f05f9"))}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.PkScript, direct.PkScript) {
		t.Errorf("address script %x != direct script %x", out.PkScript, direct.PkScript)
	}
}

func TestBuildFromP2WPKHAddress(t *testing.T) {
	builder := NewOutputBuilder(bitcoin.MainNetParams)

	// BIP 173 example address for the generator point key hash.
	out, err := builder.Build(Output{
		Amount: 2000,
		To:     ToAddress("bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"),
	})
	if err != nil {
		t.Fatal(err)
	}

	want := fromHex(t, "0014"+testPubkeyHashHex)
	if !bytes.Equal(out.PkScript, want) {
		t.Errorf("script: got %x, want %x", out.PkScript, want)
	}
}

func TestBuildFromTaprootAddress(t *testing.T) {
	builder := NewOutputBuilder(bitcoin.MainNetParams)

	// The program of a taproot address is the tweaked output key, so the
	//   built script carries it verbatim.
	program := fromHex(t, "53a1f6e454df1aa2776a2814a721372d6258050de330b3c6d10ee8f4e0dda343")
	address, err := btcutil.NewAddressTaproot(program, bitcoin.MainNetParams)
	if err != nil {
		t.Fatal(err)
	}

	resolved, err := builder.ResolveAddress(800, address.EncodeAddress())
	if err != nil {
		t.Fatal(err)
	}
	variant, ok := resolved.To.(ToBuilder).Variant.(P2TRKeyPath)
	if !ok {
		t.Fatalf("resolved variant is not P2TRKeyPath")
	}
	if !bytes.Equal(variant.PublicKey, program) {
		t.Errorf("program: got %x, want %x", variant.PublicKey, program)
	}

	out, err := builder.Build(Output{Amount: 800, To: ToAddress(address.EncodeAddress())})
	if err != nil {
		t.Fatal(err)
	}
	want := append(fromHex(t, "5120"), program...)
	if !bytes.Equal(out.PkScript, want) {
		t.Errorf("script: got %x, want %x", out.PkScript, want)
	}
}

func TestResolveAddressErrors(t *testing.T) {
	builder := NewOutputBuilder(bitcoin.MainNetParams)

	tests := []struct {
		name    string
		address string
		code    int
	}{
		// Legacy P2SH addresses are intentionally unsupported.
		{"script hash", "3P14159f73E4gFr7JterCCQh9QjiTjiZrG", ErrorCodeUnsupportedAddressRecipient},
		// Witness v0 with a 32 byte program is not mapped.
		{"p2wsh", "bc1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3qccfmv3", ErrorCodeBadAddressRecipient},
		// Witness v16, valid bech32m but unhandled version.
		{"future version", "bc1sw50qgdz25j", ErrorCodeUnsupportedAddressRecipient},
		// Wrong network.
		{"testnet address", "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx", ErrorCodeBadAddressRecipient},
		// Not an address at all.
		{"garbage", "not an address", ErrorCodeBadAddressRecipient},
		{"empty", "", ErrorCodeBadAddressRecipient},
		{"bad checksum", "1BitcoinEaterAddressDontSendf59kuF", ErrorCodeBadAddressRecipient},
	}

	for _, tt := range tests {
		_, err := builder.ResolveAddress(1000, tt.address)
		if !IsErrorCode(err, tt.code) {
			t.Errorf("%s: got %v, want code %d", tt.name, err, tt.code)
		}
	}
}

func TestResolveNeverReturnsAddress(t *testing.T) {
	builder := NewOutputBuilder(bitcoin.MainNetParams)

	addresses := []string{
		"1BitcoinEaterAddressDontSendf59kuE",
		"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
	}
	for _, address := range addresses {
		resolved, err := builder.ResolveAddress(100, address)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := resolved.To.(ToAddress); ok {
			t.Errorf("%s: resolver returned an address recipient", address)
		}
	}
}
