package txbuilder

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/pkg/errors"
)

// ResolveAddress decodes a textual bitcoin address into an equivalent
//   builder recipient for the builder's network. The result is never an
//   address recipient, so feeding it back through Build dispatches directly.
func (b *OutputBuilder) ResolveAddress(amount uint64, address string) (Output, error) {
	decoded, err := btcutil.DecodeAddress(address, b.params)
	if err != nil {
		// Witness versions above 1 decode but are not handled yet.
		var verErr btcutil.UnsupportedWitnessVerError
		if errors.As(err, &verErr) {
			return Output{}, newError(ErrorCodeUnsupportedAddressRecipient, err.Error())
		}
		return Output{}, newError(ErrorCodeBadAddressRecipient, err.Error())
	}

	switch a := decoded.(type) {
	case *btcutil.AddressPubKeyHash:
		return Output{
			Amount: amount,
			To:     ToBuilder{Variant: P2PKH{Pubkey: PubkeyHash(a.Hash160()[:])}},
		}, nil

	case *btcutil.AddressWitnessPubKeyHash:
		program := a.WitnessProgram()
		if len(program) != 20 {
			return Output{}, newError(ErrorCodeBadAddressRecipient, "wrong witness program size")
		}
		return Output{
			Amount: amount,
			To:     ToBuilder{Variant: P2WPKH{Pubkey: PubkeyHash(program)}},
		}, nil

	case *btcutil.AddressWitnessScriptHash:
		// Version 0 with a 32 byte program. Only 20 byte programs are
		//   mapped at version 0.
		return Output{}, newError(ErrorCodeBadAddressRecipient, "wrong witness program size")

	case *btcutil.AddressTaproot:
		program := a.WitnessProgram()
		if len(program) != 32 {
			return Output{}, newError(ErrorCodeBadAddressRecipient, "wrong witness program size")
		}
		// The program is the tweaked output key.
		return Output{
			Amount: amount,
			To:     ToBuilder{Variant: P2TRKeyPath{PublicKey: program}},
		}, nil

	case *btcutil.AddressScriptHash:
		// Legacy P2SH address decoding is intentionally unsupported, not
		//   silently mapped.
		return Output{}, newError(ErrorCodeUnsupportedAddressRecipient, "script hash address")
	}

	return Output{}, newError(ErrorCodeUnsupportedAddressRecipient, "unknown address kind")
}
