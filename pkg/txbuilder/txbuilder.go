// Package txbuilder builds bitcoin transaction outputs from chain agnostic
// recipient descriptions. Callers specify an amount and a recipient (a raw
// script, a builder variant, or a textual address) and receive the exact
// locking script, plus reveal data for inscription outputs.
package txbuilder

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/bitsigner/txout/pkg/bitcoin"
	"github.com/bitsigner/txout/pkg/inscription"
)

// OutputBuilder converts output descriptions into locking scripts for a
//   fixed network. It holds no mutable state and is safe for concurrent use.
type OutputBuilder struct {
	params *chaincfg.Params
}

// NewOutputBuilder creates an output builder for the specified network
//   parameters. Nil parameters default to the main network.
func NewOutputBuilder(params *chaincfg.Params) *OutputBuilder {
	if params == nil {
		params = bitcoin.MainNetParams
	}
	return &OutputBuilder{params: params}
}

// Build creates the locking script for an output. Address recipients are
//   resolved to an equivalent builder recipient first, then dispatched like
//   any other; resolution never yields another address, so there is exactly
//   one resolution stage.
func (b *OutputBuilder) Build(output Output) (*TxOut, error) {
	if address, ok := output.To.(ToAddress); ok {
		resolved, err := b.ResolveAddress(output.Amount, string(address))
		if err != nil {
			return nil, err
		}
		output = resolved
	}

	switch to := output.To.(type) {
	case RawScript:
		// Script spending condition was passed in directly.
		script := make([]byte, len(to))
		copy(script, to)
		return &TxOut{Value: output.Amount, PkScript: script}, nil

	case ToBuilder:
		return b.buildVariant(output.Amount, to.Variant)

	case nil:
		return nil, newError(ErrorCodeMissingRecipient, "")
	}

	// ResolveAddress only returns the recipient kinds above.
	return nil, newError(ErrorCodeBadAddressRecipient, "unresolvable recipient")
}

// buildVariant constructs the locking script for a builder variant.
func (b *OutputBuilder) buildVariant(amount uint64, variant BuilderVariant) (*TxOut, error) {
	switch v := variant.(type) {
	case P2SH:
		hash, err := redeemScriptHash(v.Script)
		if err != nil {
			return nil, err
		}
		script, err := payToScriptHashScript(hash)
		if err != nil {
			return nil, err
		}
		return &TxOut{Value: amount, PkScript: script}, nil

	case P2PKH:
		hash, err := pubkeyHash(v.Pubkey)
		if err != nil {
			return nil, err
		}
		script, err := payToPubkeyHashScript(hash)
		if err != nil {
			return nil, err
		}
		return &TxOut{Value: amount, PkScript: script}, nil

	case P2WSH:
		hash, err := witnessRedeemScriptHash(v.Script)
		if err != nil {
			return nil, err
		}
		script, err := payToWitnessScript(0, hash)
		if err != nil {
			return nil, err
		}
		return &TxOut{Value: amount, PkScript: script}, nil

	case P2WPKH:
		hash, err := witnessPubkeyHash(v.Pubkey)
		if err != nil {
			return nil, err
		}
		script, err := payToWitnessScript(0, hash)
		if err != nil {
			return nil, err
		}
		return &TxOut{Value: amount, PkScript: script}, nil

	case P2TRKeyPath:
		program, err := taprootKeyPathProgram(v.PublicKey)
		if err != nil {
			return nil, err
		}
		script, err := payToWitnessScript(1, program)
		if err != nil {
			return nil, err
		}
		return &TxOut{Value: amount, PkScript: script}, nil

	case P2TRScriptPath:
		root, err := bitcoin.NewHash32(v.NodeHash)
		if err != nil {
			return nil, newError(ErrorCodeInvalidTaprootRoot, "")
		}
		key, err := bitcoin.PublicKeyFromBytes(v.PublicKey)
		if err != nil {
			return nil, newError(ErrorCodeInvalidPublicKey, "")
		}
		output, err := bitcoin.TaprootOutputKey(key, root.Bytes())
		if err != nil {
			return nil, newError(ErrorCodeInvalidTaprootRoot, "")
		}
		script, err := payToWitnessScript(1, bitcoin.XOnly(output))
		if err != nil {
			return nil, err
		}
		return &TxOut{Value: amount, PkScript: script}, nil

	case OrdinalInscribe:
		key, err := bitcoin.PublicKeyFromBytes(v.InscribeTo)
		if err != nil {
			return nil, newError(ErrorCodeInvalidPublicKey, "")
		}
		envelope, err := inscription.NewOrdinal(v.MIMEType, v.Payload, key)
		if err != nil {
			return nil, newError(ErrorCodeInvalidInscription, err.Error())
		}
		return b.inscriptionOut(amount, key, envelope)

	case BRC20Inscribe:
		key, err := bitcoin.PublicKeyFromBytes(v.InscribeTo)
		if err != nil {
			return nil, newError(ErrorCodeInvalidPublicKey, "")
		}
		ticker, err := inscription.NewTicker(v.Ticker)
		if err != nil {
			return nil, newError(ErrorCodeInvalidInscription, err.Error())
		}
		envelope, err := inscription.NewBRC20Transfer(key, ticker, v.TransferAmount)
		if err != nil {
			return nil, newError(ErrorCodeInvalidInscription, err.Error())
		}
		return b.inscriptionOut(amount, key, envelope)

	case nil:
		return nil, newError(ErrorCodeMissingBuilderVariant, "")
	}

	return nil, newError(ErrorCodeMissingBuilderVariant, "unknown variant")
}

// inscriptionOut builds the taproot output committing to an inscription
//   envelope and attaches the reveal data needed by later witness assembly.
func (b *OutputBuilder) inscriptionOut(amount uint64, internal *btcec.PublicKey,
	envelope *inscription.TaprootScript) (*TxOut, error) {

	root := envelope.MerkleRoot()
	output, err := bitcoin.TaprootOutputKey(internal, root.Bytes())
	if err != nil {
		return nil, newError(ErrorCodeInvalidInscription, err.Error())
	}

	controlBlock, err := envelope.ControlBlock()
	if err != nil {
		return nil, newError(ErrorCodeInvalidInscription, err.Error())
	}

	script, err := payToWitnessScript(1, bitcoin.XOnly(output))
	if err != nil {
		return nil, err
	}

	return &TxOut{
		Value:          amount,
		PkScript:       script,
		ControlBlock:   controlBlock,
		TaprootPayload: envelope.LeafScript(),
	}, nil
}

// taprootKeyPathProgram derives the witness program for a key path taproot
//   output. A 33 byte compressed key is tweaked with an empty merkle root; a
//   32 byte key is already the tweaked output key and is used verbatim.
func taprootKeyPathProgram(publicKey []byte) ([]byte, error) {
	if len(publicKey) == 32 {
		program := make([]byte, 32)
		copy(program, publicKey)
		return program, nil
	}

	key, err := bitcoin.PublicKeyFromBytes(publicKey)
	if err != nil {
		return nil, newError(ErrorCodeInvalidPublicKey, "")
	}

	output, err := bitcoin.TaprootOutputKey(key, nil)
	if err != nil {
		return nil, newError(ErrorCodeInvalidPublicKey, "")
	}
	return bitcoin.XOnly(output), nil
}

// redeemScriptHash resolves a ScriptOrHash to the 20 byte script hash used
//   in P2SH locking scripts.
func redeemScriptHash(scriptOrHash ScriptOrHash) ([]byte, error) {
	switch v := scriptOrHash.(type) {
	case ScriptHash:
		hash, err := bitcoin.NewHash20(v)
		if err != nil {
			return nil, newError(ErrorCodeInvalidRedeemScript, "")
		}
		return hash.Bytes(), nil
	case RedeemScript:
		hash, err := bitcoin.NewHash20FromData(v)
		if err != nil {
			return nil, newError(ErrorCodeInvalidRedeemScript, "")
		}
		return hash.Bytes(), nil
	}

	return nil, newError(ErrorCodeMissingRecipient, "script or hash not set")
}

// witnessRedeemScriptHash resolves a ScriptOrHash to the 32 byte script hash
//   used in P2WSH witness programs.
func witnessRedeemScriptHash(scriptOrHash ScriptOrHash) ([]byte, error) {
	switch v := scriptOrHash.(type) {
	case ScriptHash:
		hash, err := bitcoin.NewHash32(v)
		if err != nil {
			return nil, newError(ErrorCodeInvalidWitnessRedeemScript, "")
		}
		return hash.Bytes(), nil
	case RedeemScript:
		hash, err := bitcoin.NewHash32FromData(v)
		if err != nil {
			return nil, newError(ErrorCodeInvalidWitnessRedeemScript, "")
		}
		return hash.Bytes(), nil
	}

	return nil, newError(ErrorCodeMissingRecipient, "script or hash not set")
}

// pubkeyHash resolves a PubkeyOrHash to the 20 byte hash used in P2PKH
//   locking scripts.
func pubkeyHash(pubkeyOrHash PubkeyOrHash) ([]byte, error) {
	switch v := pubkeyOrHash.(type) {
	case PubkeyHash:
		hash, err := bitcoin.NewHash20(v)
		if err != nil {
			return nil, newError(ErrorCodeInvalidPubkeyHash, "")
		}
		return hash.Bytes(), nil
	case Pubkey:
		key, err := bitcoin.PublicKeyFromBytes(v)
		if err != nil {
			return nil, newError(ErrorCodeInvalidPublicKey, "")
		}
		hash, err := bitcoin.NewHash20FromData(key.SerializeCompressed())
		if err != nil {
			return nil, newError(ErrorCodeInvalidPubkeyHash, "")
		}
		return hash.Bytes(), nil
	}

	return nil, newError(ErrorCodeMissingRecipient, "pubkey or hash not set")
}

// witnessPubkeyHash resolves a PubkeyOrHash to the 20 byte hash used in
//   P2WPKH witness programs.
func witnessPubkeyHash(pubkeyOrHash PubkeyOrHash) ([]byte, error) {
	switch v := pubkeyOrHash.(type) {
	case PubkeyHash:
		hash, err := bitcoin.NewHash20(v)
		if err != nil {
			return nil, newError(ErrorCodeInvalidWitnessPubkeyHash, "")
		}
		return hash.Bytes(), nil
	case Pubkey:
		key, err := bitcoin.PublicKeyFromBytes(v)
		if err != nil {
			return nil, newError(ErrorCodeInvalidPublicKey, "")
		}
		hash, err := bitcoin.NewHash20FromData(key.SerializeCompressed())
		if err != nil {
			return nil, newError(ErrorCodeInvalidWitnessPubkeyHash, "")
		}
		return hash.Bytes(), nil
	}

	return nil, newError(ErrorCodeMissingRecipient, "pubkey or hash not set")
}
