package cmd

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/bitsigner/txout/pkg/txbuilder"
)

// hexBytes is a byte slice that decodes from a JSON hex string.
type hexBytes []byte

func (h *hexBytes) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("hex field must be a string")
	}
	b, err := hex.DecodeString(string(data[1 : len(data)-1]))
	if err != nil {
		return errors.Wrap(err, "decode hex field")
	}
	*h = b
	return nil
}

// outputDescriptor is the JSON form of an output description accepted by the
//   build command. Exactly one recipient field should be set.
type outputDescriptor struct {
	Amount         uint64                    `json:"amount"`
	Script         hexBytes                  `json:"script,omitempty"`
	Address        string                    `json:"address,omitempty"`
	P2SH           *scriptOrHashDescriptor   `json:"p2sh,omitempty"`
	P2PKH          *pubkeyOrHashDescriptor   `json:"p2pkh,omitempty"`
	P2WSH          *scriptOrHashDescriptor   `json:"p2wsh,omitempty"`
	P2WPKH         *pubkeyOrHashDescriptor   `json:"p2wpkh,omitempty"`
	P2TRKeyPath    hexBytes                  `json:"p2tr_key_path,omitempty"`
	P2TRScriptPath *p2trScriptPathDescriptor `json:"p2tr_script_path,omitempty"`
	Ordinal        *ordinalDescriptor        `json:"ordinal,omitempty"`
	BRC20          *brc20Descriptor          `json:"brc20,omitempty"`
}

type scriptOrHashDescriptor struct {
	Hash   hexBytes `json:"hash,omitempty"`
	Script hexBytes `json:"script,omitempty"`
}

func (d *scriptOrHashDescriptor) toVariant() txbuilder.ScriptOrHash {
	if len(d.Script) > 0 {
		return txbuilder.RedeemScript(d.Script)
	}
	if len(d.Hash) > 0 {
		return txbuilder.ScriptHash(d.Hash)
	}
	return nil
}

type pubkeyOrHashDescriptor struct {
	Hash   hexBytes `json:"hash,omitempty"`
	Pubkey hexBytes `json:"pubkey,omitempty"`
}

func (d *pubkeyOrHashDescriptor) toVariant() txbuilder.PubkeyOrHash {
	if len(d.Pubkey) > 0 {
		return txbuilder.Pubkey(d.Pubkey)
	}
	if len(d.Hash) > 0 {
		return txbuilder.PubkeyHash(d.Hash)
	}
	return nil
}

type p2trScriptPathDescriptor struct {
	PublicKey hexBytes `json:"public_key"`
	NodeHash  hexBytes `json:"node_hash"`
}

type ordinalDescriptor struct {
	InscribeTo hexBytes `json:"inscribe_to"`
	MIMEType   string   `json:"mime_type"`
	Payload    hexBytes `json:"payload"`
}

type brc20Descriptor struct {
	InscribeTo hexBytes `json:"inscribe_to"`
	Ticker     string   `json:"ticker"`
	Amount     uint64   `json:"amount"`
}

// toOutput converts the descriptor into a builder output.
func (d *outputDescriptor) toOutput() txbuilder.Output {
	output := txbuilder.Output{Amount: d.Amount}

	switch {
	case len(d.Script) > 0:
		output.To = txbuilder.RawScript(d.Script)
	case len(d.Address) > 0:
		output.To = txbuilder.ToAddress(d.Address)
	case d.P2SH != nil:
		output.To = txbuilder.ToBuilder{Variant: txbuilder.P2SH{Script: d.P2SH.toVariant()}}
	case d.P2PKH != nil:
		output.To = txbuilder.ToBuilder{Variant: txbuilder.P2PKH{Pubkey: d.P2PKH.toVariant()}}
	case d.P2WSH != nil:
		output.To = txbuilder.ToBuilder{Variant: txbuilder.P2WSH{Script: d.P2WSH.toVariant()}}
	case d.P2WPKH != nil:
		output.To = txbuilder.ToBuilder{Variant: txbuilder.P2WPKH{Pubkey: d.P2WPKH.toVariant()}}
	case len(d.P2TRKeyPath) > 0:
		output.To = txbuilder.ToBuilder{Variant: txbuilder.P2TRKeyPath{PublicKey: d.P2TRKeyPath}}
	case d.P2TRScriptPath != nil:
		output.To = txbuilder.ToBuilder{Variant: txbuilder.P2TRScriptPath{
			PublicKey: d.P2TRScriptPath.PublicKey,
			NodeHash:  d.P2TRScriptPath.NodeHash,
		}}
	case d.Ordinal != nil:
		output.To = txbuilder.ToBuilder{Variant: txbuilder.OrdinalInscribe{
			InscribeTo: d.Ordinal.InscribeTo,
			MIMEType:   d.Ordinal.MIMEType,
			Payload:    d.Ordinal.Payload,
		}}
	case d.BRC20 != nil:
		output.To = txbuilder.ToBuilder{Variant: txbuilder.BRC20Inscribe{
			InscribeTo:     d.BRC20.InscribeTo,
			Ticker:         d.BRC20.Ticker,
			TransferAmount: d.BRC20.Amount,
		}}
	}

	return output
}
