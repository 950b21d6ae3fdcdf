package inscription

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"

	"github.com/bitsigner/txout/pkg/bitcoin"
)

const (
	// protocolID is the envelope marker pushed after OP_FALSE OP_IF.
	protocolID = "ord"

	// maxChunkSize is the consensus limit for a single script data push.
	maxChunkSize = 520

	// MaxPayloadSize caps the inscription body so the reveal script stays
	//   within standard transaction weight.
	MaxPayloadSize = 390000
)

// appendPush appends a minimal data push to the script. The script builder is
//   not used here because it enforces the legacy 10000 byte script size limit,
//   which does not apply to tapscript leaves.
func appendPush(script []byte, data []byte) []byte {
	switch {
	case len(data) <= 75:
		script = append(script, byte(txscript.OP_DATA_1)+byte(len(data))-1)
	case len(data) <= 0xff:
		script = append(script, txscript.OP_PUSHDATA1, byte(len(data)))
	default:
		script = append(script, txscript.OP_PUSHDATA2, byte(len(data)),
			byte(len(data)>>8))
	}
	return append(script, data...)
}

// NewOrdinal builds an ordinal inscription leaf script for a MIME typed
//   payload committed to the internal key:
//
//	<xonly key> OP_CHECKSIG
//	OP_FALSE OP_IF "ord" 0x01 <mime type> OP_0 <payload> OP_ENDIF
//
// The payload is split into 520 byte pushes. The content type tag is the
//   literal byte 0x01 pushed with OP_DATA_1, not the canonical OP_1.
func NewOrdinal(mimeType string, payload []byte, internalKey *btcec.PublicKey) (*TaprootScript, error) {
	if internalKey == nil {
		return nil, ErrMissingInternalKey
	}
	if len(mimeType) == 0 || len(mimeType) > maxChunkSize {
		return nil, ErrInvalidMIMEType
	}
	if len(payload) > MaxPayloadSize {
		return nil, ErrPayloadTooLarge
	}

	script := appendPush(nil, bitcoin.XOnly(internalKey))
	script = append(script, txscript.OP_CHECKSIG, txscript.OP_FALSE, txscript.OP_IF)
	script = appendPush(script, []byte(protocolID))
	script = appendPush(script, []byte{0x01}) // content type tag
	script = appendPush(script, []byte(mimeType))
	script = append(script, txscript.OP_0)

	for len(payload) > 0 {
		size := len(payload)
		if size > maxChunkSize {
			size = maxChunkSize
		}
		script = appendPush(script, payload[:size])
		payload = payload[size:]
	}

	script = append(script, txscript.OP_ENDIF)

	return newTaprootScript(internalKey, script), nil
}
