package txbuilder

import (
	"github.com/btcsuite/btcd/txscript"
)

// payToPubkeyHashScript creates a script to pay to a public key hash:
//   OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG
func payToPubkeyHashScript(hash []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).
		AddOp(txscript.OP_HASH160).
		AddData(hash).
		AddOp(txscript.OP_EQUALVERIFY).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}

// payToScriptHashScript creates a script to pay to a script hash:
//   OP_HASH160 <hash> OP_EQUAL
func payToScriptHashScript(hash []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_HASH160).
		AddData(hash).
		AddOp(txscript.OP_EQUAL).
		Script()
}

// payToWitnessScript creates a witness program script:
//   <version op> <program>
// Version 0 carries a 20 byte key hash or 32 byte script hash. Version 1
//   carries a 32 byte taproot output key.
func payToWitnessScript(version byte, program []byte) ([]byte, error) {
	op := byte(txscript.OP_0)
	if version > 0 {
		op = txscript.OP_1 + version - 1
	}
	return txscript.NewScriptBuilder().
		AddOp(op).
		AddData(program).
		Script()
}
