package txbuilder

// Output describes a desired transaction output: an amount and a recipient
//   intent. It is consumed exactly once by OutputBuilder.Build.
type Output struct {
	Amount uint64 // satoshis
	To     Recipient
}

// TxOut is the finished output record: the locking script plus, for
//   inscription outputs, the reveal data needed by later witness assembly.
//   It is a value and is never mutated after creation.
type TxOut struct {
	Value          uint64
	PkScript       []byte
	ControlBlock   []byte // only set on inscription outputs
	TaprootPayload []byte // inscription leaf script, only set on inscription outputs
}

// Recipient identifies where an output pays. Exactly one of the concrete
//   recipient types is set; a nil recipient is an error, not a default.
type Recipient interface {
	isRecipient()
}

// RawScript is a locking script used verbatim.
type RawScript []byte

func (RawScript) isRecipient() {}

// ToBuilder requests construction of a standard locking script from the
//   contained variant.
type ToBuilder struct {
	Variant BuilderVariant
}

func (ToBuilder) isRecipient() {}

// ToAddress is a textual bitcoin address. It resolves to exactly one
//   non-address recipient before dispatch.
type ToAddress string

func (ToAddress) isRecipient() {}

// BuilderVariant is a closed set of spending condition constructions.
type BuilderVariant interface {
	isBuilderVariant()
}

// P2SH pays to a script hash.
type P2SH struct {
	Script ScriptOrHash
}

func (P2SH) isBuilderVariant() {}

// P2PKH pays to a public key hash.
type P2PKH struct {
	Pubkey PubkeyOrHash
}

func (P2PKH) isBuilderVariant() {}

// P2WSH pays to a witness version 0 script hash.
type P2WSH struct {
	Script ScriptOrHash
}

func (P2WSH) isBuilderVariant() {}

// P2WPKH pays to a witness version 0 public key hash.
type P2WPKH struct {
	Pubkey PubkeyOrHash
}

func (P2WPKH) isBuilderVariant() {}

// P2TRKeyPath pays to a taproot output spendable by key path only.
//
// PublicKey is normally a 33 byte compressed point that gets tweaked with an
//   empty merkle root. A 32 byte value is treated as an already tweaked
//   output key and used verbatim as the witness program. Address resolution
//   produces the latter form, since a taproot address embeds the tweaked key.
type P2TRKeyPath struct {
	PublicKey []byte
}

func (P2TRKeyPath) isBuilderVariant() {}

// P2TRScriptPath pays to a taproot output committing to a script tree with
//   the given 32 byte merkle node hash.
type P2TRScriptPath struct {
	PublicKey []byte // 33 byte compressed internal key
	NodeHash  []byte // 32 byte merkle root
}

func (P2TRScriptPath) isBuilderVariant() {}

// OrdinalInscribe pays to a taproot output committing to an ordinal
//   inscription of the payload with the given MIME type.
type OrdinalInscribe struct {
	InscribeTo []byte // 33 byte compressed internal key
	MIMEType   string
	Payload    []byte
}

func (OrdinalInscribe) isBuilderVariant() {}

// BRC20Inscribe pays to a taproot output committing to a BRC20 transfer
//   inscription.
type BRC20Inscribe struct {
	InscribeTo     []byte // 33 byte compressed internal key
	Ticker         string
	TransferAmount uint64
}

func (BRC20Inscribe) isBuilderVariant() {}

// ScriptOrHash supplies a redeem script either directly or as its hash.
type ScriptOrHash interface {
	isScriptOrHash()
}

// ScriptHash is the precomputed hash of a redeem script: 20 bytes for P2SH,
//   32 bytes for P2WSH.
type ScriptHash []byte

func (ScriptHash) isScriptOrHash() {}

// RedeemScript is a redeem script to be hashed.
type RedeemScript []byte

func (RedeemScript) isScriptOrHash() {}

// PubkeyOrHash supplies a public key either directly or as its 20 byte hash.
type PubkeyOrHash interface {
	isPubkeyOrHash()
}

// PubkeyHash is a precomputed 20 byte HASH160 of a compressed public key.
type PubkeyHash []byte

func (PubkeyHash) isPubkeyOrHash() {}

// Pubkey is a 33 byte compressed public key to be hashed.
type Pubkey []byte

func (Pubkey) isPubkeyOrHash() {}
