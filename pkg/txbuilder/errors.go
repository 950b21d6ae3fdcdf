package txbuilder

import "fmt"

// Error codes returned by output building and address resolution. All are
//   fatal for the call that produced them; nothing is retried internally.
const (
	ErrorCodeMissingRecipient            = 1
	ErrorCodeMissingBuilderVariant       = 2
	ErrorCodeInvalidRedeemScript         = 3
	ErrorCodeInvalidWitnessRedeemScript  = 4
	ErrorCodeInvalidPubkeyHash           = 5
	ErrorCodeInvalidWitnessPubkeyHash    = 6
	ErrorCodeInvalidPublicKey            = 7
	ErrorCodeInvalidTaprootRoot          = 8
	ErrorCodeBadAddressRecipient         = 9
	ErrorCodeUnsupportedAddressRecipient = 10
	ErrorCodeInvalidInscription          = 11
)

// IsErrorCode returns true if the error is an output builder error with the
//   specified code.
func IsErrorCode(err error, code int) bool {
	er, ok := err.(*outputError)
	if !ok {
		return false
	}
	return er.code == code
}

type outputError struct {
	code    int
	message string
}

func (err *outputError) Error() string {
	if len(err.message) == 0 {
		return errorCodeString(err.code)
	}
	return fmt.Sprintf("%s : %s", errorCodeString(err.code), err.message)
}

func errorCodeString(code int) string {
	switch code {
	case ErrorCodeMissingRecipient:
		return "Missing Recipient"
	case ErrorCodeMissingBuilderVariant:
		return "Missing Builder Variant"
	case ErrorCodeInvalidRedeemScript:
		return "Invalid Redeem Script"
	case ErrorCodeInvalidWitnessRedeemScript:
		return "Invalid Witness Redeem Script"
	case ErrorCodeInvalidPubkeyHash:
		return "Invalid Pubkey Hash"
	case ErrorCodeInvalidWitnessPubkeyHash:
		return "Invalid Witness Pubkey Hash"
	case ErrorCodeInvalidPublicKey:
		return "Invalid Public Key"
	case ErrorCodeInvalidTaprootRoot:
		return "Invalid Taproot Root"
	case ErrorCodeBadAddressRecipient:
		return "Bad Address Recipient"
	case ErrorCodeUnsupportedAddressRecipient:
		return "Unsupported Address Recipient"
	case ErrorCodeInvalidInscription:
		return "Invalid Inscription"
	default:
		return "Unknown Error Code"
	}
}

func newError(code int, message string) *outputError {
	result := outputError{code: code, message: message}
	return &result
}
