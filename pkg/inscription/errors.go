package inscription

import "errors"

var (
	ErrMissingInternalKey = errors.New("Internal key is required")
	ErrInvalidMIMEType    = errors.New("MIME type is empty or too large for a single push")
	ErrPayloadTooLarge    = errors.New("Payload exceeds the maximum inscription size")
	ErrInvalidTicker      = errors.New("Ticker must be exactly 4 bytes")
)
