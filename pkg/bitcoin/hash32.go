package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Hash32 is a 32 byte hash, the size of SHA256 digests, taproot merkle node
//   hashes, and x-only public keys.
type Hash32 [32]byte

// NewHash32 creates a Hash32 from a byte slice. It returns an error if the
//   slice is not exactly 32 bytes.
func NewHash32(b []byte) (*Hash32, error) {
	if len(b) != 32 {
		return nil, ErrBadHashLength
	}
	result := Hash32{}
	copy(result[:], b)
	return &result, nil
}

// NewHash32FromData creates a Hash32 by hashing the data with SHA256.
func NewHash32FromData(b []byte) (*Hash32, error) {
	return NewHash32(Sha256(b))
}

// Bytes returns the data for the hash.
func (h *Hash32) Bytes() []byte {
	return h[:]
}

// String returns the hex encoding of the hash.
func (h *Hash32) String() string {
	return hex.EncodeToString(h[:])
}

// Equal returns true if the parameter has the same value.
func (h *Hash32) Equal(o *Hash32) bool {
	if h == nil {
		return o == nil
	}
	if o == nil {
		return false
	}
	return bytes.Equal(h[:], o[:])
}

// MarshalJSON converts to json.
func (h *Hash32) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%x\"", h[:])), nil
}

// UnmarshalJSON converts from json.
func (h *Hash32) UnmarshalJSON(data []byte) error {
	if len(data) != 66 {
		return fmt.Errorf("Wrong size hex data for Hash32 : %d", len(data)-2)
	}

	_, err := hex.Decode(h[:], data[1:len(data)-1])
	return err
}
