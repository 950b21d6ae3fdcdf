package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// Hash20 is a 20 byte RIPEMD160(SHA256()) hash, the size of public key and
//   script hashes embedded in locking scripts.
type Hash20 [20]byte

// NewHash20 creates a Hash20 from a byte slice. It returns an error if the
//   slice is not exactly 20 bytes.
func NewHash20(b []byte) (*Hash20, error) {
	if len(b) != 20 {
		return nil, ErrBadHashLength
	}
	result := Hash20{}
	copy(result[:], b)
	return &result, nil
}

// NewHash20FromData creates a Hash20 by hashing the data with
//   RIPEMD160(SHA256()).
func NewHash20FromData(b []byte) (*Hash20, error) {
	return NewHash20(Hash160(b))
}

// Bytes returns the data for the hash.
func (h *Hash20) Bytes() []byte {
	return h[:]
}

// String returns the hex encoding of the hash.
func (h *Hash20) String() string {
	return hex.EncodeToString(h[:])
}

// Equal returns true if the parameter has the same value.
func (h *Hash20) Equal(o *Hash20) bool {
	if h == nil {
		return o == nil
	}
	if o == nil {
		return false
	}
	return bytes.Equal(h[:], o[:])
}

// MarshalJSON converts to json.
func (h *Hash20) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("\"%x\"", h[:])), nil
}

// UnmarshalJSON converts from json.
func (h *Hash20) UnmarshalJSON(data []byte) error {
	if len(data) != 42 {
		return fmt.Errorf("Wrong size hex data for Hash20 : %d", len(data)-2)
	}

	_, err := hex.Decode(h[:], data[1:len(data)-1])
	return err
}
