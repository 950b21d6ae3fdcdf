package inscription

import (
	"encoding/json"
	"strconv"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
)

// BRC20MIMEType is the content type used by all BRC20 inscriptions.
const BRC20MIMEType = "text/plain;charset=utf-8"

// tickerLength is the required byte length of a BRC20 ticker.
const tickerLength = 4

// Ticker is a validated BRC20 token ticker.
type Ticker string

// NewTicker validates a BRC20 ticker. Tickers are exactly 4 bytes.
func NewTicker(s string) (Ticker, error) {
	if len(s) != tickerLength {
		return "", ErrInvalidTicker
	}
	return Ticker(s), nil
}

// String returns the ticker text.
func (t Ticker) String() string {
	return string(t)
}

// brc20Payload is the inscription body. Field order follows the BRC20
//   convention for transfer payloads.
type brc20Payload struct {
	Protocol  string `json:"p"`
	Operation string `json:"op"`
	Ticker    string `json:"tick"`
	Amount    string `json:"amt"`
}

// NewBRC20Transfer builds the inscription leaf script for a BRC20 transfer of
//   the given ticker and amount, committed to the internal key.
func NewBRC20Transfer(internalKey *btcec.PublicKey, ticker Ticker, amount uint64) (*TaprootScript, error) {
	if _, err := NewTicker(string(ticker)); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(brc20Payload{
		Protocol:  "brc-20",
		Operation: "transfer",
		Ticker:    string(ticker),
		Amount:    strconv.FormatUint(amount, 10),
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode transfer payload")
	}

	return NewOrdinal(BRC20MIMEType, payload, internalKey)
}
