package bitcoin

import (
	"github.com/btcsuite/btcd/chaincfg"
)

var (
	// MainNetParams defines the network parameters for the Bitcoin main
	//   network.
	MainNetParams = &chaincfg.MainNetParams

	// TestNetParams defines the network parameters for the Bitcoin test
	//   network.
	TestNetParams = &chaincfg.TestNet3Params

	// RegressionNetParams defines the network parameters for the Bitcoin
	//   regression test network.
	RegressionNetParams = &chaincfg.RegressionNetParams
)

// NewChainParams returns the chain parameters for a network name. It returns
//   nil for an unknown name.
func NewChainParams(network string) *chaincfg.Params {
	switch network {
	case "mainnet":
		return MainNetParams
	case "testnet":
		return TestNetParams
	case "regtest":
		return RegressionNetParams
	}

	return nil
}
