package cmd

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/bitsigner/txout/pkg/bitcoin"
)

const (
	FlagNetwork = "network"
	FlagVerbose = "verbose"
)

var txoutCmd = &cobra.Command{
	Use:   "txout",
	Short: "Bitcoin output builder CLI",
}

func Execute() {
	txoutCmd.AddCommand(cmdBuild)
	txoutCmd.AddCommand(cmdResolve)
	txoutCmd.PersistentFlags().String(FlagNetwork, "", "bitcoin network : mainnet, testnet, regtest")
	txoutCmd.PersistentFlags().BoolP(FlagVerbose, "v", false, "dump full output records")
	txoutCmd.Execute()
}

// network returns the chain parameters selected by the --network flag, the
//   TXOUT_NETWORK environment value, or mainnet, in that order.
func network(c *cobra.Command) *chaincfg.Params {
	var cfg struct {
		Network string `default:"mainnet" envconfig:"NETWORK"`
	}
	if err := envconfig.Process("TXOUT", &cfg); err != nil {
		fmt.Printf("Parsing config : %v\n", err)
		return nil
	}

	name, _ := c.Flags().GetString(FlagNetwork)
	if len(name) == 0 {
		name = cfg.Network
	}

	params := bitcoin.NewChainParams(name)
	if params == nil {
		fmt.Printf("Unknown network : %s\n", name)
	}
	return params
}
