package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bitsigner/txout/pkg/txbuilder"
)

var cmdResolve = &cobra.Command{
	Use:   "resolve [address]",
	Short: "Resolve a bitcoin address to its locking script",
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("Incorrect argument count")
		}

		params := network(c)
		if params == nil {
			return nil
		}

		builder := txbuilder.NewOutputBuilder(params)
		resolved, err := builder.ResolveAddress(0, args[0])
		if err != nil {
			return err
		}

		to, ok := resolved.To.(txbuilder.ToBuilder)
		if !ok {
			return errors.New("Address did not resolve to a builder recipient")
		}
		fmt.Printf("Variant : %T\n", to.Variant)

		out, err := builder.Build(resolved)
		if err != nil {
			return err
		}
		fmt.Printf("Script : %x\n", out.PkScript)

		if verbose, _ := c.Flags().GetBool(FlagVerbose); verbose {
			spew.Dump(resolved)
		}

		return nil
	},
}
