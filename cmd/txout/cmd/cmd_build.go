package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bitsigner/txout/pkg/txbuilder"
)

var cmdBuild = &cobra.Command{
	Use:   "build [json file]",
	Short: "Build an output locking script from a JSON description",
	Long: `Build an output locking script from a JSON description read from a file or
stdin. Example descriptions:

  {"amount": 1000, "address": "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"}
  {"amount": 546, "brc20": {"inscribe_to": "02...", "ticker": "ordi", "amount": 20}}`,
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) > 1 {
			return errors.New("Incorrect argument count")
		}

		params := network(c)
		if params == nil {
			return nil
		}

		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(os.Stdin)
		}
		if err != nil {
			return errors.Wrap(err, "read description")
		}

		var descriptor outputDescriptor
		if err := json.Unmarshal(data, &descriptor); err != nil {
			return errors.Wrap(err, "parse description")
		}

		builder := txbuilder.NewOutputBuilder(params)
		out, err := builder.Build(descriptor.toOutput())
		if err != nil {
			return err
		}

		fmt.Printf("Value : %d\n", out.Value)
		fmt.Printf("Script : %x\n", out.PkScript)
		if len(out.ControlBlock) > 0 {
			fmt.Printf("Control Block : %x\n", out.ControlBlock)
		}
		if len(out.TaprootPayload) > 0 {
			fmt.Printf("Taproot Payload : %x\n", out.TaprootPayload)
		}

		if verbose, _ := c.Flags().GetBool(FlagVerbose); verbose {
			spew.Dump(out)
		}

		return nil
	},
}
