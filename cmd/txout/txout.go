package main

import (
	"github.com/bitsigner/txout/cmd/txout/cmd"
)

// Transaction Output Builder CLI
//
func main() {
	cmd.Execute()
}
