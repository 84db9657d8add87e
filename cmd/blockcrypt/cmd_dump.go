package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"blockcrypt/pkg/hexdump"
)

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "hex dump a file",
	ArgsUsage: "FILE",
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("dump takes exactly one file argument")
		}
		data, err := os.ReadFile(c.Args().First())
		if err != nil {
			return err
		}
		return hexdump.FHexDump(0, data, os.Stdout)
	},
}
