package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"blockcrypt/pkg/aes128"
	"blockcrypt/pkg/log"
	"blockcrypt/pkg/random"
)

var keygenCommand = &cli.Command{
	Name:  "keygen",
	Usage: "generate a random 16-byte key",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the hex-encoded key to this file instead of stdout"},
	},
	Action: func(c *cli.Context) error {
		key, err := random.Bytes(aes128.KeySize)
		if err != nil {
			return fmt.Errorf("failed to generate key: %w", err)
		}
		encoded := hex.EncodeToString(key)

		if out := c.String("out"); out != "" {
			if err := os.WriteFile(out, []byte(encoded+"\n"), 0600); err != nil {
				return fmt.Errorf("failed to write key file: %w", err)
			}
			log.Info().Str("file", out).Msg("key written")
			return nil
		}
		fmt.Println(encoded)
		return nil
	},
}
