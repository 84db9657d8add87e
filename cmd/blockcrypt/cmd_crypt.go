package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/urfave/cli/v2"

	"blockcrypt/internal/fn"
	"blockcrypt/pkg/aes128"
	"blockcrypt/pkg/log"
	"blockcrypt/pkg/transform"
)

var cryptFlags = []cli.Flag{
	&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Required: true, Usage: "input file"},
	&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default: input plus/minus .bcr suffix)"},
	&cli.StringFlag{Name: "passphrase", Aliases: []string{"p"}, Usage: "encryption passphrase"},
	&cli.StringFlag{Name: "key-file", Aliases: []string{"k"}, Usage: "file holding a hex-encoded 16-byte key"},
	&cli.BoolFlag{Name: "compress", Aliases: []string{"z"}, Usage: "zstd-compress before encrypting"},
}

var encryptCommand = &cli.Command{
	Name:   "encrypt",
	Usage:  "encrypt a file with AES-128 in CBC mode",
	Flags:  cryptFlags,
	Action: func(c *cli.Context) error { return runCrypt(c, true) },
}

var decryptCommand = &cli.Command{
	Name:   "decrypt",
	Usage:  "decrypt a file produced by encrypt",
	Flags:  cryptFlags,
	Action: func(c *cli.Context) error { return runCrypt(c, false) },
}

// buildPipeline assembles the transform chain: optional compression,
// then CBC encryption. Order matters; ciphertext does not compress.
func buildPipeline(c *cli.Context) (*transform.PayloadProcessor, error) {
	cbc, err := resolveCBCTransform(c)
	if err != nil {
		return nil, err
	}

	compress := c.Bool("compress") || cfg.Compress
	transforms := make([]transform.Transform, 0, 2)
	if compress {
		zst, err := transform.NewZstdTransform(zstd.SpeedFastest)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, zst)
	}
	transforms = append(transforms, cbc)
	return transform.NewPayloadProcessor(transforms)
}

// resolveCBCTransform picks the key source: an explicit key file wins
// over a passphrase; flags win over config.
func resolveCBCTransform(c *cli.Context) (transform.Transform, error) {
	keyFile := fn.T(c.IsSet("key-file"), c.String("key-file"), cfg.KeyFile)
	if keyFile != "" {
		key, err := readKeyFile(keyFile)
		if err != nil {
			return nil, err
		}
		return transform.NewCBCTransformWithKey(key)
	}

	passphrase := fn.T(c.IsSet("passphrase"), c.String("passphrase"), cfg.Passphrase)
	if passphrase == "" {
		return nil, errors.New("no key material: provide --passphrase or --key-file (or set them in the config)")
	}
	return transform.NewCBCTransform(passphrase)
}

func readKeyFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	key, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("key file %s is not valid hex: %w", path, err)
	}
	if len(key) != aes128.KeySize {
		return nil, fmt.Errorf("key file %s holds %d bytes, want %d", path, len(key), aes128.KeySize)
	}
	return key, nil
}

const encSuffix = ".bcr"

func runCrypt(c *cli.Context, encrypt bool) error {
	inPath := c.String("in")
	outPath := c.String("out")
	if outPath == "" {
		if encrypt {
			outPath = inPath + encSuffix
		} else {
			if !strings.HasSuffix(inPath, encSuffix) {
				return fmt.Errorf("cannot derive output name from %s; pass --out", inPath)
			}
			outPath = strings.TrimSuffix(inPath, encSuffix)
		}
	}

	proc, err := buildPipeline(c)
	if err != nil {
		return err
	}

	payload, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	var result []byte
	if encrypt {
		result, err = proc.PrepareOutput(payload)
	} else {
		result, err = proc.ParseInput(payload)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, result, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	log.Info().
		Str("op", fn.T(encrypt, "encrypt", "decrypt")).
		Str("in", inPath).
		Str("out", outPath).
		Int("in_bytes", len(payload)).
		Int("out_bytes", len(result)).
		Msg("done")
	return nil
}
