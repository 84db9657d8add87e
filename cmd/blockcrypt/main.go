package main

import (
	stdlog "log"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"blockcrypt/pkg/log"
)

// Version information - will be set at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

var cfg *Config

func main() {
	app := &cli.App{
		Name:    "blockcrypt",
		Usage:   "AES-128/CBC encryption toolbox",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to the configuration file"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug logging"},
			&cli.StringFlag{Name: "log-db", Usage: "write logs to this SQLite database instead of the console"},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			if c.IsSet("log-db") {
				cfg.LogDB = c.String("log-db")
			}

			if c.Bool("verbose") {
				log.SetLevel(zerolog.DebugLevel)
			} else {
				log.SetLevel(zerolog.InfoLevel)
			}
			if cfg.LogDB != "" {
				if err := log.Init(cfg.LogDB); err != nil {
					return err
				}
			}
			return nil
		},
		After: func(c *cli.Context) error {
			return log.Close()
		},
		Commands: []*cli.Command{
			keygenCommand,
			encryptCommand,
			decryptCommand,
			dumpCommand,
			benchCommand,
			logsCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		stdlog.Fatalf("blockcrypt: %v", err)
	}
}
