package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"blockcrypt/pkg/log"
)

var logsCommand = &cli.Command{
	Name:  "logs",
	Usage: "show recent entries from the SQLite log store",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "n", Value: 20, Usage: "number of entries to show"},
	},
	Action: func(c *cli.Context) error {
		entries, err := log.GetLastNLogs(c.Int("n"))
		if errors.Is(err, log.ErrNotInitialized) {
			return errors.New("no log store configured; pass --log-db or set log_db in the config")
		}
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%d\t%s\t%s\n", e.ID, e.InsertedAt.Format("2006-01-02 15:04:05"), e.LogData)
		}
		return nil
	},
}
