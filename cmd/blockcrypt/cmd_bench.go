package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"blockcrypt/pkg/benchmark"
	"blockcrypt/pkg/log"
)

var benchCommand = &cli.Command{
	Name:  "bench",
	Usage: "benchmark the cipher core and the transform pipeline",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "component", Value: "cbc", Usage: "component to benchmark (block, cbc, pipeline, all)"},
		&cli.IntFlag{Name: "iterations", Value: 1000, Usage: "number of iterations to run"},
		&cli.IntFlag{Name: "payload", Value: 4096, Usage: "payload size in bytes"},
		&cli.StringFlag{Name: "output", Usage: "output file for results (CSV format)"},
	},
	Action: benchCmd,
}

func parseComponent(compStr string) (benchmark.Component, error) {
	switch strings.ToLower(compStr) {
	case "block":
		return benchmark.ComponentBlock, nil
	case "cbc":
		return benchmark.ComponentCBC, nil
	case "pipeline":
		return benchmark.ComponentPipeline, nil
	default:
		return 0, fmt.Errorf("unknown component: %s", compStr)
	}
}

func benchCmd(c *cli.Context) error {
	opts := benchmark.DefaultOptions()
	opts.Iterations = c.Int("iterations")
	opts.PayloadSize = c.Int("payload")

	var results []*benchmark.Results
	if strings.EqualFold(c.String("component"), "all") {
		all, err := benchmark.RunAll(opts)
		if err != nil {
			return err
		}
		results = all
	} else {
		component, err := parseComponent(c.String("component"))
		if err != nil {
			return err
		}
		opts.Component = component
		r, err := benchmark.Run(opts)
		if err != nil {
			return err
		}
		benchmark.PrintResults(r)
		results = append(results, r)
	}

	if out := c.String("output"); out != "" {
		if err := benchmark.SaveResultsToFile(results, out); err != nil {
			return err
		}
		log.Info().Str("file", out).Msg("results saved")
	}
	return nil
}
