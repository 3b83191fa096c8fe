package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// set at build time via -ldflags
var (
	BuildTag    = "dev"
	BuildCommit = "unknown"
)

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print version information",
		Action: func(c *cli.Context) error {
			fmt.Printf("patmin version %s (commit: %s)\n", BuildTag, BuildCommit)
			return nil
		},
	}
}
