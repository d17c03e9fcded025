// numfield - A locale-aware numeric input field for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"

	"github.com/jeranaias/numfield/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args, err := cli.Parse()
	if err == nil {
		err = cli.Run(cmd, args)
	}
	if err != nil {
		cli.DisplayError(err, args.JSON)
		if cmd == cli.CmdHelp {
			cli.PrintUsage()
		}
		os.Exit(cli.GetExitCode(err))
	}
}
