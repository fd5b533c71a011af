/*
Copyright Provenid Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vcbroker-rest Verifiable credential broker REST API.
//
//	Schemes: http, https
//	Version: 0.1.0
//	License: SPDX-License-Identifier: Apache-2.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/provenid/vcbroker/cmd/vcbroker-rest/startcmd"
)

var logger = log.New("vcbroker-rest")
var Version string // will be embeded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "vcbroker-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		startcmd.WithVersion(Version),
	))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run vcbroker-rest", log.WithError(err))
	}
}
