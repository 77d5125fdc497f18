// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "drbgctl",
	Short: "Exercise a NIST SP 800-90A DRBG instance from the command line",
	Long:  `drbgctl drives the package-level control surface (init, reinit, randomize, add-bytes, selftest) of the drbg package for manual testing and scripting.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It is called by main.main exactly once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing drbgctl: %v\n", err)
		os.Exit(1)
	}
}
