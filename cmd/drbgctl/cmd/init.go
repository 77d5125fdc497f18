// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"

	"github.com/sixafter/drbg"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Lazily instantiate the default DRBG instance (HMAC-SHA-256)",
	RunE:  runInit,
}

func init() {
	RootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := drbg.Init(true); err != nil {
		return fmt.Errorf("init: %w", err)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), "initialized")
	return err
}
