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

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the Known-Answer and sanity health-check suite",
	RunE:  runSelftest,
}

func init() {
	RootCmd.AddCommand(selftestCmd)
}

func runSelftest(cmd *cobra.Command, args []string) error {
	err := drbg.SelfTest(func(msg string) {
		fmt.Fprintf(cmd.OutOrStderr(), "FAIL: %s\n", msg)
	})
	if err != nil {
		return fmt.Errorf("selftest: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return err
}
