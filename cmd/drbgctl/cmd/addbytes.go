// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/sixafter/drbg"
	"github.com/spf13/cobra"
)

var addBytesHex string

var addBytesCmd = &cobra.Command{
	Use:   "add-bytes",
	Short: "Reseed the default DRBG instance with caller-supplied bytes",
	RunE:  runAddBytes,
}

func init() {
	RootCmd.AddCommand(addBytesCmd)
	addBytesCmd.Flags().StringVar(&addBytesHex, "bytes", "", "Hex-encoded bytes to mix in as additional input")
}

func runAddBytes(cmd *cobra.Command, args []string) error {
	if addBytesHex == "" {
		return fmt.Errorf("--bytes is required")
	}
	buf, err := hex.DecodeString(addBytesHex)
	if err != nil {
		return fmt.Errorf("--bytes must be valid hex: %w", err)
	}

	if err := drbg.AddBytes(buf); err != nil {
		return fmt.Errorf("add-bytes: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "reseeded")
	return err
}
