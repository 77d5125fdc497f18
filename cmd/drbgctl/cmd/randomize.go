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

var (
	randomizeBytes int
	randomizeAddtl string
)

var randomizeCmd = &cobra.Command{
	Use:   "randomize",
	Short: "Generate random bytes from the default DRBG instance",
	RunE:  runRandomize,
}

func init() {
	RootCmd.AddCommand(randomizeCmd)
	randomizeCmd.Flags().IntVarP(&randomizeBytes, "bytes", "n", 32, "Number of bytes to generate")
	randomizeCmd.Flags().StringVar(&randomizeAddtl, "addtl", "", "Hex-encoded additional input mixed into this call")
}

func runRandomize(cmd *cobra.Command, args []string) error {
	if randomizeBytes <= 0 {
		return fmt.Errorf("--bytes must be a positive integer")
	}

	var addtl []byte
	if randomizeAddtl != "" {
		var err error
		addtl, err = hex.DecodeString(randomizeAddtl)
		if err != nil {
			return fmt.Errorf("--addtl must be valid hex: %w", err)
		}
	}

	out := make([]byte, randomizeBytes)
	if err := drbg.Randomize(out, addtl); err != nil {
		return fmt.Errorf("randomize: %w", err)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
	return err
}
