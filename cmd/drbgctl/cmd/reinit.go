// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package cmd

import (
	"fmt"
	"strings"

	"github.com/sixafter/drbg"
	"github.com/spf13/cobra"
)

var (
	reinitMechanism           string
	reinitPersonalization     string
	reinitPredictionResistant bool
)

var reinitCmd = &cobra.Command{
	Use:   "reinit",
	Short: "Re-instantiate the default DRBG instance with a chosen mechanism",
	Long: `Mechanism names: hash-sha1, hash-sha256, hash-sha384, hash-sha512,
hmac-sha1, hmac-sha256, hmac-sha384, hmac-sha512, ctr-aes128, ctr-aes192, ctr-aes256.`,
	RunE: runReinit,
}

func init() {
	RootCmd.AddCommand(reinitCmd)
	reinitCmd.Flags().StringVarP(&reinitMechanism, "mechanism", "m", "hmac-sha256", "Mechanism to instantiate")
	reinitCmd.Flags().StringVar(&reinitPersonalization, "personalization", "", "Personalization string mixed in at instantiate time")
	reinitCmd.Flags().BoolVar(&reinitPredictionResistant, "prediction-resistant", false, "Reseed before every generate call")
}

var mechanismFlags = map[string]drbg.Flags{
	"hash-sha1":   drbg.FlagHash | drbg.FlagHashSHA1,
	"hash-sha256": drbg.FlagHash | drbg.FlagHashSHA256,
	"hash-sha384": drbg.FlagHash | drbg.FlagHashSHA384,
	"hash-sha512": drbg.FlagHash | drbg.FlagHashSHA512,
	"hmac-sha1":   drbg.FlagHmac | drbg.FlagHashSHA1,
	"hmac-sha256": drbg.FlagHmac | drbg.FlagHashSHA256,
	"hmac-sha384": drbg.FlagHmac | drbg.FlagHashSHA384,
	"hmac-sha512": drbg.FlagHmac | drbg.FlagHashSHA512,
	"ctr-aes128":  drbg.FlagCtr | drbg.FlagSym128,
	"ctr-aes192":  drbg.FlagCtr | drbg.FlagSym192,
	"ctr-aes256":  drbg.FlagCtr | drbg.FlagSym256,
}

func runReinit(cmd *cobra.Command, args []string) error {
	flags, ok := mechanismFlags[strings.ToLower(reinitMechanism)]
	if !ok {
		return fmt.Errorf("unknown mechanism %q", reinitMechanism)
	}
	if reinitPredictionResistant {
		flags |= drbg.FlagPredictionResist
	}

	if err := drbg.Reinit(flags, []byte(reinitPersonalization)); err != nil {
		return fmt.Errorf("reinit: %w", err)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "reinitialized with mechanism %s\n", reinitMechanism)
	return err
}
