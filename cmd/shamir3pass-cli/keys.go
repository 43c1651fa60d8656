package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BackendStack21/shamir3pass-go/codec"
	"github.com/BackendStack21/shamir3pass-go/lock"
)

var keysModulus string

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Generate a commuting lock-key pair for a modulus",
	Long: `Generates a fresh exponent pair (e, d) with e*d = 1 (mod p-1).

The pair is printed to stdout and nowhere else. Keep both exponents
private: the protocol depends on neither ever being transmitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := lock.NewFromEncoded(keysModulus)
		if err != nil {
			return err
		}
		kp, err := engine.GenerateLockKeys()
		if err != nil {
			return err
		}
		e, err := codec.Encode(kp.E)
		if err != nil {
			return err
		}
		d, err := codec.Encode(kp.D)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "add-lock (e):    %s\n", e)
		fmt.Fprintf(cmd.OutOrStdout(), "remove-lock (d): %s\n", d)
		return nil
	},
}

func init() {
	keysCmd.Flags().StringVar(&keysModulus, "modulus", "", "encoded shared modulus p (required)")
	_ = keysCmd.MarkFlagRequired("modulus")
	rootCmd.AddCommand(keysCmd)
}
