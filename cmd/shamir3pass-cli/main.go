// Package main provides the shamir3pass-cli command line interface for
// 3-pass protocol operations: modulus and lock-key generation, the lock
// and unlock transforms, and KEK envelope encryption.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	shamir3pass "github.com/BackendStack21/shamir3pass-go"
)

var rootCmd = &cobra.Command{
	Use:   "shamir3pass-cli",
	Short: "Shamir 3-pass commutative encryption toolkit",
	Long: `shamir3pass-cli drives the Shamir 3-pass protocol from the command line.

A typical exchange:
  1. One party generates a shared modulus:        shamir3pass-cli modulus --bits 2048
  2. Each party generates its own lock keys:      shamir3pass-cli keys --modulus <p>
  3. The data owner seals a payload:              shamir3pass-cli seal --modulus <p> --in data.bin
  4. The KEK travels via lock / unlock exchanges: shamir3pass-cli lock / unlock
  5. The recipient opens the payload:             shamir3pass-cli open --kek <k> --in sealed.bin

All big integers cross the CLI boundary in the canonical transport
encoding. Lock keys must never be transmitted; only locked values move.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the library version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "shamir3pass %s\n", shamir3pass.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
