package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BackendStack21/shamir3pass-go/codec"
	"github.com/BackendStack21/shamir3pass-go/group"
	"github.com/BackendStack21/shamir3pass-go/utils"
)

var modulusBits int

var modulusCmd = &cobra.Command{
	Use:   "modulus",
	Short: "Generate a shared probable-prime modulus",
	RunE: func(cmd *cobra.Command, args []string) error {
		if modulusBits < group.RecommendedBits {
			fmt.Fprintf(cmd.ErrOrStderr(),
				"warning: %d-bit modulus is below the recommended %d bits\n",
				modulusBits, group.RecommendedBits)
		}
		p, err := group.Generate(modulusBits)
		if err != nil {
			return err
		}
		s, err := codec.Encode(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

var modulusInspectCmd = &cobra.Command{
	Use:   "inspect <modulus>",
	Short: "Show the bit length and fingerprint of an encoded modulus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := codec.Decode(args[0])
		if err != nil {
			return err
		}
		fingerprint := utils.SHA3256(codec.CanonicalBytes(p))
		fmt.Fprintf(cmd.OutOrStdout(), "bits:        %d\n", p.BitLen())
		fmt.Fprintf(cmd.OutOrStdout(), "fingerprint: %s\n", hex.EncodeToString(fingerprint[:8]))
		if p.BitLen() < group.RecommendedBits {
			fmt.Fprintf(cmd.OutOrStdout(), "note: below the recommended %d bits\n", group.RecommendedBits)
		}
		return nil
	},
}

func init() {
	modulusCmd.Flags().IntVar(&modulusBits, "bits", group.RecommendedBits, "modulus bit length")
	modulusCmd.AddCommand(modulusInspectCmd)
	rootCmd.AddCommand(modulusCmd)
}
