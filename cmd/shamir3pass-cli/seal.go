package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BackendStack21/shamir3pass-go/codec"
	"github.com/BackendStack21/shamir3pass-go/envelope"
	"github.com/BackendStack21/shamir3pass-go/utils"
)

var (
	sealModulus string
	sealInput   string
	openKEK     string
	openInput   string
)

var sealCmd = &cobra.Command{
	Use:   "seal",
	Short: "Encrypt a payload under a fresh random KEK",
	Long: `Draws a fresh KEK from [0, p), derives an encryption key from it, and
authenticated-encrypts the payload. Prints the sealed payload (base64)
and the KEK (transport encoding).

The KEK is NOT protected by this command: protocol-lock it with 'lock'
before persisting or transmitting it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := codec.Decode(sealModulus)
		if err != nil {
			return err
		}
		plaintext, err := readInput(sealInput)
		if err != nil {
			return err
		}
		res, err := envelope.EncryptWithRandomKEK(p, plaintext)
		if err != nil {
			return err
		}
		kek, err := codec.Encode(res.KEK)
		if err != nil {
			return err
		}
		defer utils.ZeroizeBig(res.KEK)
		fmt.Fprintf(cmd.OutOrStdout(), "sealed: %s\n", base64.StdEncoding.EncodeToString(res.Ciphertext))
		fmt.Fprintf(cmd.OutOrStdout(), "kek:    %s\n", kek)
		return nil
	},
}

var openCmd = &cobra.Command{
	Use:   "open <sealed>",
	Short: "Decrypt a sealed payload with a recovered KEK",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kek, err := codec.Decode(openKEK)
		if err != nil {
			return err
		}
		defer utils.ZeroizeBig(kek)

		encoded := ""
		if len(args) == 1 {
			encoded = args[0]
		} else {
			raw, err := readInput(openInput)
			if err != nil {
				return err
			}
			encoded = strings.TrimSpace(string(raw))
		}
		sealed, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return err
		}
		plaintext, err := envelope.DecryptWithKey(sealed, kek)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(plaintext)
		return err
	},
}

// readInput reads the payload from a file, or stdin when path is empty.
func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func init() {
	sealCmd.Flags().StringVar(&sealModulus, "modulus", "", "encoded shared modulus p (required)")
	sealCmd.Flags().StringVar(&sealInput, "in", "", "payload file (default stdin)")
	_ = sealCmd.MarkFlagRequired("modulus")

	openCmd.Flags().StringVar(&openKEK, "kek", "", "encoded KEK recovered via the protocol (required)")
	openCmd.Flags().StringVar(&openInput, "in", "", "sealed payload file, base64 (default stdin)")
	_ = openCmd.MarkFlagRequired("kek")

	rootCmd.AddCommand(sealCmd, openCmd)
}
