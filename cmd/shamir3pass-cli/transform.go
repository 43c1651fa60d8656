package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/BackendStack21/shamir3pass-go/codec"
	"github.com/BackendStack21/shamir3pass-go/lock"
)

var (
	transformModulus  string
	transformExponent string
)

var lockCmd = &cobra.Command{
	Use:   "lock <value>",
	Short: "Apply a lock: value^e mod p",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, args[0], func(en *lock.Engine, x, exp *big.Int) (*big.Int, error) {
			return en.AddLock(x, exp)
		})
	},
}

var unlockCmd = &cobra.Command{
	Use:   "unlock <value>",
	Short: "Remove a lock: value^d mod p",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, args[0], func(en *lock.Engine, x, exp *big.Int) (*big.Int, error) {
			return en.RemoveLock(x, exp)
		})
	},
}

func runTransform(cmd *cobra.Command, encodedValue string,
	apply func(*lock.Engine, *big.Int, *big.Int) (*big.Int, error)) error {
	engine, err := lock.NewFromEncoded(transformModulus)
	if err != nil {
		return err
	}
	exp, err := codec.Decode(transformExponent)
	if err != nil {
		return err
	}
	x, err := codec.Decode(encodedValue)
	if err != nil {
		return err
	}
	y, err := apply(engine, x, exp)
	if err != nil {
		return err
	}
	s, err := codec.Encode(y)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{lockCmd, unlockCmd} {
		c.Flags().StringVar(&transformModulus, "modulus", "", "encoded shared modulus p (required)")
		c.Flags().StringVar(&transformExponent, "exponent", "", "encoded lock exponent (required)")
		_ = c.MarkFlagRequired("modulus")
		_ = c.MarkFlagRequired("exponent")
		rootCmd.AddCommand(c)
	}
}
