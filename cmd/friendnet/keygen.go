package main

import (
	"fmt"

	"github.com/opd-ai/friendnet/crypto"
	"github.com/spf13/cobra"
)

func newKeygenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA keypair from the configured prime range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kp, err := crypto.GenerateKeyPair(a.cfg.KeyOptions())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "public:      %s\n", kp.Public)
			fmt.Fprintf(out, "private:     (%d, %d)\n", kp.Private.N, kp.Private.D)
			fmt.Fprintf(out, "fingerprint: %s\n", kp.Public.Fingerprint())
			return nil
		},
	}
}
