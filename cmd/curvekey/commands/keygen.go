package commands

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"curvekey/internal/ecdh"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and store it encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			key := ecdh.NewKey()
			if err := key.Generate(rand.Reader, ecdh.KeySize); err != nil {
				return err
			}
			defer key.Wipe()
			if err := store.Save(passphrase, key); err != nil {
				return err
			}
			fmt.Printf("Key created.\nFingerprint: %s\n", key.Fingerprint())
			return nil
		},
	}
}
