package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"curvekey/internal/ecdh"
	"curvekey/internal/util/memzero"
)

func deriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive <peer-pubkey-hex>",
		Short: "Derive the shared secret with a peer public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("peer public key is not valid hex: %w", err)
			}
			peer := ecdh.NewKey()
			if err := peer.ImportPublic(blob); err != nil {
				return err
			}

			key, err := store.Load(passphrase)
			if err != nil {
				return err
			}
			defer key.Wipe()

			secret := make([]byte, ecdh.KeySize)
			defer memzero.Zero(secret)
			if _, err := key.SharedSecret(peer, secret); err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(secret))
			return nil
		},
	}
}
