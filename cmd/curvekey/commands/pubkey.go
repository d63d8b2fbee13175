package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"curvekey/internal/ecdh"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the serialized public key (hex)",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := store.Load(passphrase)
			if err != nil {
				return err
			}
			defer key.Wipe()
			blob := make([]byte, ecdh.PublicBlobSize)
			if _, err := key.ExportPublic(blob); err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(blob))
			return nil
		},
	}
}
