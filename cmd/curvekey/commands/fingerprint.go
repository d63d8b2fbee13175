package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the stored key's fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := store.Load(passphrase)
			if err != nil {
				return err
			}
			defer key.Wipe()
			fmt.Printf("Fingerprint: %s\n", key.Fingerprint())
			return nil
		},
	}
}
