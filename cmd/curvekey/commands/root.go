package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"curvekey/internal/keystore"
)

var (
	home       string
	passphrase string
	store      *keystore.Store
)

func Execute() error {
	root := &cobra.Command{
		Use:   "curvekey",
		Short: "Curve25519 key agreement CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".curvekey")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			store = keystore.New(home)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "key dir (default ~/.curvekey)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect the key")

	root.AddCommand(keygenCmd(), pubkeyCmd(), deriveCmd(), fingerprintCmd())
	return root.Execute()
}
