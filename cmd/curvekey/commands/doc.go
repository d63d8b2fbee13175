// Package commands defines the curvekey CLI.
//
// Commands
//
//   - keygen       Generate a key pair and store it encrypted on disk
//   - pubkey       Print the serialized public key (hex)
//   - derive       Derive the shared secret with a peer public key
//   - fingerprint  Print the stored key's fingerprint
//
// # Implementation
//
// The root command resolves the key directory and builds the keystore before
// any subcommand runs. Key material lives encrypted under --home and is only
// decrypted with the passphrase given via -p.
package commands
