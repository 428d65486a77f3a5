package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/spf13/cobra"

	"github.com/nullstride/rtvctl/internal/snapshot"
)

func init() {
	signCmd.Flags().String("key", "", "hex-encoded secp256k1 private key; a fresh key is generated if omitted")
	rootCmd.AddCommand(signCmd, verifyCmd)
}

var signCmd = &cobra.Command{
	Use:   "sign <file>",
	Short: "Sign an exported snapshot envelope in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		file := args[0]

		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("sign: %w", err)
		}
		env, err := snapshot.Unmarshal(raw)
		if err != nil {
			return err
		}

		keyHex, _ := c.Flags().GetString("key")
		priv, err := resolveSigningKey(keyHex)
		if err != nil {
			return err
		}

		unsignedCopy := env
		unsignedCopy.Signature = nil
		unsignedCopy.PublicKey = nil
		f, err := snapshot.Decode(unsignedCopy)
		if err != nil {
			return err
		}

		signed, err := snapshot.Encode(f, priv)
		if err != nil {
			return err
		}
		if err := os.WriteFile(file, signed.Marshal(), 0644); err != nil {
			return fmt.Errorf("sign: %w", err)
		}
		fmt.Printf("signed %s with public key %x\n", file, priv.PubKey().SerializeCompressed())
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Verify an exported snapshot envelope's signature",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		file := args[0]

		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		env, err := snapshot.Unmarshal(raw)
		if err != nil {
			return err
		}
		if err := snapshot.Verify(env); err != nil {
			return err
		}
		fmt.Println("signature ok")
		return nil
	},
}

func resolveSigningKey(keyHex string) (*btcec.PrivateKey, error) {
	if keyHex == "" {
		return btcec.NewPrivateKey()
	}
	b, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid --key: %w", err)
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	if priv == nil {
		return nil, fmt.Errorf("invalid --key: could not derive private key")
	}
	return priv, nil
}
