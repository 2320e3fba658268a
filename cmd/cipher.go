package cmd

import (
	"github.com/spf13/cobra"

	"github.com/viktools/viktools/internal/toolbox"
)

var (
	cipherKey       string
	cipherAlgorithm string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [text]",
	Short: "Encrypt text with the demo cipher",
	Long:  `Wraps the text in a demo cipher payload tagged with the algorithm label. No real encryption takes place. Text is read from stdin when no argument is given.`,
	RunE:  runCipher(toolbox.OpEncrypt),
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [payload]",
	Short: "Decrypt a demo cipher payload",
	RunE:  runCipher(toolbox.OpDecrypt),
}

func runCipher(op string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		_, logger, tb, err := setup(cmd)
		if err != nil {
			return err
		}
		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		req := toolbox.CipherRequest{Input: input, Key: cipherKey, Algorithm: cipherAlgorithm}
		var res toolbox.Result
		if op == toolbox.OpEncrypt {
			res, err = tb.Encrypt(req)
		} else {
			res, err = tb.Decrypt(req)
		}
		return printResult(cmd, logger, res, err)
	}
}

func init() {
	for _, c := range []*cobra.Command{encryptCmd, decryptCmd} {
		c.Flags().StringVarP(&cipherKey, "key", "k", "", "secret key (required)")
		c.Flags().StringVarP(&cipherAlgorithm, "algorithm", "a", "", "algorithm label: AES, DES, 3DES or RSA (default from config)")
		rootCmd.AddCommand(c)
	}
}
