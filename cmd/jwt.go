package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/viktools/viktools/internal/toolbox"
)

var (
	jwtHeader string
	jwtSecret string
)

var jwtCmd = &cobra.Command{
	Use:   "jwt",
	Short: "Encode, decode and verify JSON Web Tokens",
}

var jwtEncodeCmd = &cobra.Command{
	Use:   "encode [payload]",
	Short: "Build a token from a JSON header and payload",
	Long:  `Builds a token from --header (default {"alg":"HS256","typ":"JWT"}) and the JSON payload argument or stdin. The signature is a demo value, not an HMAC.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, tb, err := setup(cmd)
		if err != nil {
			return err
		}
		payload, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		header := jwtHeader
		if header == "" {
			header = toolbox.Defaults(time.Now()).JWTHeader
		}
		res, err := tb.JWTEncode(toolbox.JWTEncodeRequest{Header: header, Payload: payload, Secret: jwtSecret})
		return printResult(cmd, logger, res, err)
	},
}

var jwtDecodeCmd = &cobra.Command{
	Use:   "decode [token]",
	Short: "Print the header, payload and signature of a token",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, tb, err := setup(cmd)
		if err != nil {
			return err
		}
		token, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		res, err := tb.JWTDecode(toolbox.JWTDecodeRequest{Token: token})
		return printResult(cmd, logger, res, err)
	},
}

var jwtVerifyCmd = &cobra.Command{
	Use:   "verify [token]",
	Short: "Verify a token signature (requires a backend)",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, tb, err := setup(cmd)
		if err != nil {
			return err
		}
		token, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		res, err := tb.JWTVerify(toolbox.JWTVerifyRequest{Token: token, Secret: jwtSecret})
		return printResult(cmd, logger, res, err)
	},
}

func init() {
	jwtEncodeCmd.Flags().StringVar(&jwtHeader, "header", "", "JSON header")
	jwtEncodeCmd.Flags().StringVarP(&jwtSecret, "secret", "s", "", "signing secret (required)")
	jwtVerifyCmd.Flags().StringVarP(&jwtSecret, "secret", "s", "", "signing secret (required)")

	jwtCmd.AddCommand(jwtEncodeCmd, jwtDecodeCmd, jwtVerifyCmd)
	rootCmd.AddCommand(jwtCmd)
}
