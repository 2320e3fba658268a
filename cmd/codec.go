package cmd

import (
	"github.com/spf13/cobra"

	"github.com/viktools/viktools/internal/toolbox"
)

var codecType string

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text as base64, url, html, hex or hex-utf8",
	RunE:  runCodec(toolbox.OpEncode),
}

var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Decode base64, url, html, hex or hex-utf8 text",
	RunE:  runCodec(toolbox.OpDecode),
}

func runCodec(op string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		_, logger, tb, err := setup(cmd)
		if err != nil {
			return err
		}
		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		req := toolbox.CodecRequest{Input: input, Type: toolbox.Encoding(codecType)}
		var res toolbox.Result
		if op == toolbox.OpEncode {
			res, err = tb.Encode(req)
		} else {
			res, err = tb.Decode(req)
		}
		return printResult(cmd, logger, res, err)
	}
}

func init() {
	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().StringVarP(&codecType, "type", "t", "", "encoding type (default from config)")
		rootCmd.AddCommand(c)
	}
}
