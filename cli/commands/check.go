package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/ron-go/cli/internal/ui"
	"github.com/satishbabariya/ron-go/ron"
	"github.com/satishbabariya/ron-go/ron/decode"
	"github.com/satishbabariya/ron-go/ron/diagnostics"
	"github.com/satishbabariya/ron-go/ron/parsing"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse and decode a RON document",
	Long: `Parse a RON document and decode every value without a schema.

This catches what parsing alone cannot: suffixed numeric literals that
overflow their own width, and nesting beyond the configured depth limit.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	content, err := os.ReadFile(path)
	if err != nil {
		ui.PrintError("cannot read %s: %v", path, err)
		return err
	}
	source := string(content)

	value, diags := ron.ParseWithOptions(source, parsing.Options{MaxDepth: cfg.MaxDepth})
	if diags.HasErrors() {
		ui.PrintError("Parsing failed:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(path, source))
		return fmt.Errorf("document has syntax errors")
	}

	decoder := decode.NewDecoderWithOptions(decode.Options{MaxDepth: cfg.MaxDepth})
	if _, derr := decoder.Any(value); derr != nil {
		var diags diagnostics.Diagnostics
		diags.PushError(derr)
		ui.PrintError("Decoding failed:")
		fmt.Fprintf(os.Stderr, "\n%s\n", diags.ToPrettyString(path, source))
		return fmt.Errorf("document has decode errors")
	}

	ui.PrintSuccess("%s is well-formed", path)
	return nil
}
