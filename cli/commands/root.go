package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/ron-go/cli/internal/config"
	"github.com/satishbabariya/ron-go/internal/debug"
)

var rootCmd = &cobra.Command{
	Use:           "ron-go",
	Short:         "Parse and check RON documents",
	Long:          "ron-go parses RON documents into a source-located AST and reports\nsyntax and type errors as source-anchored diagnostics.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	debugFlag bool
	cfg       *config.Config
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		debug.Init(debugFlag)
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		if cfg.NoColor {
			color.NoColor = true
		}
		return nil
	}
}

// Execute is the main entry point for the CLI
func Execute() error {
	return rootCmd.Execute()
}
