package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/ron-go/cli/internal/ui"
	"github.com/satishbabariya/ron-go/ron"
	"github.com/satishbabariya/ron-go/ron/parsing"
	"github.com/satishbabariya/ron-go/ron/parsing/ast"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a RON document",
	Long: `Parse a RON document and report syntax errors as source excerpts.

With --ast the parsed tree is dumped with one node per line, each
annotated with its source span.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var parseShowAST bool

func init() {
	parseCmd.Flags().BoolVar(&parseShowAST, "ast", false, "Dump the parsed tree")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
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

	ui.PrintSuccess("Parsed %s", path)

	if parseShowAST {
		fmt.Println()
		dumpTree(value, 0)
		return nil
	}

	fmt.Println()
	ui.PrintSection("Document Summary")
	ui.PrintTable([]string{"Kind", "Count"}, countNodes(value))
	return nil
}

func dumpTree(v ast.Value, depth int) {
	span := v.NodeSpan()
	fmt.Printf("%s%s  [%d:%d..%d:%d]\n",
		strings.Repeat("  ", depth), ast.Describe(v),
		span.Start.Line, span.Start.Column, span.End.Line, span.End.Column)
	for _, child := range ast.Children(v) {
		dumpTree(child, depth+1)
	}
}

func countNodes(v ast.Value) [][]string {
	counts := map[string]int{}
	order := []string{"struct", "map", "sequence", "tuple", "option", "string", "integer", "float", "boolean", "character", "identifier", "unit"}
	ast.Walk(v, func(n ast.Value) bool {
		counts[kindOf(n)]++
		return true
	})
	rows := make([][]string, 0, len(order))
	for _, kind := range order {
		if counts[kind] > 0 {
			rows = append(rows, []string{kind, fmt.Sprintf("%d", counts[kind])})
		}
	}
	return rows
}

func kindOf(v ast.Value) string {
	switch v.(type) {
	case *ast.Unit:
		return "unit"
	case *ast.Bool:
		return "boolean"
	case *ast.Integer:
		return "integer"
	case *ast.Float:
		return "float"
	case *ast.Char:
		return "character"
	case *ast.String:
		return "string"
	case *ast.Ident:
		return "identifier"
	case *ast.Option:
		return "option"
	case *ast.Sequence:
		return "sequence"
	case *ast.Tuple:
		return "tuple"
	case *ast.NamedFields:
		return "struct"
	case *ast.Map:
		return "map"
	default:
		return "value"
	}
}
