package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "outline <file>",
	Short: "Extract the heading outline of a document",
	Long: `Outline extracts the heading structure of a document and prints it as
Markdown or as the JSON interchange form.

Supported formats: .docx, .md, .markdown, .html, .htm, .pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

var (
	flagJSON          bool
	flagFlat          bool
	flagIncludeFormat bool
	flagMaxDepth      int
	flagLevels        []int
)

func init() {
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "print the JSON interchange form instead of Markdown")
	rootCmd.Flags().BoolVar(&flagFlat, "flat", false, "print the filtered heading list without nesting")
	rootCmd.Flags().BoolVar(&flagIncludeFormat, "include-format", false, "carry font formatting into the output")
	rootCmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "keep only headings with level <= N (0 = unlimited)")
	rootCmd.Flags().IntSliceVar(&flagLevels, "levels", nil, "explicit allow-list of levels, e.g. --levels 1,2")
}
