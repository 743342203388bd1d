package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/outliner/internal/outline"
	"github.com/dgallion1/outliner/internal/parser"
)

func runOutline(cmd *cobra.Command, args []string) error {
	path := args[0]

	extractor, err := parser.ForFile(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res, err := extractor.Extract(f, path)
	if err != nil {
		return fmt.Errorf("extract %s: %w", path, err)
	}

	opts := outline.Options{
		IncludeFormat:  flagIncludeFormat,
		MaxDepth:       flagMaxDepth,
		SpecificLevels: flagLevels,
	}

	out := cmd.OutOrStdout()

	if flagFlat {
		nodes := outline.BuildFlat(res.Records, opts)
		if flagJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(nodes)
		}
		for _, n := range nodes {
			fmt.Fprintf(out, "%d\t%s\t%s\n", n.Level, n.ID, n.Text)
		}
		return nil
	}

	o := outline.Build(res.Records, opts)
	if flagJSON {
		data, err := outline.MarshalInterchange(o)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, outline.Markdown(o))
	return nil
}
