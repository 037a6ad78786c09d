package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atikulmunna/depthtree/internal/output"
	"github.com/atikulmunna/depthtree/internal/parser"
	"github.com/atikulmunna/depthtree/internal/reader"
	"github.com/atikulmunna/depthtree/internal/tree"
)

func runTree(cmd *cobra.Command, args []string) error {
	in, err := reader.New(args, maxLines)
	if err != nil {
		return err
	}

	// Config supplies the color default when the flag is not given.
	if !cmd.Flags().Changed("color") {
		colorize = viper.GetBool("color")
	}

	builder := tree.NewBuilder(showMsg, !noCollapse)

	err = in.Scan(func(line string) {
		kv := parser.ParseLine(line)
		if len(kv) == 0 {
			return
		}
		// Filter on the raw tid string before building anything.
		if onlyTID != "" && kv["tid"] != onlyTID {
			return
		}
		ev, ok := parser.BuildEvent(kv)
		if !ok {
			return // missing required fields or bad depth: skip silently
		}
		builder.Insert(ev)
	})
	if err != nil {
		return err
	}

	renderer := output.NewTreeRenderer(cmd.OutOrStdout(), colorize)
	for _, tid := range builder.TIDs() {
		if err := renderer.RenderThread(tid, builder.Root(tid)); err != nil {
			return err
		}
	}
	return nil
}
