package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	cbio "github.com/matzehuels/chartbridge/pkg/io"
	"github.com/matzehuels/chartbridge/pkg/pipeline"
	"github.com/matzehuels/chartbridge/pkg/render/sink"
)

// defaultPreviewWidth is used when stdout is not a terminal.
const defaultPreviewWidth = 80

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		opts  pipeline.Options
		dark  bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "preview <config>",
		Short: "Draw a quick bar preview of a chart config in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dark {
				opts.Theme = pipeline.ThemeDark
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			cfg, err := cbio.ImportConfig(args[0])
			if err != nil {
				return err
			}

			runner := pipeline.NewRunner(nil, nil, c.Logger)
			res, _, err := runner.Transform(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}

			if width <= 0 {
				width = terminalWidth()
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, sink.RenderTerminal(cfg, pipeline.ColorsOf(res.Options), width))
			for _, warn := range res.Warnings {
				printWarning(out, "%s", warn.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.ChartType, "type", "t", "", "chart type used to resolve colors")
	cmd.Flags().BoolVar(&dark, "dark", false, "use the dark theme")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "preview width in columns (default: terminal width)")
	_ = cmd.RegisterFlagCompletionFunc("type", completeChartTypes)

	return cmd
}

// terminalWidth returns the stdout width, or a default when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultPreviewWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultPreviewWidth
	}
	return w
}
