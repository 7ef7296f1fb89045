package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	cbio "github.com/matzehuels/chartbridge/pkg/io"
	"github.com/matzehuels/chartbridge/pkg/pipeline"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output  string
	formats string
	dark    bool
	noCache bool
	opts    pipeline.Options
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts

	cmd := &cobra.Command{
		Use:   "render <config>",
		Short: "Render a chart config to JSON, SVG, PNG or XLSX",
		Long: `Render a chart config to one or more output formats.

The config may be JSON, TOML or YAML (detected from the extension). The json
format writes the ECharts option tree; svg and png draw a static snapshot;
xlsx writes a workbook with the data and a native spreadsheet chart.

Results are cached locally; use --no-cache to bypass the cache entirely or
--refresh to recompute and overwrite cached entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ro.opts.Formats = parseFormats(ro.formats)
			if ro.dark {
				ro.opts.Theme = pipeline.ThemeDark
			}
			if err := ro.opts.Validate(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args[0], ro)
		},
	}

	cmd.Flags().StringVarP(&ro.opts.ChartType, "type", "t", "", "chart type: line (default), bar, area, pie, donut, scatter, radar, heatmap, mixed")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): json (default), svg, png, xlsx (comma-separated)")
	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&ro.dark, "dark", false, "use the dark theme")
	cmd.Flags().IntVar(&ro.opts.Width, "width", pipeline.DefaultWidth, "snapshot width in pixels")
	cmd.Flags().IntVar(&ro.opts.Height, "height", pipeline.DefaultHeight, "snapshot height in pixels")
	cmd.Flags().BoolVar(&ro.opts.Pretty, "pretty", true, "indent JSON output")
	cmd.Flags().BoolVar(&ro.opts.Refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&ro.noCache, "no-cache", false, "disable caching")
	_ = cmd.RegisterFlagCompletionFunc("type", completeChartTypes)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, w io.Writer, input string, ro renderOpts) error {
	logger := loggerFromContext(ctx)
	run := newChartRun(logger, input)

	cfg, err := cbio.ImportConfig(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "path", input, "series", len(cfg.Series))

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	spinner.Start()
	res, err := runner.Execute(ctx, cfg, ro.opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	for _, warn := range res.Warnings {
		printWarning(w, "%s", warn.Message)
	}
	run.warnings(res.Warnings)

	paths, err := writeArtifacts(res.Artifacts, ro.opts.Formats, input, ro.output)
	if err != nil {
		return err
	}
	printSuccess(w, "Rendered %s", filepath.Base(input))
	printStats(w, res.Stats.Series, len(res.Warnings), res.CacheInfo.TransformHit && res.CacheInfo.RenderHit)
	for _, p := range paths {
		printFile(w, p)
	}
	run.done(ro.opts, res, len(paths))
	return nil
}

// outputPaths maps each format to its destination. A single format with an
// explicit output uses it verbatim; otherwise files share a base path.
func outputPaths(formats []string, input, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// writeArtifacts writes every artifact and returns the written paths, sorted.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	var written []string
	for format, path := range outputPaths(formats, input, output) {
		data, ok := artifacts[format]
		if !ok {
			return nil, fmt.Errorf("missing %s artifact", format)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	sort.Strings(written)
	return written, nil
}
