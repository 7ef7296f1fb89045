package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartbridge/pkg/errors"
	"github.com/matzehuels/chartbridge/pkg/palette"
	"github.com/matzehuels/chartbridge/pkg/render/sink"
)

const (
	defaultPaletteCount = 8
	defaultSwatchSize   = 48
)

// paletteCommand creates the palette command group.
func (c *CLI) paletteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Inspect the built-in color palettes",
	}

	cmd.AddCommand(c.paletteListCommand())
	cmd.AddCommand(c.paletteShowCommand())
	cmd.AddCommand(c.paletteSwatchCommand())
	cmd.AddCommand(c.paletteBrowseCommand())

	return cmd
}

func (c *CLI) paletteListCommand() *cobra.Command {
	var dark bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every palette with a preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), paletteTable(palette.NewGenerator(c.Logger), dark, -1))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dark, "dark", false, "preview dark-mode colors")
	return cmd
}

func (c *CLI) paletteShowCommand() *cobra.Command {
	var (
		count  int
		dark   bool
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:       "show <name>",
		Short:     "Print the colors generated by a palette",
		Args:      cobra.ExactArgs(1),
		ValidArgs: paletteNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := generate(c, args[0], count, dark)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(colors)
			}
			p, _ := palette.Lookup(palette.Name(args[0]))
			fmt.Fprintln(out, StyleTitle.Render(string(p.Name))+" "+StyleDim.Render(p.Description))
			for _, col := range colors {
				fmt.Fprintln(out, swatch([]string{col})+" "+StyleValue.Render(col))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", defaultPaletteCount, "number of colors")
	cmd.Flags().BoolVar(&dark, "dark", false, "adjust colors for dark backgrounds")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON array")
	return cmd
}

func (c *CLI) paletteSwatchCommand() *cobra.Command {
	var (
		count  int
		size   int
		dark   bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "swatch <name>",
		Short: "Write a palette as a PNG strip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := generate(c, args[0], count, dark)
			if err != nil {
				return err
			}
			data, err := sink.RenderSwatch(colors, size)
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0] + ".png"
			}
			if err := errors.ValidatePath(output); err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess(cmd.OutOrStdout(), "Wrote %d colors", len(colors))
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", defaultPaletteCount, "number of colors")
	cmd.Flags().IntVar(&size, "size", defaultSwatchSize, "square size in pixels")
	cmd.Flags().BoolVar(&dark, "dark", false, "adjust colors for dark backgrounds")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <name>.png)")
	return cmd
}

func (c *CLI) paletteBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse palettes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newPaletteModel(palette.NewGenerator(c.Logger))
			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if pm, ok := final.(paletteModel); ok && pm.chosen != "" {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pm.colors(), " "))
			}
			return nil
		},
	}
}

func generate(c *CLI, name string, count int, dark bool) ([]string, error) {
	if err := errors.ValidatePalette(name); err != nil {
		return nil, err
	}
	if err := errors.ValidateCount(count); err != nil {
		return nil, err
	}
	return palette.NewGenerator(c.Logger).Generate(palette.Name(name), count, dark), nil
}

func paletteNames() []string {
	names := palette.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

// paletteTable renders every palette as a table row. Row cursor is
// highlighted; pass -1 for none.
func paletteTable(g *palette.Generator, dark bool, cursor int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	all := palette.All()

	rows := make([][]string, len(all))
	for i, p := range all {
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows[i] = []string{
			marker + string(p.Name),
			fmt.Sprintf("%.0f–%.0f°", p.HueRange[0], p.HueRange[1]),
			fmt.Sprintf("%.0f / %.0f", p.Saturation, p.Lightness),
			swatch(g.Generate(p.Name, 6, dark)),
			p.Description,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Palette", "Hues", "S / L", "Preview", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == cursor:
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			case col == 4:
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
