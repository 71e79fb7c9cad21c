package hwinfo

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// borders lists the supported table border styles by name.
var borders = map[string]lipgloss.Border{
	"ascii":    lipgloss.ASCIIBorder(),
	"normal":   lipgloss.NormalBorder(),
	"rounded":  lipgloss.RoundedBorder(),
	"markdown": lipgloss.MarkdownBorder(),
}

// DefaultBorder is the border style used when none is configured.
const DefaultBorder = "ascii"

// ParseBorder returns the border style registered under name.
func ParseBorder(name string) (lipgloss.Border, error) {
	border, ok := borders[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return lipgloss.Border{}, fmt.Errorf("%w: %q", ErrUnknownBorder, name)
	}

	return border, nil
}

// TableOptions controls how [RenderTable] draws the inventory.
type TableOptions struct {
	Headers [2]string
	Border  lipgloss.Border
}

// TableOptionsFor returns table options with the catalog headers and the given border.
func TableOptionsFor(c Catalog, border lipgloss.Border) TableOptions {
	return TableOptions{
		Headers: [2]string{c.PropertyHeader, c.ValueHeader},
		Border:  border,
	}
}

// RenderTable writes props to w as a bordered two-column table, one row per
// property, in order.
func RenderTable(w io.Writer, props Properties, opts TableOptions) error {
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(opts.Border).
		Headers(opts.Headers[0], opts.Headers[1]).
		Rows(props.Rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cell
		})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}
