package hwinfo

import (
	"context"
	"strings"
)

// Graphics lists the display adapters reported by lspci.
func (p *Provider) Graphics(ctx context.Context) Properties {
	var adapters []string

	output, err := executeCommand(ctx, p.commandExecutor, p.logger, "lspci")
	if err != nil {
		p.recordFailure(ComponentGraphics, err)
		adapters = append(adapters, p.catalog.GraphicsError)
	} else {
		adapters = parseLspci(output)
		p.recordSuccess(ComponentGraphics)
	}

	value := p.catalog.GraphicsNone
	if len(adapters) > 0 {
		value = strings.Join(adapters, "\n")
	}

	return Properties{{Label: p.catalog.Graphics, Value: value}}
}

// parseLspci keeps the VGA and 3D controller lines.
func parseLspci(output string) []string {
	var adapters []string
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, "VGA") || strings.Contains(line, "3D") {
			adapters = append(adapters, strings.TrimSpace(line))
		}
	}

	return adapters
}
