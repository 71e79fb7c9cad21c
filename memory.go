package hwinfo

import (
	"context"
	"fmt"
)

const bytesPerGiB = 1024 * 1024 * 1024

// Memory reports the total physical memory in gigabytes.
// A failed OS query is returned as is; there is no placeholder row.
func (p *Provider) Memory(ctx context.Context) (Properties, error) {
	total, err := p.host.TotalMemory(ctx)
	if err != nil {
		p.recordFailure(ComponentMemory, err)

		return nil, fmt.Errorf("total memory: %w", err)
	}

	p.recordSuccess(ComponentMemory)

	return Properties{{Label: p.catalog.MemoryTotal, Value: formatGigabytes(total)}}, nil
}

func formatGigabytes(bytes uint64) string {
	return fmt.Sprintf("%.2f", float64(bytes)/bytesPerGiB)
}
