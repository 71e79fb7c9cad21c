package hwinfo

import (
	"context"
	"fmt"
	"strings"
)

// lsblkColumns are the columns requested from lsblk, in output order.
const lsblkColumns = "NAME,SIZE,TYPE,MOUNTPOINT,ROTA"

// Storage lists the block devices that do not belong to the root filesystem.
// When lsblk cannot be run a single error row is returned instead.
func (p *Provider) Storage(ctx context.Context) Properties {
	output, err := executeCommand(ctx, p.commandExecutor, p.logger, "lsblk", "-o", lsblkColumns)
	if err != nil {
		p.recordFailure(ComponentStorage, err)

		return Properties{{Label: p.catalog.StorageFailed, Value: p.catalog.StorageError}}
	}

	root, rootErr := p.host.RootDevice(ctx)
	if rootErr != nil {
		p.logWarn("root device unknown, no device excluded", "error", rootErr)
	}

	devices := parseLsblk(output, root)

	value := p.catalog.StorageNone
	if len(devices) > 0 {
		value = strings.Join(devices, "\n")
	}

	if rootErr != nil {
		p.recordFailure(ComponentStorage, fmt.Errorf("root device: %w", rootErr))
	} else {
		p.recordSuccess(ComponentStorage)
	}

	return Properties{{Label: p.catalog.StorageNonSystem, Value: value}}
}

// parseLsblk returns one "name: size (SSD|HDD)" line per device whose name
// does not contain root. The header line and lines with fewer than five
// fields are skipped. An empty root excludes nothing.
func parseLsblk(output, root string) []string {
	lines := strings.Split(output, "\n")
	if len(lines) < 2 {
		return nil
	}

	var devices []string
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}

		name, size, rota := fields[0], fields[1], fields[4]
		if root != "" && strings.Contains(name, root) {
			continue
		}

		devices = append(devices, fmt.Sprintf("%s: %s (%s)", name, size, mediaType(rota)))
	}

	return devices
}

// mediaType maps the lsblk rotational flag to SSD or HDD.
func mediaType(rota string) string {
	if rota == "0" {
		return "SSD"
	}

	return "HDD"
}
