package hwinfo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Firmware identity files, relative to the filesystem root.
const (
	dmiProductName = "sys/class/dmi/id/product_name"
	dmiSysVendor   = "sys/class/dmi/id/sys_vendor"
	dmiBoardVendor = "sys/class/dmi/id/board_vendor"
)

// Identity reports the machine vendor and model, the host name, and the
// operating system name, version, and word size. Only missing firmware files
// are recovered from; every other failure is returned.
func (p *Provider) Identity(ctx context.Context) (Properties, error) {
	props, err := p.identity()
	if err != nil {
		p.recordFailure(ComponentIdentity, err)

		return nil, err
	}

	p.recordSuccess(ComponentIdentity)

	return props, nil
}

func (p *Provider) identity() (Properties, error) {
	name, err := p.machineName()
	if err != nil {
		return nil, err
	}

	hostname, err := p.host.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	platform, err := p.host.Platform()
	if err != nil {
		return nil, fmt.Errorf("platform: %w", err)
	}

	return Properties{
		{Label: p.catalog.PCName, Value: name},
		{Label: p.catalog.Hostname, Value: hostname},
		{Label: p.catalog.OSName, Value: platform.System},
		{Label: p.catalog.OSVersion, Value: platform.Version},
		{Label: p.catalog.OSArchitecture, Value: platform.Architecture},
	}, nil
}

// machineName returns "<vendor> <model>" from the DMI files.
func (p *Provider) machineName() (string, error) {
	model, found, err := p.readFirmware(dmiProductName)
	if err != nil {
		return "", err
	}
	if !found {
		p.logDebug("product name not available", "path", dmiProductName)
		model = p.catalog.UnknownModel
	}

	vendor, found, err := p.readFirmware(dmiSysVendor)
	if err != nil {
		return "", err
	}
	if !found || vendor == "" {
		p.logDebug("falling back to board vendor", "path", dmiBoardVendor)

		vendor, found, err = p.readFirmware(dmiBoardVendor)
		if err != nil {
			return "", err
		}
		if !found {
			vendor = p.catalog.UnknownVendor
		}
	}

	return vendor + " " + model, nil
}

// readFirmware returns the trimmed content of a firmware file. A missing
// file is reported through found, not err.
func (p *Provider) readFirmware(name string) (string, bool, error) {
	data, err := fs.ReadFile(p.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", name, err)
	}

	return strings.TrimSpace(string(data)), true, nil
}
