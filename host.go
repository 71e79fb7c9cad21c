package hwinfo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// Platform describes the running operating system.
type Platform struct {
	System       string // kernel name, e.g. "Linux"
	Version      string // kernel build version, e.g. "#1 SMP PREEMPT_DYNAMIC ..."
	Architecture string // word size, e.g. "64bit"
}

// systemHost implements Host with gopsutil and the OS.
type systemHost struct{}

// TotalMemory returns the total physical memory in bytes.
func (systemHost) TotalMemory(ctx context.Context) (uint64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("virtual memory: %w", err)
	}

	return vm.Total, nil
}

// RootDevice returns the base name of the device mounted at "/", falling
// back to the first physical partition reported by the OS.
func (systemHost) RootDevice(ctx context.Context) (string, error) {
	partitions, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return "", fmt.Errorf("disk partitions: %w", err)
	}

	devices := make([]rootCandidate, 0, len(partitions))
	for _, p := range partitions {
		devices = append(devices, rootCandidate{device: p.Device, mountpoint: p.Mountpoint})
	}

	return pickRootDevice(devices)
}

// Hostname returns the kernel host name.
func (systemHost) Hostname() (string, error) {
	return os.Hostname()
}

// Platform returns the kernel name, version, and word size.
func (systemHost) Platform() (Platform, error) {
	return unamePlatform()
}

type rootCandidate struct {
	device     string
	mountpoint string
}

// pickRootDevice prefers the partition mounted at "/" and otherwise takes the first one.
func pickRootDevice(candidates []rootCandidate) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("root partition: %w", ErrNotFound)
	}

	device := candidates[0].device
	for _, c := range candidates {
		if c.mountpoint == "/" {
			device = c.device
			break
		}
	}

	name := filepath.Base(device)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("root partition %q: %w", device, ErrEmptyValue)
	}

	return name, nil
}
