// Package hwinfo collects the hardware and operating-system inventory of a
// Linux machine and renders it as a two-column table.
//
// # Overview
//
// A [Provider] runs five collectors in a fixed order:
//
//   - [Provider.Processor]: lscpu fields plus derived thread count and GHz
//   - [Provider.Memory]: total physical memory in gigabytes
//   - [Provider.Storage]: lsblk devices outside the root filesystem, SSD or HDD
//   - [Provider.Graphics]: VGA and 3D controllers from lspci
//   - [Provider.Identity]: DMI vendor and model, hostname, kernel name and version
//
// [Provider.Collect] merges their [Properties] with [Merge]: a label keeps
// the row of its first occurrence and the value of its last one.
//
// # Quick Start
//
//	props, err := hwinfo.New().Collect(ctx)
//	if err != nil {
//		return err
//	}
//
//	opts := hwinfo.TableOptionsFor(hwinfo.French, lipgloss.ASCIIBorder())
//	return hwinfo.RenderTable(os.Stdout, props, opts)
//
// # Failures
//
// Command based collectors never fail: when lscpu, lsblk, or lspci cannot be
// run, the collector returns a placeholder row from the [Catalog] and records
// a [*ComponentError] in [Provider.Diagnostics]. Missing DMI files fall back
// to placeholder vendor and model names. Memory, hostname, and uname query
// failures abort [Provider.Collect].
//
// # Languages
//
// Labels and messages come from a [Catalog]. [French] is the default;
// [English] is selected with [Provider.WithCatalog] or [CatalogFor].
// French headers are "Propriété" and "Valeur"; [English] gives "Property"
// and "Value".
//
// # Testing
//
// Every system query is injectable:
//
//	provider := hwinfo.New().
//		WithExecutor(myMock).
//		WithFS(fstest.MapFS{...}).
//		WithHost(myHost)
//
// # CLI Tool
//
// A command-line tool is provided in cmd/hwinfo:
//
//	hwinfo
//	hwinfo -lang en -border rounded
//	hwinfo -diagnostics -log-level debug
//	hwinfo -version.long
package hwinfo
