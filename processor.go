package hwinfo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// lscpuField maps an lscpu line prefix to the catalog label it is reported under.
type lscpuField struct {
	prefix string
	label  func(Catalog) string
}

var lscpuFields = []lscpuField{
	{"Architecture", func(c Catalog) string { return c.Architecture }},
	{"CPU op-mode(s)", func(c Catalog) string { return c.OpModes }},
	{"Model name", func(c Catalog) string { return c.ModelName }},
	{"Core(s) per socket", func(c Catalog) string { return c.CoresPerSocket }},
	{"Thread(s) per core", func(c Catalog) string { return c.ThreadsPerCore }},
	{"Socket(s)", func(c Catalog) string { return c.Sockets }},
	{"Max MHz", func(c Catalog) string { return c.MaxMHz }},
	{"CPU max MHz", func(c Catalog) string { return c.MaxMHz }},
}

// Processor describes the CPU from lscpu output. When lscpu cannot be run a
// single error row is returned instead.
func (p *Provider) Processor(ctx context.Context) Properties {
	output, err := executeCommand(ctx, p.commandExecutor, p.logger, "lscpu")
	if err != nil {
		p.recordFailure(ComponentProcessor, err)

		return Properties{{Label: p.catalog.ModelName, Value: p.catalog.ProcessorError}}
	}

	props, err := parseLscpu(output, p.catalog)
	if err != nil {
		p.logDebug("derived processor field skipped", "error", err)
		p.recordFailure(ComponentProcessor, err)

		return props
	}

	p.recordSuccess(ComponentProcessor)

	return props
}

// parseLscpu extracts the known fields from lscpu output and derives the
// thread count and the frequency in GHz. The returned error reports derived
// fields that were skipped; the properties are valid either way.
func parseLscpu(output string, c Catalog) (Properties, error) {
	var props Properties

	for line := range strings.SplitSeq(output, "\n") {
		line = strings.TrimSpace(line)
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		for _, field := range lscpuFields {
			if strings.HasPrefix(line, field.prefix) {
				props.Set(field.label(c), strings.TrimSpace(parts[1]))
				break
			}
		}
	}

	var errs []error

	cores, hasCores := props.Get(c.CoresPerSocket)
	threads, hasThreads := props.Get(c.ThreadsPerCore)
	if hasCores && hasThreads {
		total, err := multiplyCounts(cores, threads)
		if err != nil {
			errs = append(errs, err)
		} else {
			props.Set(c.Threads, strconv.Itoa(total))
		}
	}

	if mhz, ok := props.Get(c.MaxMHz); ok {
		ghz, err := megahertzToGigahertz(mhz)
		if err != nil {
			errs = append(errs, err)
		} else {
			props.Set(c.MaxGHz, ghz)
		}
	}

	if len(errs) > 0 {
		return props, &ParseError{Source: "lscpu output", Err: errors.Join(errs...)}
	}

	return props, nil
}

// multiplyCounts returns cores × threads.
func multiplyCounts(cores, threads string) (int, error) {
	n, err := strconv.Atoi(cores)
	if err != nil {
		return 0, fmt.Errorf("cores per socket %q: %w", cores, err)
	}

	m, err := strconv.Atoi(threads)
	if err != nil {
		return 0, fmt.Errorf("threads per core %q: %w", threads, err)
	}

	return n * m, nil
}

// megahertzToGigahertz formats mhz/1000 with two decimals.
func megahertzToGigahertz(mhz string) (string, error) {
	v, err := strconv.ParseFloat(mhz, 64)
	if err != nil {
		return "", fmt.Errorf("max MHz %q: %w", mhz, err)
	}

	return fmt.Sprintf("%.2f", v/1000), nil
}
