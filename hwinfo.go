package hwinfo

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"
)

// Component names used as keys in DiagnosticInfo.
const (
	ComponentProcessor = "processor"
	ComponentMemory    = "memory"
	ComponentStorage   = "storage"
	ComponentGraphics  = "graphics"
	ComponentIdentity  = "identity"
)

// defaultTimeout is the default timeout for system command execution.
const defaultTimeout = 5 * time.Second

// DiagnosticInfo contains information about what was collected during the last run.
// Use [Provider.Diagnostics] to retrieve this information after calling [Provider.Collect].
type DiagnosticInfo struct {
	Errors    map[string]error // Component names that failed or degraded, with their errors
	Collected []string         // Component names that were collected cleanly
}

// CommandExecutor is an interface for executing system commands, allowing for dependency injection and testing.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

// Host answers the operating-system queries that are not backed by a command or a file.
type Host interface {
	TotalMemory(ctx context.Context) (uint64, error)
	RootDevice(ctx context.Context) (string, error)
	Hostname() (string, error)
	Platform() (Platform, error)
}

// Provider collects the hardware and operating-system inventory of the local machine.
// Provider methods are safe for concurrent use after configuration is complete.
// Concurrent Collect calls run one at a time so that each run owns its
// diagnostics.
type Provider struct {
	commandExecutor CommandExecutor
	fsys            fs.FS
	host            Host
	logger          *slog.Logger
	diagnostics     *DiagnosticInfo
	catalog         Catalog
	mu              sync.Mutex
	collectMu       sync.Mutex
}

// New creates a new Provider with default settings.
// The provider uses real system commands, the root filesystem, and the
// French catalog by default.
func New() *Provider {
	return &Provider{
		commandExecutor: &defaultCommandExecutor{
			Timeout: defaultTimeout,
		},
		fsys:    os.DirFS("/"),
		host:    systemHost{},
		catalog: French,
	}
}

// WithExecutor sets a custom [CommandExecutor], enabling deterministic testing
// without real system commands.
func (p *Provider) WithExecutor(executor CommandExecutor) *Provider {
	p.commandExecutor = executor

	return p
}

// WithTimeout sets the per-command timeout of the default executor.
// It has no effect once a custom executor is set.
func (p *Provider) WithTimeout(timeout time.Duration) *Provider {
	if e, ok := p.commandExecutor.(*defaultCommandExecutor); ok {
		e.Timeout = timeout
	}

	return p
}

// WithFS sets the filesystem firmware identity files are read from.
// Paths are relative to the filesystem root, e.g. "sys/class/dmi/id/product_name".
func (p *Provider) WithFS(fsys fs.FS) *Provider {
	p.fsys = fsys

	return p
}

// WithHost sets a custom [Host] for memory, partition, hostname, and uname queries.
func (p *Provider) WithHost(host Host) *Provider {
	p.host = host

	return p
}

// WithCatalog sets the labels and messages used in collected properties.
func (p *Provider) WithCatalog(catalog Catalog) *Provider {
	p.catalog = catalog

	return p
}

// WithLogger sets an optional [*slog.Logger] for observability.
// When set, the provider logs component collection, fallback paths, command
// execution timing, and errors. A nil logger (the default) disables all logging.
func (p *Provider) WithLogger(logger *slog.Logger) *Provider {
	p.logger = logger

	return p
}

// Catalog returns the catalog the provider labels its properties with.
func (p *Provider) Catalog() Catalog {
	return p.catalog
}

// Collect runs every collector in order (processor, memory, storage,
// graphics, identity) and merges their properties.
//
// Processor, storage, and graphics failures degrade into placeholder rows.
// Memory and identity failures abort the run with a [*ComponentError].
func (p *Provider) Collect(ctx context.Context) (Properties, error) {
	p.collectMu.Lock()
	defer p.collectMu.Unlock()

	p.mu.Lock()
	p.diagnostics = newDiagnostics()
	p.mu.Unlock()

	p.logInfo("collecting inventory",
		"platform", runtime.GOOS,
		"language", p.catalog.Language,
	)

	processor := p.Processor(ctx)

	memory, err := p.Memory(ctx)
	if err != nil {
		return nil, &ComponentError{Component: ComponentMemory, Err: err}
	}

	storage := p.Storage(ctx)
	graphics := p.Graphics(ctx)

	identity, err := p.Identity(ctx)
	if err != nil {
		return nil, &ComponentError{Component: ComponentIdentity, Err: err}
	}

	props := Merge(processor, memory, storage, graphics, identity)

	diag := p.Diagnostics()
	p.logInfo("inventory collected",
		"properties", len(props),
		"collected", diag.Collected,
		"errors_count", len(diag.Errors),
	)

	return props, nil
}

// Diagnostics returns information about which components were collected
// cleanly and which ones failed or degraded.
// Returns nil if no collector has run yet.
func (p *Provider) Diagnostics() *DiagnosticInfo {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.diagnostics
}

func newDiagnostics() *DiagnosticInfo {
	return &DiagnosticInfo{
		Errors: make(map[string]error),
	}
}

// recordSuccess marks component as collected.
func (p *Provider) recordSuccess(component string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.diagnostics == nil {
		p.diagnostics = newDiagnostics()
	}
	p.diagnostics.Collected = append(p.diagnostics.Collected, component)
	p.logInfo("component collected", "component", component)
}

// recordFailure stores err for component as a [*ComponentError].
func (p *Provider) recordFailure(component string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.diagnostics == nil {
		p.diagnostics = newDiagnostics()
	}
	p.diagnostics.Errors[component] = &ComponentError{Component: component, Err: err}
	p.logWarn("component failed", "component", component, "error", err)
}

// logDebug logs at debug level if a logger is configured.
func (p *Provider) logDebug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

// logInfo logs at info level if a logger is configured.
func (p *Provider) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

// logWarn logs at warn level if a logger is configured.
func (p *Provider) logWarn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
