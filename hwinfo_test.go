package hwinfo

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) (*Provider, *mockExecutor, *fakeHost) {
	t.Helper()

	mock := newMockExecutor()
	mock.setOutput("lscpu", lscpuOutput)
	mock.setOutput("lsblk", lsblkOutput)
	mock.setOutput("lspci", lspciOutput)

	host := newFakeHost()
	files := fstest.MapFS{
		dmiProductName: {Data: []byte("ThinkPad X1 Carbon Gen 9\n")},
		dmiSysVendor:   {Data: []byte("LENOVO\n")},
	}

	p := New().WithExecutor(mock).WithHost(host).WithFS(files)

	return p, mock, host
}

func TestCollect(t *testing.T) {
	p, mock, _ := newTestProvider(t)

	props, err := p.Collect(context.Background())
	require.NoError(t, err)

	labels := make([]string, 0, len(props))
	for _, prop := range props {
		labels = append(labels, prop.Label)
	}

	wantLabels := []string{
		"Architecture",
		"Mode(s) d'opération du CPU",
		"Famille de processeur",
		"Threads par cœur",
		"Nombre de cœurs physiques",
		"Nombre de sockets",
		"Fréquence Turbo maxi (MHz)",
		"Nombre de threads",
		"Fréquence Turbo maxi (GHz)",
		"Mémoire totale (Go)",
		"Stockage (non système)",
		"Cartes graphiques",
		"Nom du PC",
		"Nom de la machine (hostname)",
		"Système d'exploitation",
		"Version de l'OS",
	}
	assert.Equal(t, wantLabels, labels)

	// Identity's Architecture overwrites the processor's, in the processor's row.
	arch, _ := props.Get("Architecture")
	assert.Equal(t, "64bit", arch)

	mem, _ := props.Get("Mémoire totale (Go)")
	assert.Equal(t, "8.00", mem)

	assert.Equal(t, 1, mock.callCount["lscpu"])
	assert.Equal(t, 1, mock.callCount["lsblk"])
	assert.Equal(t, 1, mock.callCount["lspci"])

	diag := p.Diagnostics()
	require.NotNil(t, diag)
	assert.Equal(t, []string{
		ComponentProcessor, ComponentMemory, ComponentStorage, ComponentGraphics, ComponentIdentity,
	}, diag.Collected)
	assert.Empty(t, diag.Errors)
}

func TestCollectDegradesCommandFailures(t *testing.T) {
	p, mock, _ := newTestProvider(t)
	p.WithCatalog(English)
	mock.setError("lscpu", errors.New("not found"))
	mock.setError("lsblk", errors.New("not found"))
	mock.setError("lspci", errors.New("not found"))

	props, err := p.Collect(context.Background())
	require.NoError(t, err)

	want := Properties{
		{Label: "Processor family", Value: "Error retrieving processor information"},
		{Label: "Total memory (GB)", Value: "8.00"},
		{Label: "Storage", Value: "Error retrieving storage information."},
		{Label: "Graphics cards", Value: "Error retrieving graphics information."},
		{Label: "PC name", Value: "LENOVO ThinkPad X1 Carbon Gen 9"},
		{Label: "Machine name (hostname)", Value: "workstation"},
		{Label: "Operating system", Value: "Linux"},
		{Label: "OS version", Value: "#1 SMP PREEMPT_DYNAMIC Debian 6.1.0"},
		{Label: "Architecture", Value: "64bit"},
	}
	assert.Equal(t, want, props)

	diag := p.Diagnostics()
	assert.Len(t, diag.Errors, 3)
	assert.Equal(t, []string{ComponentMemory, ComponentIdentity}, diag.Collected)
}

func TestCollectAbortsOnUnguardedFailures(t *testing.T) {
	queryErr := errors.New("query failed")

	tests := []struct {
		name      string
		setup     func(*fakeHost)
		component string
		skipped   string
	}{
		{"memory", func(h *fakeHost) { h.memoryErr = queryErr }, ComponentMemory, "lsblk"},
		{"hostname", func(h *fakeHost) { h.hostnameErr = queryErr }, ComponentIdentity, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, mock, host := newTestProvider(t)
			tt.setup(host)

			props, err := p.Collect(context.Background())
			require.Error(t, err)
			assert.Nil(t, props)
			assert.ErrorIs(t, err, queryErr)

			var compErr *ComponentError
			require.True(t, errors.As(err, &compErr))
			assert.Equal(t, tt.component, compErr.Component)

			if tt.skipped != "" {
				assert.Zero(t, mock.callCount[tt.skipped], "%s should not run after an aborted run", tt.skipped)
			}
		})
	}
}

func TestCollectResetsDiagnostics(t *testing.T) {
	p, mock, _ := newTestProvider(t)
	mock.setError("lspci", errors.New("not found"))

	_, err := p.Collect(context.Background())
	require.NoError(t, err)
	require.Contains(t, p.Diagnostics().Errors, ComponentGraphics)

	delete(mock.errors, "lspci")

	_, err = p.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, p.Diagnostics().Errors)
	assert.Len(t, p.Diagnostics().Collected, 5)
}

func TestDiagnosticsBeforeCollect(t *testing.T) {
	assert.Nil(t, New().Diagnostics())
}

func TestWithTimeout(t *testing.T) {
	p := New().WithTimeout(2 * time.Second)

	e, ok := p.commandExecutor.(*defaultCommandExecutor)
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, e.Timeout)

	mock := newMockExecutor()
	p.WithExecutor(mock).WithTimeout(time.Second)
	assert.Same(t, mock, p.commandExecutor)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p, mock, _ := newTestProvider(t)
	p.WithLogger(logger)
	mock.setError("lspci", errors.New("not found"))

	_, err := p.Collect(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "collecting inventory")
	assert.Contains(t, out, "command executed")
	assert.Contains(t, out, "component failed")
	assert.Contains(t, out, "component=graphics")
	assert.Contains(t, out, "inventory collected")
}

// staticExecutor answers from a fixed map and is safe for concurrent use.
type staticExecutor map[string]string

func (s staticExecutor) Execute(_ context.Context, name string, _ ...string) (string, error) {
	if out, ok := s[name]; ok {
		return out, nil
	}

	return "", &CommandError{Command: name, Err: errors.New("not configured")}
}

func TestCollectConcurrentRunsKeepDiagnosticsComplete(t *testing.T) {
	p, _, _ := newTestProvider(t)
	p.WithExecutor(staticExecutor{
		"lscpu": lscpuOutput,
		"lsblk": lsblkOutput,
		"lspci": lspciOutput,
	})

	const runs = 8
	var wg sync.WaitGroup
	errs := make(chan error, runs)
	for range runs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Collect(context.Background())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	diag := p.Diagnostics()
	assert.Equal(t, []string{ComponentProcessor, ComponentMemory, ComponentStorage, ComponentGraphics, ComponentIdentity}, diag.Collected)
	assert.Empty(t, diag.Errors)
}
