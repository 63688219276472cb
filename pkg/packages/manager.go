// Package packages is the package-manager context of a deploy run.
//
// A Manager is built once per run and shared by every package item. The set
// of installable package names is fetched on first use, by running the
// package manager's "update" then "list" subcommands through the escalating
// runner, and kept for the life of the Manager.
package packages

import (
	"bufio"
	"context"
	"strings"
	"sync"

	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/execution"
	"github.com/arthur-debert/pioneer/pkg/logging"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// DefaultBinary is the package manager used when none is configured.
const DefaultBinary = "apt"

// nonInteractive keeps the package manager from prompting.
const nonInteractive = "DEBIAN_FRONTEND=noninteractive"

// Manager wraps one package manager binary.
type Manager struct {
	binary string
	runner execution.Runner
	logger zerolog.Logger

	group singleflight.Group
	mu    sync.Mutex
	index map[string]struct{}
}

// NewManager creates a manager running binary through runner. The binary is
// resolved by the runner when first invoked.
func NewManager(runner execution.Runner, binary string) *Manager {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Manager{
		binary: binary,
		runner: runner,
		logger: logging.GetLogger("packages"),
	}
}

// Binary returns the package manager program.
func (m *Manager) Binary() string {
	return m.binary
}

// Index returns the set of known package names, building it on first use.
// Concurrent first callers share a single build.
func (m *Manager) Index(ctx context.Context) (map[string]struct{}, error) {
	m.mu.Lock()
	index := m.index
	m.mu.Unlock()
	if index != nil {
		return index, nil
	}

	v, err, _ := m.group.Do("index", func() (interface{}, error) {
		m.mu.Lock()
		cached := m.index
		m.mu.Unlock()
		if cached != nil {
			return cached, nil
		}

		built, err := m.buildIndex(ctx)
		if err != nil {
			return nil, err
		}

		m.mu.Lock()
		m.index = built
		m.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]struct{}), nil
}

func (m *Manager) buildIndex(ctx context.Context) (map[string]struct{}, error) {
	done := logging.LogOperationStart(m.logger, "package index build")
	defer done()

	if _, err := m.runner.Run(ctx, execution.Command{Path: m.binary, Args: []string{"update"}}); err != nil {
		return nil, errors.Wrapf(err, errors.ErrExternalTool, "failed to update the %s package list", m.binary)
	}

	out, err := m.runner.Run(ctx, execution.Command{Path: m.binary, Args: []string{"list"}})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrExternalTool, "failed to list %s packages", m.binary)
	}

	index := ParseList(out.Stdout)
	m.logger.Info().Int("packages", len(index)).Msg("Package index built")
	return index, nil
}

// ParseList extracts package names from "list" output: the text before the
// first "/" of every line. Lines without a "/" are headers and are skipped.
func ParseList(output string) map[string]struct{} {
	index := make(map[string]struct{})
	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		name, _, found := strings.Cut(scanner.Text(), "/")
		if !found {
			continue
		}
		index[name] = struct{}{}
	}
	return index
}

// Check fails unless name is in the package index.
func (m *Manager) Check(ctx context.Context, name string) error {
	m.logger.Debug().Str("package", name).Msg("Checking package")

	index, err := m.Index(ctx)
	if err != nil {
		return err
	}
	if _, ok := index[name]; !ok {
		return errors.Newf(errors.ErrNotFound, "cannot find package %s", name).
			WithDetail("package", name)
	}
	return nil
}

// Install runs "<binary> install -y <name>" non-interactively.
func (m *Manager) Install(ctx context.Context, name string) error {
	m.logger.Info().Str("package", name).Msg("Installing package")

	_, err := m.runner.Run(ctx, execution.Command{
		Path: m.binary,
		Args: []string{"install", "-y", name},
		Env:  []string{nonInteractive},
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrExternalTool, "failed to install package %s", name).
			WithDetail("package", name)
	}
	return nil
}
