package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/pioneer/pkg/errors"
)

// MockPackages is a package manager that knows a fixed set of names.
type MockPackages struct {
	mu sync.Mutex

	// Known lists the names Check accepts.
	Known map[string]bool
	// Failing lists the names Install rejects.
	Failing map[string]bool

	Checked   []string
	Installed []string
}

// NewMockPackages returns a MockPackages knowing names.
func NewMockPackages(names ...string) *MockPackages {
	m := &MockPackages{Known: map[string]bool{}, Failing: map[string]bool{}}
	for _, n := range names {
		m.Known[n] = true
	}
	return m
}

// Check records name and fails with NOT_FOUND for unknown names.
func (m *MockPackages) Check(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Checked = append(m.Checked, name)
	if !m.Known[name] {
		return errors.Newf(errors.ErrNotFound, "cannot find package %s", name).
			WithDetail("package", name)
	}
	return nil
}

// Install records name unless it is listed in Failing.
func (m *MockPackages) Install(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Failing[name] {
		return errors.Newf(errors.ErrExternalTool, "failed to install %s", name).
			WithDetail("package", name)
	}
	m.Installed = append(m.Installed, name)
	return nil
}

// MockGate holds exactly the predicates listed as true.
type MockGate map[string]bool

func (g MockGate) Allows(_ context.Context, predicate string) bool {
	return g[predicate]
}
