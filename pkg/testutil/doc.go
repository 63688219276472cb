// Package testutil provides utilities for testing pioneer components.
//
// Key components:
//   - TestEnvironment: an isolated home with a deploy layout, configs
//     directory and mock collaborators
//   - MockPackages: records package checks and installs
//   - MockGate: answers install_while predicates from a table
//
// Configuration documents are read from disk, so environments live under
// t.TempDir rather than in memory.
package testutil
