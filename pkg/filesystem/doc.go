// Package filesystem provides the file primitives install items are built on:
// existence predicates, idempotent directory creation, permission-aware
// writes and permission-preserving copies.
//
// Every primitive goes through an afero.Fs, the OS filesystem in production
// and an in-memory one in tests.
package filesystem
