// Package execution runs external programs for pioneer.
//
// A Runner captures a program's output and applies the one automatic retry
// pioneer has: when the program exits with the permission-denied code
// (apt uses 100) it is run once more under the escalator, as
// "<escalator> -- <program> <args...>" with the same declared environment.
// Any other non-zero exit is an ErrExternalTool error carrying both streams.
//
// ShellGate evaluates install_while predicates; it never escalates.
package execution
