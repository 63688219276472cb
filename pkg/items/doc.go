// Package items implements the six kinds of install item a configuration
// expands into: package, alias, env, rc snippet, command and file.
//
// Every item follows the same contract. Validate performs read-only checks
// and names the offending identifier or path when it fails; it neither
// mutates the filesystem nor depends on another item having been applied.
// Apply performs the one effectful action and returns exactly one
// types.Installed. Apply is only called after Validate succeeded and does not
// validate again.
package items
