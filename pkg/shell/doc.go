// Package shell generates pioneer's bash integration: the profile that
// collects every rc line and PATH contribution of a run, and the managed
// block in the user's startup file that sources it.
//
// The managed block is delimited by two marker lines:
//
//	# Config Start
//	test -f "<profile>" && source "<profile>"
//	# Config End
//
// Installing replaces at most one existing block with a fresh one, so the
// startup file holds exactly one block however many times pioneer runs.
// Uninstalling removes it. Text outside the block is never touched.
package shell
