// Package deployer runs a pioneer deployment.
//
// New loads every configuration file up front; a file that cannot be read,
// parsed or validated aborts before anything else happens. Deploy then:
//
//  1. gates each config on its install_while predicate, skipping configs
//     whose predicate does not hold
//  2. expands the remaining configs into one ordered list of install items
//  3. validates every item, stopping at the first failure before anything
//     is changed
//  4. applies every item in the same order, stopping at the first failure
//     and leaving what was already applied in place
//  5. writes the generated profile and patches the shell startup file
//
// Uninstall removes the deploy root and the managed block.
package deployer
