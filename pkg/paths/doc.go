// Package paths provides the path layout pioneer deploys into.
//
// Everything pioneer writes lives under one deploy root (default ~/.distro):
//
//   - <deploy-root>/<name>/ is the install directory of the config named <name>
//   - <deploy-root>/<name>/bin/ holds its commands
//   - <deploy-root>/<profile> is the generated shell profile (default allrc)
//
// The only file outside the deploy root is the shell startup file (default
// ~/.bashrc), which receives a managed block sourcing the profile.
//
// Paths given with a leading ~ are expanded against the user's home
// directory and made absolute when a Paths value is built.
package paths
