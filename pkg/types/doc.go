// Package types defines the configuration model shared by the pioneer
// packages: the Config document (Info and InstallList), content descriptors,
// the ordered maps backing the map-valued install sections, and the Installed
// results produced by applying install items.
package types
