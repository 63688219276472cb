package types

import "fmt"

// InstalledKind identifies what applying an install item produced.
type InstalledKind int

const (
	// PackageInstalled carries the package name.
	PackageInstalled InstalledKind = iota
	// RcLine carries shell code for the generated profile.
	RcLine
	// PathContribution carries a directory to prefix onto PATH.
	PathContribution
	// FileWritten carries the path of a written file.
	FileWritten
)

func (k InstalledKind) String() string {
	switch k {
	case PackageInstalled:
		return "package"
	case RcLine:
		return "rc"
	case PathContribution:
		return "path"
	case FileWritten:
		return "file"
	default:
		return fmt.Sprintf("InstalledKind(%d)", int(k))
	}
}

// Installed is the result of one successful apply. It lives only for the
// duration of a deploy run.
type Installed struct {
	Kind  InstalledKind
	Value string
}

func NewPackageInstalled(name string) Installed {
	return Installed{Kind: PackageInstalled, Value: name}
}

func NewRcLine(line string) Installed {
	return Installed{Kind: RcLine, Value: line}
}

func NewPathContribution(dir string) Installed {
	return Installed{Kind: PathContribution, Value: dir}
}

func NewFileWritten(path string) Installed {
	return Installed{Kind: FileWritten, Value: path}
}
