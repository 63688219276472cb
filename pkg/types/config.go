package types

// Config is one parsed configuration document.
type Config struct {
	Info    Info
	Install InstallList
}

// Info holds the identifying metadata of a configuration.
type Info struct {
	// Name identifies the configuration and names its install directory
	// under the deploy root.
	Name string `validate:"required,excludesall=/,ne=.,ne=.."`

	Description string

	// InstallWhile is a shell predicate gating the whole configuration.
	// Empty means the configuration is always deployed.
	InstallWhile string
}

// InstallList holds the six install categories of a configuration. Every
// category is optional; an absent one is empty.
type InstallList struct {
	Apt     []string
	Alias   OrderedMap[string]
	Command OrderedMap[ContentOrString]
	Env     OrderedMap[string]
	Envrc   []Content
	Files   OrderedMap[ContentOrString]
}

// IsEmpty reports whether the list declares nothing to install.
func (l InstallList) IsEmpty() bool {
	return len(l.Apt) == 0 &&
		l.Alias.Len() == 0 &&
		l.Command.Len() == 0 &&
		l.Env.Len() == 0 &&
		len(l.Envrc) == 0 &&
		l.Files.Len() == 0
}
