package pioneer

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Install a user environment from configuration files"
	MsgInstallShort   = "Install one or more configurations"
	MsgUninstallShort = "Remove everything pioneer installed"
	MsgCheckShort     = "Validate configuration files"
	MsgFmtShort       = "Print a configuration in canonical form"
	MsgVersionShort   = "Print version information"
	MsgSchemaShort    = "Print the JSON Schema of configuration files"

	// Status messages
	MsgUninstalled   = "Removed %s and the managed block in %s\n"
	MsgCheckSummary  = "\n%d configurations checked, %d failed\n"
	MsgVersionFormat = "pioneer version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrSettings     = "failed to load settings: %w"
	MsgErrNoConfigs    = "no configuration files given and no *.toml file in %s"
	MsgErrCheckFailed  = "%d of %d configurations failed"
	MsgErrNoSubcommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSettings   = "Settings file (default $XDG_CONFIG_HOME/pioneer/settings.toml)"
	MsgFlagDeployRoot = "Directory receiving installed files and the profile"
	MsgFlagShellRC    = "Shell startup file patched to source the profile"
	MsgFlagPlan       = "Evaluate predicates and list the items that would be installed"
	MsgFlagFormat     = "Output format: toml or yaml (default from the file extension)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/uninstall-long.txt
	msgUninstallLongRaw string
	MsgUninstallLong    = strings.TrimSpace(msgUninstallLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/fmt-long.txt
	msgFmtLongRaw string
	MsgFmtLong    = strings.TrimSpace(msgFmtLongRaw)

	//go:embed msgs/schema-long.txt
	msgSchemaLongRaw string
	MsgSchemaLong    = strings.TrimSpace(msgSchemaLongRaw)
)
