package pioneer

import (
	"fmt"

	"github.com/arthur-debert/pioneer/internal/version"
	"github.com/arthur-debert/pioneer/pkg/config"
	"github.com/arthur-debert/pioneer/pkg/deployer"
	"github.com/arthur-debert/pioneer/pkg/execution"
	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/logging"
	"github.com/arthur-debert/pioneer/pkg/packages"
	"github.com/arthur-debert/pioneer/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbosity  int
	settings   string
	deployRoot string
	shellRC    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "pioneer",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoSubcommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.settings, "settings", "", MsgFlagSettings)
	rootCmd.PersistentFlags().StringVar(&flags.deployRoot, "deploy-root", "", MsgFlagDeployRoot)
	rootCmd.PersistentFlags().StringVar(&flags.shellRC, "shell-rc", "", MsgFlagShellRC)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetCompletionCommandGroupID("misc")
	rootCmd.SetHelpCommandGroupID("misc")

	rootCmd.AddCommand(newInstallCmd(flags))
	rootCmd.AddCommand(newUninstallCmd(flags))
	rootCmd.AddCommand(newCheckCmd(flags))
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadSettings applies the flag overrides on top of the settings layers.
func (f *globalFlags) loadSettings() (*config.Settings, error) {
	overrides := map[string]interface{}{}
	if f.deployRoot != "" {
		overrides["deploy_root"] = f.deployRoot
	}
	if f.shellRC != "" {
		overrides["shell_rc"] = f.shellRC
	}

	path := f.settings
	if path == "" {
		path = config.SettingsPath()
	}
	s, err := config.LoadSettingsFrom(path, overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrSettings, err)
	}
	return s, nil
}

// deployerOptions wires the production collaborators described by s.
func deployerOptions(s *config.Settings) (deployer.Options, error) {
	p, err := paths.FromSettings(s)
	if err != nil {
		return deployer.Options{}, err
	}

	runner := execution.NewRunner(execution.Options{
		Escalator:  s.Escalator,
		DeniedCode: s.PermissionDeniedCode,
	})

	return deployer.Options{
		Paths:    p,
		FS:       filesystem.NewOS(),
		Packages: packages.NewManager(runner, s.PackageManager),
		Gate:     execution.NewShellGate(s.Shell),
	}, nil
}
