package pioneer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/pioneer/internal/version"
	"github.com/arthur-debert/pioneer/pkg/config"
	"github.com/arthur-debert/pioneer/pkg/deployer"
	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/paths"
	"github.com/arthur-debert/pioneer/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInstallCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "install CONFIG...",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.loadSettings()
			if err != nil {
				return err
			}
			opts, err := deployerOptions(s)
			if err != nil {
				return err
			}

			log.Info().
				Strs("configs", args).
				Str("deploy_root", opts.Paths.DeployRoot()).
				Msg("Installing configurations")

			d, err := deployer.New(args, opts)
			if err != nil {
				return err
			}
			result, err := d.Deploy(cmd.Context())
			if err != nil {
				return err
			}

			renderer := style.NewRenderer(os.Stdout)
			fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderResult(result))
			return nil
		},
	}
}

func newUninstallCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "uninstall",
		Short:   MsgUninstallShort,
		Long:    MsgUninstallLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.loadSettings()
			if err != nil {
				return err
			}
			p, err := paths.FromSettings(s)
			if err != nil {
				return err
			}

			if err := deployer.Uninstall(p, filesystem.NewOS()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgUninstalled, p.DeployRoot(), p.ShellRC())
			return nil
		},
	}
}

func newCheckCmd(flags *globalFlags) *cobra.Command {
	var plan bool

	cmd := &cobra.Command{
		Use:     "check [CONFIG...]",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPaths := args
			if len(configPaths) == 0 {
				found, err := findConfigs(".")
				if err != nil {
					return err
				}
				configPaths = found
			}

			renderer := style.NewRenderer(os.Stdout)
			reports := config.CheckFiles(configPaths)
			failed := config.Failed(reports)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderer.RenderReports(reports))
			fmt.Fprintf(out, MsgCheckSummary, len(reports), failed)
			if failed > 0 {
				return errors.Newf(errors.ErrConfigValid, MsgErrCheckFailed, failed, len(reports))
			}

			if !plan {
				return nil
			}

			s, err := flags.loadSettings()
			if err != nil {
				return err
			}
			opts, err := deployerOptions(s)
			if err != nil {
				return err
			}
			d, err := deployer.New(configPaths, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderer.RenderPlan(d.Plan(cmd.Context())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plan, "plan", false, MsgFlagPlan)
	return cmd
}

// findConfigs returns the *.toml files in dir.
func findConfigs(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to list configuration files")
	}
	if len(matches) == 0 {
		abs, _ := filepath.Abs(dir)
		return nil, errors.Newf(errors.ErrNotFound, MsgErrNoConfigs, abs)
	}
	return matches, nil
}

func newFmtCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "fmt CONFIG",
		Short:   MsgFmtShort,
		Long:    MsgFmtLong,
		GroupID: "misc",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			target := config.FormatForPath(path)
			if format != "" {
				f, err := config.ParseFormat(format)
				if err != nil {
					return err
				}
				target = f
			}

			cfg, err := config.LoadFile(path)
			if err != nil {
				return err
			}
			data, err := config.Encode(cfg, target)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "schema",
		Short:   MsgSchemaShort,
		Long:    MsgSchemaLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}
