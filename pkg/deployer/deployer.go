package deployer

import (
	"context"

	"github.com/arthur-debert/pioneer/pkg/config"
	"github.com/arthur-debert/pioneer/pkg/dispatcher"
	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/arthur-debert/pioneer/pkg/execution"
	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/items"
	"github.com/arthur-debert/pioneer/pkg/logging"
	"github.com/arthur-debert/pioneer/pkg/packages"
	"github.com/arthur-debert/pioneer/pkg/paths"
	"github.com/arthur-debert/pioneer/pkg/shell"
	"github.com/arthur-debert/pioneer/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options are the collaborators of a run. Nil fields get production defaults.
type Options struct {
	Paths    paths.Paths
	FS       *filesystem.FS
	Packages items.PackageInstaller
	Gate     execution.Gate
}

// Source is one loaded configuration file.
type Source struct {
	Path string
	// Dir is the absolute directory holding Path.
	Dir    string
	Config *types.Config
}

// PlannedItem is an install item tagged with the config that declared it.
type PlannedItem struct {
	Source *Source
	Item   items.Item
}

// Skipped records a config left out because its predicate did not hold.
type Skipped struct {
	Path      string
	Name      string
	Predicate string
}

// Plan is the gated, dispatched work of a run.
type Plan struct {
	Items   []PlannedItem
	Skipped []Skipped
}

// Deployer holds the loaded configs of one run.
type Deployer struct {
	sources []*Source
	paths   paths.Paths
	fs      *filesystem.FS
	pkgs    items.PackageInstaller
	gate    execution.Gate
	runID   string
	logger  zerolog.Logger
}

// New loads every path in order. The first file that fails to load stops
// construction.
func New(configPaths []string, opts Options) (*Deployer, error) {
	if opts.Paths == nil {
		p, err := paths.New(paths.Layout{})
		if err != nil {
			return nil, err
		}
		opts.Paths = p
	}
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Packages == nil {
		opts.Packages = packages.NewManager(execution.NewRunner(execution.Options{}), packages.DefaultBinary)
	}
	if opts.Gate == nil {
		opts.Gate = execution.NewShellGate("")
	}

	runID := uuid.NewString()
	d := &Deployer{
		paths:  opts.Paths,
		fs:     opts.FS,
		pkgs:   opts.Packages,
		gate:   opts.Gate,
		runID:  runID,
		logger: logging.GetLogger("deployer").With().Str("run", runID).Logger(),
	}

	for _, path := range configPaths {
		cfg, err := config.LoadFS(d.fs, path)
		if err != nil {
			return nil, err
		}
		dir, err := paths.ConfigDir(path)
		if err != nil {
			return nil, err
		}
		d.sources = append(d.sources, &Source{Path: path, Dir: dir, Config: cfg})
	}

	d.logger.Info().Int("configs", len(d.sources)).Msg("Configurations loaded")
	return d, nil
}

// RunID identifies this run in logs.
func (d *Deployer) RunID() string {
	return d.runID
}

// Sources returns the loaded configs in load order.
func (d *Deployer) Sources() []*Source {
	return d.sources
}

// Plan gates every config and expands the included ones. Nothing is
// validated or applied.
func (d *Deployer) Plan(ctx context.Context) *Plan {
	plan := &Plan{}
	for _, src := range d.sources {
		info := src.Config.Info
		if info.InstallWhile != "" {
			d.logger.Info().
				Str("config", info.Name).
				Str("predicate", info.InstallWhile).
				Msg("Checking precondition")
			if !d.gate.Allows(ctx, info.InstallWhile) {
				d.logger.Info().
					Str("config", info.Name).
					Str("path", src.Path).
					Msg("Precondition does not hold, skipping config")
				plan.Skipped = append(plan.Skipped, Skipped{Path: src.Path, Name: info.Name, Predicate: info.InstallWhile})
				continue
			}
		}

		expanded := dispatcher.Expand(src.Config, dispatcher.Options{
			ConfigDir:  src.Dir,
			InstallDir: d.paths.InstallDir(info.Name),
			Packages:   d.pkgs,
			FS:         d.fs,
		})
		for _, item := range expanded {
			plan.Items = append(plan.Items, PlannedItem{Source: src, Item: item})
		}
	}

	d.logger.Info().
		Int("items", len(plan.Items)).
		Int("skipped", len(plan.Skipped)).
		Msg("Install items dispatched")
	return plan
}

// Deploy runs the whole protocol. A validation failure leaves the machine
// untouched; an apply failure leaves the items applied before it in place
// and reports how many there were in the "applied" detail.
func (d *Deployer) Deploy(ctx context.Context) (*Result, error) {
	done := logging.LogOperationStart(d.logger, "deploy")
	defer done()

	plan := d.Plan(ctx)

	if err := d.validateAll(ctx, plan); err != nil {
		return nil, err
	}

	installed, err := d.applyAll(ctx, plan)
	if err != nil {
		return nil, err
	}

	result := aggregate(d.runID, plan, installed)
	result.ProfilePath = d.paths.ProfilePath()

	profile := shell.Profile{
		DeployRoot: d.paths.DeployRoot(),
		PathDirs:   result.PathDirs,
		RcLines:    result.RcLines,
	}
	if err := d.fs.Write(result.ProfilePath, []byte(profile.Render()), nil); err != nil {
		return nil, errors.Wrapf(err, errors.ErrApply, "failed to write profile %s", result.ProfilePath).
			WithDetail("applied", len(installed))
	}
	if err := shell.PatchFile(d.fs, d.paths.ShellRC(), result.ProfilePath); err != nil {
		return nil, errors.Wrapf(err, errors.ErrApply, "failed to patch %s", d.paths.ShellRC()).
			WithDetail("applied", len(installed))
	}

	d.logger.Info().
		Int("items", result.Items).
		Str("profile", result.ProfilePath).
		Msg("Deployment complete")
	return result, nil
}

func (d *Deployer) validateAll(ctx context.Context, plan *Plan) error {
	for _, p := range plan.Items {
		d.logger.Debug().
			Str("config", p.Source.Path).
			Str("item", p.Item.String()).
			Msg("Validating item")
		if err := p.Item.Validate(ctx); err != nil {
			return errors.Wrapf(err, errors.ErrValidation, "%s: %s failed validation", p.Source.Path, p.Item).
				WithDetail("config", p.Source.Path).
				WithDetail("item", p.Item.String())
		}
	}

	root := d.paths.DeployRoot()
	if d.fs.Exists(root) && !d.fs.IsDir(root) {
		return errors.Newf(errors.ErrValidation, "deploy root %s exists and is not a directory", root).
			WithDetail("path", root)
	}
	return nil
}

func (d *Deployer) applyAll(ctx context.Context, plan *Plan) ([]types.Installed, error) {
	installed := make([]types.Installed, 0, len(plan.Items))
	for _, p := range plan.Items {
		d.logger.Debug().
			Str("config", p.Source.Path).
			Str("item", p.Item.String()).
			Msg("Applying item")
		result, err := p.Item.Apply(ctx)
		if err != nil {
			d.logger.Error().
				Err(err).
				Int("applied", len(installed)).
				Msg("Deployment partially applied")
			return nil, errors.Wrapf(err, errors.ErrApply, "%s: failed to apply %s", p.Source.Path, p.Item).
				WithDetail("config", p.Source.Path).
				WithDetail("item", p.Item.String()).
				WithDetail("applied", len(installed))
		}
		installed = append(installed, result)
	}
	return installed, nil
}

// Uninstall removes the deploy root, then the managed block. Either may
// already be absent.
func Uninstall(p paths.Paths, fs *filesystem.FS) error {
	logger := logging.GetLogger("deployer")
	if fs == nil {
		fs = filesystem.NewOS()
	}

	root := p.DeployRoot()
	if err := fs.RemoveAll(root); err != nil {
		return err
	}
	logger.Info().Str("path", root).Msg("Deploy root removed")

	return shell.UnpatchFile(fs, p.ShellRC())
}
