package items

import (
	"context"

	"github.com/arthur-debert/pioneer/pkg/types"
)

// Package installs a system package through the package manager.
type Package struct {
	Name     string
	packages PackageInstaller
}

func NewPackage(name string, packages PackageInstaller) *Package {
	return &Package{Name: name, packages: packages}
}

func (p *Package) Kind() Kind { return KindPackage }

func (p *Package) String() string { return "package " + p.Name }

// Validate checks the name against the package index.
func (p *Package) Validate(ctx context.Context) error {
	return p.packages.Check(ctx, p.Name)
}

func (p *Package) Apply(ctx context.Context) (types.Installed, error) {
	if err := p.packages.Install(ctx, p.Name); err != nil {
		return types.Installed{}, err
	}
	return types.NewPackageInstalled(p.Name), nil
}
