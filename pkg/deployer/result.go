package deployer

import (
	"github.com/arthur-debert/pioneer/pkg/shell"
	"github.com/arthur-debert/pioneer/pkg/types"
)

// Result summarizes a completed deployment.
type Result struct {
	RunID       string
	Items       int
	Packages    []string
	RcLines     []string
	PathDirs    []string
	Files       []string
	Skipped     []Skipped
	ProfilePath string
}

func aggregate(runID string, plan *Plan, installed []types.Installed) *Result {
	r := &Result{
		RunID:   runID,
		Items:   len(installed),
		Skipped: plan.Skipped,
	}
	var dirs []string
	for _, in := range installed {
		switch in.Kind {
		case types.PackageInstalled:
			r.Packages = append(r.Packages, in.Value)
		case types.RcLine:
			r.RcLines = append(r.RcLines, in.Value)
		case types.PathContribution:
			dirs = append(dirs, in.Value)
		case types.FileWritten:
			r.Files = append(r.Files, in.Value)
		}
	}
	r.PathDirs = shell.UniqueDirs(dirs)
	return r
}
