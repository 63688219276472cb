package style

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/pioneer/pkg/config"
	"github.com/arthur-debert/pioneer/pkg/deployer"
	"github.com/arthur-debert/pioneer/pkg/errors"
	"github.com/mattn/go-isatty"
)

// Status indicators
const (
	SuccessIndicator = "✓"
	ErrorIndicator   = "✗"
	SkipIndicator    = "-"
)

// Renderer defines the interface for rendering command output
type Renderer interface {
	RenderResult(r *deployer.Result) string
	RenderPlan(p *deployer.Plan) string
	RenderReports(reports []config.Report) string
	RenderError(err error) string
}

// NewRenderer returns a TerminalRenderer when f is a terminal and a
// PlainRenderer otherwise.
func NewRenderer(f *os.File) Renderer {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return NewTerminalRenderer()
	}
	return NewPlainRenderer()
}

// TerminalRenderer implements Renderer with styled terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderResult renders a completed deployment
func (r *TerminalRenderer) RenderResult(res *deployer.Result) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Deployed %d items", res.Items)) + "\n")

	for _, pkg := range res.Packages {
		fmt.Fprintf(&b, "  %s %s %s\n", SuccessStyle.Render(SuccessIndicator), PackageStyle.Render("package"), pkg)
	}
	for _, dir := range res.PathDirs {
		fmt.Fprintf(&b, "  %s %s %s\n", SuccessStyle.Render(SuccessIndicator), FileStyle.Render("path"), PathStyle.Render(dir))
	}
	for _, file := range res.Files {
		fmt.Fprintf(&b, "  %s %s %s\n", SuccessStyle.Render(SuccessIndicator), FileStyle.Render("file"), PathStyle.Render(file))
	}
	if n := len(res.RcLines); n > 0 {
		fmt.Fprintf(&b, "  %s %s %d lines\n", SuccessStyle.Render(SuccessIndicator), ShellStyle.Render("shell"), n)
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(&b, "  %s %s %s\n", MutedStyle.Render(SkipIndicator), s.Name, MutedStyle.Render("skipped: "+s.Predicate))
	}

	fmt.Fprintf(&b, "\nProfile written to %s\n", PathStyle.Render(res.ProfilePath))
	return strings.TrimRight(b.String(), "\n")
}

// RenderPlan renders the gated items of a run
func (r *TerminalRenderer) RenderPlan(p *deployer.Plan) string {
	if len(p.Items) == 0 && len(p.Skipped) == 0 {
		return MutedStyle.Render("Nothing to install")
	}

	var b strings.Builder
	current := ""
	for _, item := range p.Items {
		if item.Source.Path != current {
			current = item.Source.Path
			b.WriteString(TitleStyle.Render(item.Source.Config.Info.Name) + " " + PathStyle.Render(current) + "\n")
		}
		fmt.Fprintf(&b, "  %s\n", KindStyle(item.Item.Kind()).Render(item.Item.String()))
	}
	for _, s := range p.Skipped {
		fmt.Fprintf(&b, "%s %s %s\n", MutedStyle.Render(SkipIndicator), s.Name, MutedStyle.Render("skipped: "+s.Predicate))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderReports renders one line per checked file
func (r *TerminalRenderer) RenderReports(reports []config.Report) string {
	var b strings.Builder
	for _, rep := range reports {
		if rep.Err != nil {
			fmt.Fprintf(&b, "%s %s\n    %s\n", ErrorStyle.Render(ErrorIndicator), PathStyle.Render(rep.Path), rep.Err.Error())
			continue
		}
		fmt.Fprintf(&b, "%s %s %s\n", SuccessStyle.Render(SuccessIndicator), PathStyle.Render(rep.Path), MutedStyle.Render(rep.Config.Info.Name))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderError renders an error message with its details
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	msg := ErrorStyle.Render("Error: " + err.Error())
	if details := renderDetails(err); details != "" {
		msg += "\n" + MutedStyle.Render(details)
	}
	return msg
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

func (r *PlainRenderer) RenderResult(res *deployer.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Deployed %d items\n", res.Items)
	for _, pkg := range res.Packages {
		fmt.Fprintf(&b, "  package: %s\n", pkg)
	}
	for _, dir := range res.PathDirs {
		fmt.Fprintf(&b, "  path: %s\n", dir)
	}
	for _, file := range res.Files {
		fmt.Fprintf(&b, "  file: %s\n", file)
	}
	if n := len(res.RcLines); n > 0 {
		fmt.Fprintf(&b, "  shell: %d lines\n", n)
	}
	for _, s := range res.Skipped {
		fmt.Fprintf(&b, "  skipped: %s (%s)\n", s.Name, s.Predicate)
	}
	fmt.Fprintf(&b, "Profile written to %s\n", res.ProfilePath)
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderPlan(p *deployer.Plan) string {
	if len(p.Items) == 0 && len(p.Skipped) == 0 {
		return "Nothing to install"
	}

	var b strings.Builder
	current := ""
	for _, item := range p.Items {
		if item.Source.Path != current {
			current = item.Source.Path
			fmt.Fprintf(&b, "%s (%s)\n", item.Source.Config.Info.Name, current)
		}
		fmt.Fprintf(&b, "  %s\n", item.Item.String())
	}
	for _, s := range p.Skipped {
		fmt.Fprintf(&b, "skipped: %s (%s)\n", s.Name, s.Predicate)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderReports(reports []config.Report) string {
	var b strings.Builder
	for _, rep := range reports {
		if rep.Err != nil {
			fmt.Fprintf(&b, "FAIL %s: %s\n", rep.Path, rep.Err.Error())
			continue
		}
		fmt.Fprintf(&b, "ok   %s (%s)\n", rep.Path, rep.Config.Info.Name)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	msg := "Error: " + err.Error()
	if details := renderDetails(err); details != "" {
		msg += "\n" + details
	}
	return msg
}

// renderDetails lists the outermost error details sorted by key.
func renderDetails(err error) string {
	details := errors.GetErrorDetails(err)
	if len(details) == 0 {
		return ""
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %s: %v", k, details[k]))
	}
	return strings.Join(lines, "\n")
}
