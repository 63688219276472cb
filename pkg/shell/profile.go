package shell

import (
	"fmt"
	"strings"
)

// Generator names the tool in the profile header.
const Generator = "pioneer"

// Profile is the content of the generated profile.
type Profile struct {
	DeployRoot string
	// PathDirs are prefixed onto PATH in order.
	PathDirs []string
	RcLines  []string
}

// Render returns the profile as a bash script. The PATH export is omitted
// when there are no directories to add.
func (p Profile) Render() string {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	fmt.Fprintf(&b, "# This file is auto-generated by %s. Do not modify it, it is rewritten on every install.\n", Generator)

	if len(p.PathDirs) > 0 {
		fmt.Fprintf(&b, "export PATH=%s:$PATH\n", strings.Join(p.PathDirs, ":"))
	}
	for _, line := range p.RcLines {
		b.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "alias uninstall='rm -rf %s'\n", p.DeployRoot)
	return b.String()
}

// UniqueDirs drops repeated directories, keeping first-seen order.
func UniqueDirs(dirs []string) []string {
	seen := make(map[string]bool, len(dirs))
	var out []string
	for _, d := range dirs {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	return out
}
