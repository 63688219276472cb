package shell

import (
	"fmt"
	"strings"
)

const (
	BeginMarker = "# Config Start"
	EndMarker   = "# Config End"
)

// SourceLine is the statement placed inside the managed block.
func SourceLine(profilePath string) string {
	return fmt.Sprintf(`test -f "%s" && source "%s"`, profilePath, profilePath)
}

// ManagedBlock returns the block sourcing profilePath, preceded by a blank
// separator line.
func ManagedBlock(profilePath string) string {
	return "\n" + BeginMarker + "\n" + SourceLine(profilePath) + "\n" + EndMarker + "\n"
}

// StripManagedBlock removes the first complete managed block from content,
// from the begin marker nearest above the first end marker through that end
// marker, together with the blank separator line ManagedBlock puts before it.
// Stray begin markers earlier in the file are left alone along with the lines
// after them. The bool reports whether a block was removed.
func StripManagedBlock(content string) (string, bool) {
	begin, end := -1, -1
	offset := 0
	for offset < len(content) {
		lineEnd := strings.IndexByte(content[offset:], '\n')
		next := len(content)
		if lineEnd >= 0 {
			next = offset + lineEnd + 1
		}
		line := strings.TrimRight(content[offset:next], "\r\n")

		if line == BeginMarker {
			begin = offset
		} else if begin >= 0 && line == EndMarker {
			end = next
			break
		}
		offset = next
	}
	if begin < 0 || end < 0 {
		return content, false
	}

	before := content[:begin]
	if strings.HasSuffix(before, "\n\n") || before == "\n" {
		before = before[:len(before)-1]
	}
	return before + content[end:], true
}

// Patch returns content with its managed block replaced by a fresh one
// sourcing profilePath, appended at the end.
func Patch(content, profilePath string) string {
	stripped, _ := StripManagedBlock(content)
	if stripped != "" && !strings.HasSuffix(stripped, "\n") {
		stripped += "\n"
	}
	return stripped + ManagedBlock(profilePath)
}
