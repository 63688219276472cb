package shell

import (
	"github.com/arthur-debert/pioneer/pkg/filesystem"
	"github.com/arthur-debert/pioneer/pkg/logging"
)

var log = logging.GetLogger("shell")

// PatchFile installs the managed block into the startup file at rcPath,
// creating the file when missing.
func PatchFile(fs *filesystem.FS, rcPath, profilePath string) error {
	var content string
	if fs.Exists(rcPath) {
		data, err := fs.ReadFile(rcPath)
		if err != nil {
			return err
		}
		content = string(data)
	} else {
		log.Info().Str("path", rcPath).Msg("Startup file missing, creating it")
	}

	if err := fs.Write(rcPath, []byte(Patch(content, profilePath)), nil); err != nil {
		return err
	}
	log.Debug().Str("path", rcPath).Str("profile", profilePath).Msg("Managed block written")
	return nil
}

// UnpatchFile removes the managed block from the startup file at rcPath. A
// missing file or a file without a block is left as is.
func UnpatchFile(fs *filesystem.FS, rcPath string) error {
	if !fs.Exists(rcPath) {
		log.Debug().Str("path", rcPath).Msg("Startup file missing, nothing to remove")
		return nil
	}

	data, err := fs.ReadFile(rcPath)
	if err != nil {
		return err
	}
	stripped, found := StripManagedBlock(string(data))
	if !found {
		log.Debug().Str("path", rcPath).Msg("No managed block found")
		return nil
	}
	if err := fs.Write(rcPath, []byte(stripped), nil); err != nil {
		return err
	}
	log.Debug().Str("path", rcPath).Msg("Managed block removed")
	return nil
}
