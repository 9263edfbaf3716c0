package pkg

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PyGuy0815/simple-converters/pkg/common"
)

// CollectDir returns the files directly under root whose extension
// matches ext (with or without a leading dot, case-insensitive).
// When recursive is set, subdirectories are descended as well; the
// result is sorted for stable batch order across platforms.
func CollectDir(root, ext string, recursive bool) ([]string, error) {
	ext = "." + strings.TrimPrefix(strings.ToLower(ext), ".")
	root = filepath.Clean(root)

	var files []string
	if recursive {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if !d.IsDir() && strings.ToLower(filepath.Ext(path)) == ext {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, common.FormatError(common.ErrFailedToCollectInputs, err)
		}
	} else {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, common.FormatError(common.ErrFailedToCollectInputs, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.ToLower(filepath.Ext(entry.Name())) == ext {
				files = append(files, filepath.Join(root, entry.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// ExpandPatterns expands each argument as a glob pattern. A pattern
// matching nothing is a warning, not an error, and contributes no
// inputs; a malformed pattern is an error.
func ExpandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, common.FormatError(common.ErrFailedToCollectInputs, err)
		}
		if len(matches) == 0 {
			common.LogWarn(common.WarnNoMatchForPattern, pattern)
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
