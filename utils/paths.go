package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// maxVersions bounds the search for a free output name
const maxVersions = 999

// NextVersionedPath creates dir if needed and returns the first dir/base_vNNN.ext that does not exist yet
func NextVersionedPath(dir, base, ext string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "[NextVersionedPath] failed to create directory: %+v", dir)
	}
	ext = strings.TrimPrefix(ext, ".")

	for version := 1; version <= maxVersions; version++ {
		path := filepath.Join(dir, fmt.Sprintf("%s_v%03d.%s", base, version, ext))
		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", errors.Wrapf(err, "[NextVersionedPath] failed to stat: %+v", path)
		}
	}
	return "", errors.Errorf("[NextVersionedPath] no free version left for %s in %s", base, dir)
}

// SiblingPath swaps the extension of path for suffix.ext, e.g. gol_v001.gif -> gol_v001_population.png
func SiblingPath(path, suffix, ext string) string {
	trimmed := strings.TrimSuffix(path, filepath.Ext(path))
	return trimmed + suffix + "." + strings.TrimPrefix(ext, ".")
}
