package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"rregexd/internal/common/fsutil"
	"rregexd/pkg/types"
)

// ArtifactPrefix is stripped from artifact file names to obtain the version key.
const ArtifactPrefix = "rregex-"

// LoadDir scans a directory for *.wasm files and builds the version list from
// file names. "rregex-1.10.wasm" yields key "1.10"; a name without the prefix
// uses its stem. Path is the absolute file path.
func LoadDir(dir string) ([]types.Version, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var versions []types.Version
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".wasm") {
			continue
		}
		key := KeyFromFilename(name)
		if key == "" {
			continue
		}
		v := types.Version{Key: key, Path: filepath.Join(abs, name)}
		if fi, err := e.Info(); err == nil {
			v.SizeBytes = fi.Size()
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// KeyFromFilename derives a version key from an artifact file name.
func KeyFromFilename(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimPrefix(stem, ArtifactPrefix)
}

// Filter keeps versions whose key matches any of the glob patterns
// (e.g. "1.*"). No patterns keeps everything.
func Filter(versions []types.Version, patterns []string) ([]types.Version, error) {
	if len(patterns) == 0 {
		return versions, nil
	}
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("version pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	var out []types.Version
	for _, v := range versions {
		for _, g := range globs {
			if g.Match(v.Key) {
				out = append(out, v)
				break
			}
		}
	}
	return out, nil
}
