package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Scanner scans for test files in a directory tree
type Scanner struct {
	suffix   string
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner matching files ending in suffix and
// never descending into the given directories
func NewScanner(suffix string, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{suffix: suffix, skipDirs: skipMap}
}

// Scan finds all test files under root. Returned paths are absolute. The
// full subtree is traversed with no depth limit; directory symlinks are not
// followed, so a symlinked cycle cannot recurse. A read failure anywhere
// aborts the scan.
func (s *Scanner) Scan(root string) ([]string, error) {
	var testfiles []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test root does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test root is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if strings.HasSuffix(d.Name(), s.suffix) {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			testfiles = append(testfiles, abs)
			return nil
		}

		return nil
	})

	return testfiles, err
}
