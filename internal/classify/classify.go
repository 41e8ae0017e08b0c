// Package classify implements the fixed skip policy for repository scans.
//
// The policy is three static tables (pruned directory names, excluded
// extensions, excluded exact filenames) plus a best-effort media-type guess
// keyed by file extension. The tables are not configurable at runtime.
package classify

import (
	"mime"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/repoindex-mcp/pkg/types"
)

var (
	// skipDirs are pruned before descent; their contents are never visited.
	skipDirs = map[string]struct{}{
		"node_modules": {},
		".venv":        {},
		"__pycache__":  {},
		".git":         {},
	}

	// skipExts excludes archives, images, compiled binaries, and bytecode.
	// Keys are lower-cased suffixes including the dot.
	skipExts = map[string]struct{}{
		".xlsx": {},
		".zip":  {},
		".jpg":  {},
		".jpeg": {},
		".png":  {},
		".gif":  {},
		".exe":  {},
		".dll":  {},
		".pyc":  {},
		".so":   {},
	}

	// skipFiles excludes files by exact base name.
	skipFiles = map[string]struct{}{
		".gitignore": {},
	}
)

// ShouldSkipDir reports whether a directory name is in the prune set.
// Matching is exact and case-sensitive.
func ShouldSkipDir(name string) bool {
	_, ok := skipDirs[name]
	return ok
}

// ShouldSkipFile applies the skip rules in fixed priority order: extension,
// exact filename, then content-type guess. The first matching rule wins and
// short-circuits the rest, so a file never carries more than one skip reason
// even when several rules would match.
func ShouldSkipFile(path string) (bool, types.SkipReason) {
	if _, ok := skipExts[strings.ToLower(filepath.Ext(path))]; ok {
		return true, types.SkipExtension
	}
	if _, ok := skipFiles[filepath.Base(path)]; ok {
		return true, types.SkipFilename
	}
	if isBinary(path) {
		return true, types.SkipBinary
	}
	return false, ""
}

// isBinary guesses the file's media type from its extension. A determined
// type that is not textual means binary. Files with no guess are NOT
// treated as binary: absence of a guess is not evidence.
func isBinary(path string) bool {
	mediaType := mime.TypeByExtension(filepath.Ext(path))
	return mediaType != "" && !strings.HasPrefix(mediaType, "text")
}

// SkipDirs returns a sorted copy of the pruned directory names.
func SkipDirs() []string {
	return sortedKeys(skipDirs)
}

// SkipExtensions returns a sorted copy of the excluded extensions.
func SkipExtensions() []string {
	return sortedKeys(skipExts)
}

// SkipFilenames returns a sorted copy of the excluded exact filenames.
func SkipFilenames() []string {
	return sortedKeys(skipFiles)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
