package indexer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/dshills/repoindex-mcp/internal/classify"
	"github.com/dshills/repoindex-mcp/internal/logging"
	"github.com/dshills/repoindex-mcp/internal/reader"
	"github.com/dshills/repoindex-mcp/pkg/types"
)

// Indexer drives one repository scan.
type Indexer struct {
	reader *reader.Reader
	log    *logging.Logger
}

// Result holds the assembled document and final counters for one scan.
type Result struct {
	Document string
	Stats    types.Metrics
}

// New creates an Indexer emitting events through log.
func New(log *logging.Logger) *Indexer {
	return &Indexer{
		reader: reader.New(log),
		log:    log,
	}
}

// Index scans the tree rooted at rootPath and returns the assembled
// document. Sections are joined with a single newline, in traversal order.
// The document is returned whole at the end of the scan; nothing is
// emitted incrementally to the caller.
func (idx *Indexer) Index(rootPath string) (*Result, error) {
	root, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	idx.log.Info("Indexing repository",
		zap.String("event_name", "repo_scan_start"),
		zap.String("file_path", root))

	var (
		stats   types.Metrics
		entries []types.Entry
	)
	if err := idx.walkDir(root, root, &entries, &stats); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sections := make([]string, len(entries))
	for i := range entries {
		sections[i] = entries[i].Section()
	}
	doc := strings.Join(sections, "\n")
	stats.CharCount = utf8.RuneCountInString(doc)

	idx.log.Info("Indexing complete",
		zap.String("event_name", "repo_scan_end"),
		zap.Int("file_indexed", stats.Indexed),
		zap.Int("file_skipped", stats.Skipped),
		zap.Int("file_errors", stats.Errors),
		zap.Int("char_count", stats.CharCount))

	return &Result{Document: doc, Stats: stats}, nil
}

// walkDir visits dir depth-first, pre-order. Files are handled in listing
// order before any subdirectory is entered. Pruned subdirectories are
// reported once each and never descended into. An unreadable directory
// aborts the whole scan.
func (idx *Indexer) walkDir(root, dir string, entries *[]types.Entry, stats *types.Metrics) error {
	list, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var subdirs []string
	for _, de := range list {
		path := filepath.Join(dir, de.Name())
		if de.IsDir() {
			if classify.ShouldSkipDir(de.Name()) {
				idx.log.Info("Skipping directory",
					zap.String("file_name", de.Name()),
					zap.String("file_path", path))
				continue
			}
			subdirs = append(subdirs, path)
			continue
		}
		idx.visitFile(root, path, de.Name(), entries, stats)
	}

	for _, sub := range subdirs {
		if err := idx.walkDir(root, sub, entries, stats); err != nil {
			return err
		}
	}
	return nil
}

// visitFile classifies one file and, if it survives, reads it and appends
// its section. Every file lands in exactly one of indexed, skipped, or
// errored; the skip rules short-circuit so no file is counted twice.
func (idx *Indexer) visitFile(root, path, name string, entries *[]types.Entry, stats *types.Metrics) {
	if skip, reason := classify.ShouldSkipFile(path); skip {
		idx.logSkip(reason, name, path)
		stats.Skipped++
		return
	}

	content, err := idx.reader.Read(path)
	if err != nil {
		idx.log.Warn("Unreadable file",
			zap.String("file_path", path),
			zap.String("error", err.Error()))
		stats.Errors++
		return
	}

	relPath, err := filepath.Rel(root, path)
	if err != nil {
		// Both paths are absolute with root as prefix; Rel cannot fail here.
		relPath = path
	}

	idx.log.Info("Indexed file",
		zap.String("file_path", path),
		zap.String("file_name", name),
		zap.String("file_rel_path", relPath))

	*entries = append(*entries, types.Entry{RelPath: relPath, Content: content})
	stats.Indexed++
}

// logSkip emits exactly one event per skip decision.
func (idx *Indexer) logSkip(reason types.SkipReason, name, path string) {
	switch reason {
	case types.SkipExtension:
		idx.log.Info("Skipping by extension",
			zap.String("file_name", name),
			zap.String("file_path", path))
	case types.SkipFilename:
		idx.log.Info("Skipping by filename",
			zap.String("file_name", name),
			zap.String("file_path", path))
	case types.SkipBinary:
		idx.log.Info("Skipping binary file",
			zap.String("file_path", path))
	}
}
