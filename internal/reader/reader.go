// Package reader loads file contents for indexing, enforcing the per-file
// character budget.
package reader

import (
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/dshills/repoindex-mcp/internal/logging"
	"github.com/dshills/repoindex-mcp/pkg/types"
)

const (
	// MaxChars is the per-file character budget before truncation.
	MaxChars = 5000

	// TruncationMarker is appended to content cut at the budget.
	TruncationMarker = "\n...[truncated]"
)

// Reader loads UTF-8 text files, truncating anything over the budget.
type Reader struct {
	maxChars int
	log      *logging.Logger
}

// New creates a Reader with the default character budget.
func New(log *logging.Logger) *Reader {
	return &Reader{maxChars: MaxChars, log: log}
}

// Read returns the file's decoded text. Content longer than the budget is
// cut to exactly maxChars characters plus the truncation marker; the
// characters before the cut are never altered. Truncation counts
// characters, not bytes. Any read or decode failure is terminal for the
// file; there are no retries.
func (r *Reader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, types.ErrNotUTF8)
	}
	content := string(data)
	if utf8.RuneCountInString(content) > r.maxChars {
		r.log.Info("Truncating large file", zap.String("file_path", path))
		content = truncate(content, r.maxChars) + TruncationMarker
	}
	return content, nil
}

// truncate cuts s after n runes without touching the bytes before the cut.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
