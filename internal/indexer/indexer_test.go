package indexer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/repoindex-mcp/internal/logging"
	"github.com/dshills/repoindex-mcp/internal/reader"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// scenarioTree builds: a.txt ("hello"), b.png (binary signature),
// .gitignore, node_modules/c.txt, big.txt (6000 'x' characters).
func scenarioTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "hello")
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.png"),
		[]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}, 0644))
	writeFile(t, filepath.Join(root, ".gitignore"), "node_modules/\n")
	writeFile(t, filepath.Join(root, "node_modules", "c.txt"), "ignored")
	writeFile(t, filepath.Join(root, "big.txt"), strings.Repeat("x", 6000))
	return root
}

func TestIndex_Scenario(t *testing.T) {
	root := scenarioTree(t)
	tl := logging.NewTestLogger()

	result, err := New(tl.Logger).Index(root)
	require.NoError(t, err)

	// a.txt and big.txt indexed; b.png (extension) and .gitignore
	// (filename) skipped; node_modules pruned without touching counters.
	assert.Equal(t, 2, result.Stats.Indexed)
	assert.Equal(t, 2, result.Stats.Skipped)
	assert.Equal(t, 0, result.Stats.Errors)

	expected := "### a.txt\nhello\n### big.txt\n" +
		strings.Repeat("x", reader.MaxChars) + reader.TruncationMarker
	assert.Equal(t, expected, result.Document)
	assert.NotContains(t, result.Document, "ignored")
	assert.NotContains(t, result.Document, "b.png")

	assert.Equal(t, utf8.RuneCountInString(result.Document), result.Stats.CharCount)
}

func TestIndex_StartAndEndEvents(t *testing.T) {
	root := scenarioTree(t)
	tl := logging.NewTestLogger()

	result, err := New(tl.Logger).Index(root)
	require.NoError(t, err)

	starts := tl.EventsWithName("repo_scan_start")
	require.Len(t, starts, 1)
	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, absRoot, starts[0].ContextMap()["file_path"])

	ends := tl.EventsWithName("repo_scan_end")
	require.Len(t, ends, 1)
	fields := ends[0].ContextMap()
	assert.Equal(t, int64(2), fields["file_indexed"])
	assert.Equal(t, int64(2), fields["file_skipped"])
	assert.Equal(t, int64(0), fields["file_errors"])
	assert.Equal(t, int64(result.Stats.CharCount), fields["char_count"])
}

func TestIndex_EverySkipDecisionLoggedOnce(t *testing.T) {
	root := scenarioTree(t)
	tl := logging.NewTestLogger()

	_, err := New(tl.Logger).Index(root)
	require.NoError(t, err)

	var byExt, byName, dirSkips, indexed int
	for _, e := range tl.Events() {
		switch e.Message {
		case "Skipping by extension":
			byExt++
		case "Skipping by filename":
			byName++
		case "Skipping binary file":
			t.Errorf("b.png must be reported under the extension rule, not binary")
		case "Skipping directory":
			dirSkips++
			assert.Equal(t, "node_modules", e.ContextMap()["file_name"])
		case "Indexed file":
			indexed++
		}
	}
	assert.Equal(t, 1, byExt)
	assert.Equal(t, 1, byName)
	assert.Equal(t, 1, dirSkips)
	assert.Equal(t, 2, indexed)
}

func TestIndex_PrunedDirectoryNeverVisited(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "deep.txt"), "buried")
	writeFile(t, filepath.Join(root, ".git", "HEAD"), "ref: refs/heads/main")
	tl := logging.NewTestLogger()

	result, err := New(tl.Logger).Index(root)
	require.NoError(t, err)

	assert.Empty(t, result.Document)
	assert.Equal(t, 0, result.Stats.Indexed)
	assert.Equal(t, 0, result.Stats.Skipped)
	assert.Equal(t, 0, result.Stats.Errors)

	// One prune event per skipped directory name, nothing beneath them.
	var pruned []string
	for _, e := range tl.Events() {
		if e.Message == "Skipping directory" {
			pruned = append(pruned, e.ContextMap()["file_name"].(string))
		}
	}
	assert.ElementsMatch(t, []string{"node_modules", ".git"}, pruned)
}

func TestIndex_Idempotent(t *testing.T) {
	root := scenarioTree(t)

	first, err := New(logging.NewTestLogger().Logger).Index(root)
	require.NoError(t, err)
	second, err := New(logging.NewTestLogger().Logger).Index(root)
	require.NoError(t, err)

	assert.Equal(t, first.Document, second.Document)
	assert.Equal(t, first.Stats, second.Stats)
}

func TestIndex_RelativePathRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "cmd", "app", "usage.txt"), "run me")
	writeFile(t, filepath.Join(root, "README"), "top")

	result, err := New(logging.NewTestLogger().Logger).Index(root)
	require.NoError(t, err)

	absRoot, err := filepath.Abs(root)
	require.NoError(t, err)

	var headers int
	for _, line := range strings.Split(result.Document, "\n") {
		rel, ok := strings.CutPrefix(line, "### ")
		if !ok {
			continue
		}
		headers++
		// Joining the header's relative path back onto the root must
		// resolve to the original file.
		_, statErr := os.Stat(filepath.Join(absRoot, rel))
		assert.NoError(t, statErr, "header %q", rel)
	}
	assert.Equal(t, 2, headers)
	assert.Contains(t, result.Document, "### "+filepath.Join("cmd", "app", "usage.txt"))
}

func TestIndex_UnreadableFileCountedAsError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ok.txt"), "fine")
	// A dangling symlink survives classification but fails to read.
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"),
		filepath.Join(root, "broken.txt")))
	tl := logging.NewTestLogger()

	result, err := New(tl.Logger).Index(root)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.Indexed)
	assert.Equal(t, 0, result.Stats.Skipped)
	assert.Equal(t, 1, result.Stats.Errors)
	assert.Equal(t, "### ok.txt\nfine", result.Document)

	var warnings int
	for _, e := range tl.Events() {
		if e.Message != "Unreadable file" {
			continue
		}
		warnings++
		assert.Equal(t, zapcore.WarnLevel, e.Level)
		fields := e.ContextMap()
		assert.Contains(t, fields["file_path"], "broken.txt")
		assert.NotEmpty(t, fields["error"])
	}
	assert.Equal(t, 1, warnings)
}

func TestIndex_MissingRootAbortsRun(t *testing.T) {
	result, err := New(logging.NewTestLogger().Logger).
		Index(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestIndex_EmptyTree(t *testing.T) {
	result, err := New(logging.NewTestLogger().Logger).Index(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, result.Document)
	assert.Equal(t, 0, result.Stats.CharCount)
}
