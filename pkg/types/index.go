package types

// SkipReason identifies which skip rule excluded a file from the index.
type SkipReason string

const (
	// SkipExtension marks files excluded by their lower-cased suffix.
	SkipExtension SkipReason = "extension"
	// SkipFilename marks files excluded by an exact base-name match.
	SkipFilename SkipReason = "filename"
	// SkipBinary marks files whose guessed media type is not textual.
	SkipBinary SkipReason = "binary"
)

// Entry is one indexed file: its path relative to the scan root and its
// content. Entries are appended in traversal order and never mutated.
type Entry struct {
	RelPath string
	Content string
}

// Section renders the entry as it appears in the assembled document.
func (e *Entry) Section() string {
	return "### " + e.RelPath + "\n" + e.Content
}

// Metrics is the counter record for one scan. It is owned by the
// orchestrator for the duration of the run; there are no concurrent writers.
type Metrics struct {
	Indexed   int
	Skipped   int
	Errors    int
	CharCount int
}
