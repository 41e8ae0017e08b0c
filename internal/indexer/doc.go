// Package indexer coordinates the end-to-end scan pipeline: walk ->
// classify -> read -> assemble.
//
// The indexer drives a depth-first, pre-order traversal of a directory
// tree, applies the fixed skip policy to every entry, reads the surviving
// files, and joins them into one annotated document. Every decision point
// emits a structured event through internal/logging.
//
// # Basic Usage
//
//	log := logging.NewStderr(zapcore.InfoLevel, uuid.NewString())
//	idx := indexer.New(log)
//
//	result, err := idx.Index("/path/to/repo")
//
//	fmt.Println(result.Document)
//	fmt.Printf("%d indexed, %d skipped\n", result.Stats.Indexed, result.Stats.Skipped)
//
// # Traversal Order
//
// Each directory's files are processed in listing order before any
// subdirectory is entered. Pruned subdirectories (node_modules, .git, and
// friends) are reported once each and never descended into; nothing under
// them is visited or counted.
//
// # Execution Model
//
// The scan is single-threaded and synchronous: one traversal in flight, no
// parallel file processing, no cancellation. The metrics record and the
// entry list are owned exclusively by the orchestrator, so no locking is
// needed. The document is returned whole at the end; the log stream is the
// only incremental signal.
//
// # Errors
//
// Per-file read failures are recovered locally: the file contributes
// nothing to the document, the failure is logged at warning severity, and
// the error counter advances. A failure to enumerate a directory aborts
// the whole scan.
package indexer
