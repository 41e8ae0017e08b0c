// Package logging emits structured scan events in the OpenTelemetry log
// data model field layout.
//
// Every record is a single self-contained JSON object written on its own
// line of the diagnostic stream, carrying the base fields a downstream log
// collector depends on:
//
//	{
//	  "timestamp": "2025-06-01T12:00:00.000123Z",
//	  "severity_text": "INFO",
//	  "severity_number": 9,
//	  "message": "Indexed file",
//	  "trace_id": "9f2c4e1a-...",
//	  "logger.name": "repo_indexer",
//	  "code.function": "visitFile",
//	  "file_path": "/repo/main.go"
//	}
//
// Caller-supplied fields are merged at the top level of the record.
//
// # Severity Mapping
//
// Severity numbers follow the OpenTelemetry log data model:
//
//	DEBUG    -> 5
//	INFO     -> 9
//	WARNING  -> 13
//	ERROR    -> 17
//	CRITICAL -> 21
//	default  -> 1
//
// # Run Correlation
//
// A Logger is constructed with the run's trace id, generated once at
// startup. All events emitted through that Logger (and its children) share
// the id, so one scan's events correlate downstream.
package logging
