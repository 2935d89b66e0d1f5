// Package logging provides structured logging for jeek.
//
// This package wraps a global zap logger with convenience functions for the
// few events worth recording: view transitions, table (re)loads and external
// processes launched by the dashboard.
//
// # Silent by Default
//
// Logging is disabled unless a level is given, either through the
// --log-level flag or the JEEK_LOG_LEVEL environment variable:
//
//	JEEK_LOG_LEVEL=debug jeek
//
// # Output
//
// The dashboard owns the terminal, so log entries go to a file
// (<config dir>/jeek.log unless --log-file says otherwise):
//
//	2025-11-25T10:30:45.123+0800  INFO  External command finished
//	  command=bill-analyze exit_code=0 duration=1.2s
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The weather fetch runs
// on its own goroutine and logs through the same global logger.
package logging
