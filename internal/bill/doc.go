// Package bill tracks the bill set shown in the dashboard's Bill view.
//
// A bill set is a directory with three subdirectories:
//
//	bills/
//	  raw/        incoming bills (any format)
//	  analyzed/   one <name>.md per analyzed raw bill
//	  reports/    exported reports
//
// Scan derives a Summary (unanalyzed and exportable counts) from that
// layout. Analysis and export are delegated to external programs configured
// by the user; Runner launches them with a deadline and reports failures as
// *CommandError or *TimeoutError. What those programs compute is not this
// package's concern.
package bill
