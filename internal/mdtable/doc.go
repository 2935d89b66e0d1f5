// Package mdtable parses the Markdown pipe-table dialect used by jeek's
// Todo and Cyber lists into an in-memory Grid.
//
// The dialect is deliberately small:
//
//	| 任务 | 状态 |      <- header row
//	|------|:----:|      <- separator: dashes, optional colons
//	| 学习 | 进行中 |    <- data rows
//
// Cells are trimmed, `\|` is a literal pipe, and rows are padded or
// truncated to the header width. Malformed rows are dropped rather than
// reported. Parsing is pure and deterministic; Serialize writes a grid back
// so that Parse(Serialize(g)) reproduces its cells.
package mdtable
