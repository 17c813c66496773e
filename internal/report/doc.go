// Package report renders audit results.
//
// Writers format a finished list of world reports:
//   - SimpleWriter: the per-world summary lines
//   - JSONWriter: structured JSON for other tools
//   - MarkdownWriter: a Markdown document for sharing
//
// ProgressWriter is different: it receives audit events while worlds are
// being scanned and prints progress, detail and warning lines as they
// happen, ahead of the summary.
package report
