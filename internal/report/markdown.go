package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/stkscan/internal/model"
)

// MarkdownWriter outputs reports as a Markdown document with a summary
// table, a mermaid chart of the color split and, when detail records are
// present, a table of STK elements per world.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the reports in Markdown format.
func (w *MarkdownWriter) Write(reports []*model.WorldReport) (int, error) {
	md := markdown.NewMarkdown(w.output)
	totals := Summarize(reports)

	w.writeHeader(md, totals)
	w.writeSummary(md, reports)
	w.writeCorruption(md, reports)
	w.writeDetails(md, reports)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the run totals.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, totals Totals) {
	md.H1("STK Color Audit")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Worlds audited", strconv.Itoa(totals.Worlds)},
			{"Worlds unreadable", strconv.Itoa(totals.Failed)},
			{"Standard elements", strconv.Itoa(totals.Standard)},
			{"STK elements", strconv.Itoa(totals.NonStandard)},
			{"% STK", formatPercent(totals.STKPercentage())},
			{"Possibly corrupted boards", strconv.Itoa(totals.CorruptedBoards)},
		},
	})
	md.PlainText("")

	if totals.Standard+totals.NonStandard > 0 {
		w.writePieChart(md, totals)
	}
	w.writeAlert(md, totals)
}

// writePieChart writes a mermaid pie chart of standard versus STK elements.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, totals Totals) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Element Color Usage"),
		piechart.WithShowData(true),
	)

	if totals.Standard > 0 {
		chart.LabelAndIntValue("Standard", uint64(totals.Standard))
	}
	if totals.NonStandard > 0 {
		chart.LabelAndIntValue("STK", uint64(totals.NonStandard))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes a single alert describing the most notable outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, totals Totals) {
	switch {
	case totals.Failed > 0:
		md.Cautionf("%d world(s) could not be read and are missing from this report.", totals.Failed)
	case totals.CorruptedBoards > 0:
		md.Warningf("%d board(s) may be corrupted. Their counts stop at the first unknown element.", totals.CorruptedBoards)
	case totals.NonStandard > 0:
		md.Note(fmt.Sprintf("%d element(s) use STK colors.", totals.NonStandard))
	default:
		md.Tip("Every element uses a standard color.")
	}
	md.PlainText("")
}

// writeSummary writes one row per world.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, reports []*model.WorldReport) {
	md.H2("Worlds")
	md.PlainText("")

	if len(reports) == 0 {
		md.PlainText("No worlds were audited.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		if r.Failed() {
			rows = append(rows, []string{"`" + r.Stats.WorldName + "`", "-", "-", "-", "-", "❌ " + r.Error})
			continue
		}

		status := "✅ OK"
		if r.CorruptedBoards() > 0 {
			status = "⚠️ Possibly corrupted"
		}
		rows = append(rows, []string{
			"`" + r.Stats.WorldName + "`",
			strconv.Itoa(r.Stats.Standard),
			strconv.Itoa(r.Stats.NonStandard),
			formatPercent(r.Stats.STKPercentage()),
			strconv.Itoa(r.CorruptedBoards()),
			status,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"World", "non-STK", "STK", "% STK", "Corrupted boards", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeCorruption lists every board flagged as possibly corrupted.
func (w *MarkdownWriter) writeCorruption(md *markdown.Markdown, reports []*model.WorldReport) {
	var items []string
	for _, r := range reports {
		for _, warn := range r.Warnings {
			items = append(items, fmt.Sprintf("`%s` board %d %q: unknown element %d at tile %d",
				warn.WorldName, warn.BoardIndex, warn.BoardTitle, warn.TypeID, warn.Tile))
		}
	}
	if len(items) == 0 {
		return
	}

	md.H2("Possibly Corrupted Boards")
	md.PlainText("")
	md.BulletList(items...)
	md.PlainText("")
}

// writeDetails writes a table of STK elements for each world that has
// detail records.
func (w *MarkdownWriter) writeDetails(md *markdown.Markdown, reports []*model.WorldReport) {
	header := false
	for _, r := range reports {
		if len(r.Details) == 0 {
			continue
		}
		if !header {
			md.H2("STK Elements")
			md.PlainText("")
			header = true
		}

		md.H3(r.Stats.WorldName)
		md.PlainText("")

		rows := make([][]string, len(r.Details))
		for i, d := range r.Details {
			rows[i] = []string{
				truncateString(d.BoardTitle, 50),
				strconv.Itoa(d.X) + "," + strconv.Itoa(d.Y),
				strconv.Itoa(d.Color),
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Board", "Position", "Color"},
			Rows:   rows,
		})
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [stkscan](https://github.com/nao1215/stkscan)*")
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
