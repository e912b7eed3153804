package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bperf"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the report as a title and an Effect | Return table.
func ReportMarkdown(r bperf.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance of %s", r.ID))
	doc.PlainText(fmt.Sprintf("From %s to %s.", r.Range.From, r.Range.To))

	doc.H2("Attribution")

	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		rows = append(rows, []string{e.Name, e.Value + "%"})
	}
	doc.CustomTable(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Effect", "Return"},
		Rows:      rows,
	}, md.TableOptions{AutoFormatHeaders: false})

	return doc.String()
}
