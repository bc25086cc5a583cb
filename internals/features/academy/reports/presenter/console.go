// internals/features/academy/reports/presenter/console.go
package presenter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteConsole prints numbered sections as grid tables. Titles are cyan and
// not-found messages red when color is on.
func WriteConsole(w io.Writer, sections []Section, color bool) error {
	paint := func(c text.Color, s string) string {
		if !color {
			return s
		}
		return c.Sprint(s)
	}

	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, paint(text.FgCyan, fmt.Sprintf("%d. %s:", i+1, s.Title))); err != nil {
			return err
		}

		switch {
		case !s.Found():
			_, err := fmt.Fprintln(w, paint(text.FgRed, s.Missing))
			if err != nil {
				return err
			}
		case s.Scalar != nil:
			if _, err := fmt.Fprintln(w, FormatGrade(*s.Scalar)); err != nil {
				return err
			}
		default:
			renderGrid(w, s)
		}
	}
	return nil
}

func renderGrid(w io.Writer, s Section) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleDefault)
	t.Style().Options.SeparateRows = true
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(s.Headers))
	for i, h := range s.Headers {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, r := range s.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			if f, ok := v.(float64); ok {
				row[i] = FormatGrade(f)
				continue
			}
			row[i] = v
		}
		t.AppendRow(row)
	}
	t.Render()
}

// FormatGrade prints a grade with the fewest digits that round-trip (78.5, not 78.50).
func FormatGrade(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
