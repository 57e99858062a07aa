package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/denismitr/pcset/analysis"
	"github.com/denismitr/pcset/internal/config"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Write renders header and rows as a table, or encodes v for the json and
// yaml formats.
func Write(w io.Writer, format string, v any, header table.Row, rows []table.Row) error {
	switch format {
	case config.FormatTable:
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		if header != nil {
			tw.AppendHeader(header)
		}
		tw.AppendRows(rows)
		tw.SetStyle(table.StyleLight)
		tw.Render()
		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func Reports(w io.Writer, format string, reports []analysis.Report) error {
	header := table.Row{"#", "Label", "Set", "Card", "Normal order", "Prime form", "IC vector"}
	rows := make([]table.Row, 0, len(reports))
	for i, r := range reports {
		rows = append(rows, table.Row{
			i + 1,
			r.Label,
			r.Set,
			r.Cardinality,
			Ints(r.NormalOrder),
			Ints(r.PrimeForm),
			r.IntervalVector.String(),
		})
	}

	return Write(w, format, reports, header, rows)
}

// Ints renders a pitch-class sequence as [0,1,4,6].
func Ints(pcs []int) string {
	parts := make([]string, 0, len(pcs))
	for _, pc := range pcs {
		parts = append(parts, strconv.Itoa(pc))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
