package launchctl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by -o.
const (
	OutputTable    = "table"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"
	OutputYAML     = "yaml"
)

// tabular is a result that can also print as a table.
type tabular interface {
	table(t table.Writer)
}

// titled results print their title above the table, unwrapped.
type titled interface {
	title() string
}

func writeResult(w io.Writer, format string, v tabular) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case OutputTable, OutputMarkdown:
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		v.table(t)
		var heading, rendered string
		if tv, ok := v.(titled); ok && tv.title() != "" {
			heading = tv.title()
		}
		if format == OutputMarkdown {
			if heading != "" {
				heading = "### " + heading
			}
			rendered = t.RenderMarkdown()
		} else {
			rendered = t.Render()
		}
		if heading != "" {
			if _, err := fmt.Fprintf(w, "%s\n\n", heading); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w, rendered)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want table, markdown, json or yaml)", format)
	}
}

func rightAligned(columns ...int) []table.ColumnConfig {
	configs := make([]table.ColumnConfig, 0, len(columns))
	for _, number := range columns {
		configs = append(configs, table.ColumnConfig{Number: number, Align: text.AlignRight, AlignFooter: text.AlignRight})
	}
	return configs
}
