package cmd

import (
	"encoding/hex"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/temirov/chaotic-gateway/internal/fingerprint"
)

const quantizedWordSize = fingerprint.QuantizedSize / fingerprint.Iterations

// renderTrace lays out the seed summary followed by one row per logistic-map step.
func renderTrace(trace fingerprint.Trace) string {
	summary := newTraceTable(table.Row{"field", "value"})
	summary.AppendRows([]table.Row{
		{"seed", hex.EncodeToString(trace.Seed[:])},
		{"x0", formatUnit(trace.X0)},
		{"fingerprint", trace.Digest.String()},
	})

	steps := newTraceTable(table.Row{"step", "x", "quantized"})
	for index, x := range trace.Sequence {
		word := trace.Quantized[index*quantizedWordSize : (index+1)*quantizedWordSize]
		steps.AppendRow(table.Row{index + 1, formatUnit(x), hex.EncodeToString(word)})
	}
	steps.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return summary.Render() + "\n" + steps.Render() + "\n"
}

func newTraceTable(header table.Row) table.Writer {
	writer := table.NewWriter()
	writer.SetStyle(table.StyleLight)
	writer.AppendHeader(header)
	return writer
}

func formatUnit(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
