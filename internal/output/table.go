// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
)

// DefaultPadding is the gap between columns.
const DefaultPadding = 2

// Table renders rows under headers as an aligned, borderless text table. With
// zero rows only the header line is rendered, so an empty query still shows
// what it would have listed. Trailing spaces are trimmed from every line.
func Table(headers []string, rows [][]string) string {
	return TableWithPadding(headers, rows, DefaultPadding)
}

// TableWithPadding is Table with an explicit column gap.
func TableWithPadding(headers []string, rows [][]string, pad int) string {
	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle   = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col > 0 {
				style = style.PaddingLeft(pad)
			}
			return style
		}).
		Headers(headers...).
		Rows(rows...)

	// lipgloss pads cells with no-break spaces; the report is plain text.
	rendered := strings.ReplaceAll(t.String(), "\u00a0", " ")

	lines := strings.Split(rendered, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimRight(line, " ")
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
