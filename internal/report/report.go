// Package report renders the plain-text result files the donor and
// recipient tools hand out: fixed-width tables a user can print and carry
// when they will not have internet access later.  File names are derived
// from the active filter selections.
package report

import "strings"

// colWidths returns the render width of each column: the widest cell or
// header, plus a fixed gutter.
func colWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	for i := range widths {
		widths[i] += 4
	}
	return widths
}

// writeRow pads every cell to its column width.  The trailing cell is
// written unpadded so lines do not end in spaces.
func writeRow(b *strings.Builder, widths []int, cells []string) {
	for i, cell := range cells {
		if i == len(cells)-1 {
			b.WriteString(cell)
			break
		}
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", widths[i]-len(cell)))
	}
	b.WriteByte('\n')
}

// stripSpaces removes all whitespace from a filter label so it can be
// embedded in a file name.
func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
