package markdown

import "strings"

// renderTable renders buffered table rows as a single fragment. The first
// row is the header; a second row containing a dash run is the delimiter row
// and is skipped; every remaining row is data. Rows with a different cell
// count than the header are rendered as-is (no padding or truncation).
func renderTable(rows []string) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, cell := range splitCells(rows[0]) {
		b.WriteString("<th>" + Inline(cell) + "</th>")
	}
	b.WriteString("</tr></thead>")

	start := 1
	if len(rows) > 1 && strings.Contains(rows[1], "---") {
		start = 2
	}

	b.WriteString("<tbody>")
	for _, row := range rows[start:] {
		b.WriteString("<tr>")
		for _, cell := range splitCells(row) {
			b.WriteString("<td>" + Inline(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")

	return b.String()
}

// splitCells splits a table row into trimmed cell values, stripping one
// leading and one trailing separator if present.
func splitCells(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")

	cells := strings.Split(row, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
