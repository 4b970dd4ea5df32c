package tui

import (
	"fmt"
	"strings"

	"github.com/corinnekunze/amazon-purchase-search/internal/cli"
)

var fieldLabels = [fieldCount]string{
	fieldDate:      "Date",
	fieldAmount:    "Amount",
	fieldDaysRange: "Days range",
	fieldMaxCombo:  "Max combo items",
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(cli.FormatTitle("Amazon purchase search"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseUpload:
		b.WriteString("Purchase history CSV:\n")
		b.WriteString(m.file.View())
		b.WriteString("\n\n")
		b.WriteString(cli.SubtleStyle.Render("enter: upload  esc: quit"))
	case phaseSearch:
		for i := range m.fields {
			fmt.Fprintf(&b, "%-16s %s\n", fieldLabels[i]+":", m.fields[i].View())
		}
		fmt.Fprintf(&b, "%-16s %s\n", "Search type:", cli.TitleStyle.Render(string(searchTypes[m.searchType])))
		b.WriteString("\n")
		b.WriteString(cli.SubtleStyle.Render("enter: search  tab: next field  ctrl+t: search type  esc: quit"))
	}

	b.WriteString("\n\n")
	if m.busy {
		b.WriteString(m.spin.View() + " " + m.status)
	} else {
		b.WriteString(m.status)
	}
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString(cli.FormatError(m.errText))
		b.WriteString("\n")
	}

	if m.results != "" {
		b.WriteString("\n")
		b.WriteString(m.results)
	}

	return b.String()
}
