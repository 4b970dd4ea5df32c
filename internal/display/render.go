package display

import (
	"fmt"
	"strings"

	"github.com/corinnekunze/amazon-purchase-search/internal/cli"
)

// Renderer turns a normalized result set into styled terminal output.
// It is a pure function of the result set: template selection per
// category and nothing else.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the full report for one search. Each category section
// appears only when its list is non-empty; the no-matches banner keys
// off the server's total_matches, independently of the lists.
func (r *Renderer) Render(rs *ResultSet) string {
	var b strings.Builder

	if rs.NoMatches {
		b.WriteString(cli.FormatWarning("No matches found. Try a wider date range or a different amount."))
		b.WriteString("\n")
	} else {
		b.WriteString(cli.FormatTitle(fmt.Sprintf("%d matches found", rs.TotalMatches)))
		b.WriteString("\n")
	}

	if rs.HasItemMatches {
		b.WriteString("\n")
		b.WriteString(cli.TitleStyle.Render("Individual items"))
		b.WriteString("\n")
		for _, m := range rs.ItemMatches {
			r.renderItem(&b, m)
		}
	}

	if rs.HasOrderMatches {
		b.WriteString("\n")
		b.WriteString(cli.TitleStyle.Render("Whole orders"))
		b.WriteString("\n")
		for _, m := range rs.OrderMatches {
			r.renderOrder(&b, m)
		}
	}

	if rs.HasCombinations {
		b.WriteString("\n")
		b.WriteString(cli.TitleStyle.Render("Combinations"))
		b.WriteString("\n")
		for _, m := range rs.CombinationMatches {
			r.renderCombination(&b, m)
		}
	}

	return b.String()
}

func (r *Renderer) renderItem(b *strings.Builder, m DisplayMatch) {
	fmt.Fprintf(b, "  %d. $%s  %s%s\n", m.Index, m.DisplayAmount, m.Description, daysSuffix(m.DaysText))
	detail := make([]string, 0, 2)
	if m.OrderID != "" {
		detail = append(detail, "order "+m.OrderID)
	}
	if m.Date != "" {
		detail = append(detail, m.Date)
	}
	if len(detail) > 0 {
		fmt.Fprintf(b, "     %s\n", cli.SubtleStyle.Render(strings.Join(detail, ", ")))
	}
}

func (r *Renderer) renderOrder(b *strings.Builder, m DisplayMatch) {
	fmt.Fprintf(b, "  %d. $%s  order %s", m.Index, m.DisplayAmount, m.OrderID)
	if m.ItemCount > 0 {
		fmt.Fprintf(b, " (%d items)", m.ItemCount)
	}
	fmt.Fprintf(b, "%s\n", daysSuffix(m.DaysText))
	if m.Date != "" {
		fmt.Fprintf(b, "     %s\n", cli.SubtleStyle.Render(m.Date))
	}
}

func (r *Renderer) renderCombination(b *strings.Builder, m DisplayMatch) {
	fmt.Fprintf(b, "  %d. $%s  %d items", m.Index, m.DisplayAmount, m.ItemCount)
	if m.SameOrder {
		b.WriteString(", same order")
	}
	if m.ProbBadge != nil {
		b.WriteString("  ")
		b.WriteString(renderBadge(*m.ProbBadge))
	}
	b.WriteString("\n")
	for _, item := range m.Items {
		fmt.Fprintf(b, "     • $%s  %s%s\n", item.Amount, item.Description, daysSuffix(item.DaysText))
	}
}

// renderBadge maps the normalizer's badge marker onto a style.
func renderBadge(badge string) string {
	switch badge {
	case BadgeHigh:
		return cli.HighBadgeStyle.Render("high probability")
	default:
		return cli.MediumBadgeStyle.Render("medium probability")
	}
}

func daysSuffix(daysText *string) string {
	if daysText == nil {
		return ""
	}
	return " — " + *daysText
}
