package display

import (
	"fmt"

	"github.com/corinnekunze/amazon-purchase-search/internal/model"
)

// Scores at or above this are styled as high probability. The boundary
// is closed: exactly 70 counts as high.
const highProbabilityThreshold = 70

// Style markers attached to matches that carry a probability score.
const (
	ProbClassHigh = "high-probability"
	BadgeHigh     = "probability-high"
	BadgeMedium   = "probability-medium"
)

// Normalize converts a raw search response into the uniform display
// model. Each of the three lists is processed independently with the
// same rules; order within a list is preserved, never re-sorted.
func Normalize(raw *model.SearchResults) *ResultSet {
	rs := &ResultSet{TotalMatches: raw.TotalMatches}

	for i, m := range raw.ItemMatches {
		rs.ItemMatches = append(rs.ItemMatches, normalizeItem(m, i))
	}
	for i, m := range raw.OrderMatches {
		rs.OrderMatches = append(rs.OrderMatches, normalizeOrder(m, i))
	}
	for i, m := range raw.CombinationMatches {
		rs.CombinationMatches = append(rs.CombinationMatches, normalizeCombination(m, i))
	}

	rs.HasItemMatches = len(rs.ItemMatches) > 0
	rs.HasOrderMatches = len(rs.OrderMatches) > 0
	rs.HasCombinations = len(rs.CombinationMatches) > 0
	rs.NoMatches = raw.TotalMatches == 0

	return rs
}

func normalizeItem(m model.ItemMatch, position int) DisplayMatch {
	d := DisplayMatch{
		Index:         position + 1,
		DisplayAmount: m.Amount.Display(),
		Description:   m.Description,
		Date:          m.Date,
		OrderID:       m.OrderID,
		ItemURL:       m.ItemURL,
		OrderURL:      m.OrderURL,
	}
	if m.DaysFromTarget != nil {
		text := daysText(*m.DaysFromTarget)
		d.DaysText = &text
	}
	return d
}

func normalizeOrder(m model.OrderMatch, position int) DisplayMatch {
	d := DisplayMatch{
		Index:         position + 1,
		DisplayAmount: m.Total.Display(),
		Date:          m.Date,
		OrderID:       m.OrderID,
		OrderURL:      m.OrderURL,
		ItemCount:     m.ItemCount,
	}
	if m.DaysFromTarget != nil {
		text := daysText(*m.DaysFromTarget)
		d.DaysText = &text
	}
	for _, item := range m.Items {
		d.Items = append(d.Items, normalizeNested(item))
	}
	return d
}

func normalizeCombination(m model.CombinationMatch, position int) DisplayMatch {
	d := DisplayMatch{
		Index:         position + 1,
		DisplayAmount: combinationAmount(m),
		ItemCount:     m.ItemCount,
		SameOrder:     m.SameOrder,
		OrderIDs:      m.OrderIDs,
	}
	if m.DaysFromTarget != nil {
		text := daysText(*m.DaysFromTarget)
		d.DaysText = &text
	}
	if m.ProbabilityScore != nil {
		class, badge := probabilityMarkers(*m.ProbabilityScore)
		d.ProbClass = &class
		d.ProbBadge = &badge
	}
	for _, item := range m.Items {
		d.Items = append(d.Items, normalizeNested(item))
	}
	return d
}

// normalizeNested applies the amount and day rules only; nested items
// never carry probability fields. DaysText stays nil (JSON null) when
// the offset is absent.
func normalizeNested(m model.ItemMatch) DisplayItem {
	d := DisplayItem{
		ID:          m.ID,
		OrderID:     m.OrderID,
		Date:        m.Date,
		Amount:      m.Amount.Display(),
		Description: m.Description,
		ItemURL:     m.ItemURL,
		Quantity:    m.Quantity,
	}
	if m.DaysFromTarget != nil {
		text := daysText(*m.DaysFromTarget)
		d.DaysText = &text
	}
	return d
}

// combinationAmount keeps the historical field priority: a server that
// sends both total and total_amount gets total.
func combinationAmount(m model.CombinationMatch) string {
	if m.Total.Present() {
		return m.Total.Display()
	}
	return m.TotalAmount.Display()
}

// daysText renders a signed day offset as a human phrase. Zero is a
// meaningful, present value.
func daysText(days int) string {
	switch {
	case days == 0:
		return "Same day"
	case days < 0:
		return fmt.Sprintf("%dd before", -days)
	default:
		return fmt.Sprintf("%dd after", days)
	}
}

func probabilityMarkers(score float64) (class, badge string) {
	if score >= highProbabilityThreshold {
		return ProbClassHigh, BadgeHigh
	}
	return "", BadgeMedium
}
