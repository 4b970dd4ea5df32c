package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corinnekunze/amazon-purchase-search/internal/model"
)

func TestRenderer_Render(t *testing.T) {
	renderer := NewRenderer()

	tests := []struct {
		name        string
		raw         *model.SearchResults
		contains    []string
		notContains []string
	}{
		{
			name: "no matches",
			raw:  &model.SearchResults{TotalMatches: 0},
			contains: []string{
				"No matches found",
			},
			notContains: []string{
				"Individual items",
				"Whole orders",
				"Combinations",
			},
		},
		{
			name: "item matches only",
			raw: &model.SearchResults{
				TotalMatches: 1,
				ItemMatches: []model.ItemMatch{
					{
						Amount:         model.NewMoney(53.99),
						Description:    "USB-C cable",
						Date:           "2024-03-15",
						OrderID:        "112-0001",
						DaysFromTarget: intPtr(0),
					},
				},
			},
			contains: []string{
				"1 matches found",
				"Individual items",
				"$53.99",
				"USB-C cable",
				"Same day",
				"order 112-0001",
			},
			notContains: []string{
				"Whole orders",
				"Combinations",
				"No matches found",
			},
		},
		{
			name: "order matches",
			raw: &model.SearchResults{
				TotalMatches: 1,
				OrderMatches: []model.OrderMatch{
					{
						Total:          model.NewMoney(120),
						OrderID:        "112-0002",
						ItemCount:      3,
						Date:           "2024-03-13",
						DaysFromTarget: intPtr(-2),
					},
				},
			},
			contains: []string{
				"Whole orders",
				"$120.00",
				"order 112-0002",
				"(3 items)",
				"2d before",
			},
		},
		{
			name: "high probability combination",
			raw: &model.SearchResults{
				TotalMatches: 1,
				CombinationMatches: []model.CombinationMatch{
					{
						TotalAmount:      model.NewMoney(100.5),
						ItemCount:        2,
						SameOrder:        true,
						ProbabilityScore: floatPtr(85),
						Items: []model.ItemMatch{
							{Amount: model.NewMoney(50.25), Description: "gadget", DaysFromTarget: intPtr(-5)},
							{Amount: model.NewMoney(50.25), Description: "widget", DaysFromTarget: intPtr(-4)},
						},
					},
				},
			},
			contains: []string{
				"Combinations",
				"$100.50",
				"2 items",
				"same order",
				"high probability",
				"gadget",
				"5d before",
				"widget",
				"4d before",
			},
		},
		{
			name: "medium probability combination",
			raw: &model.SearchResults{
				TotalMatches: 1,
				CombinationMatches: []model.CombinationMatch{
					{
						TotalAmount:      model.NewMoney(20),
						ItemCount:        1,
						ProbabilityScore: floatPtr(40),
					},
				},
			},
			contains: []string{
				"medium probability",
			},
			notContains: []string{
				"high probability",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderer.Render(Normalize(tt.raw))
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}
