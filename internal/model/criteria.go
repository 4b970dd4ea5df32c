// Package model defines the search inputs and the wire shapes the
// purchase-search server returns.
package model

import (
	"fmt"
	"net/url"
)

// SearchType selects which match kinds the server computes.
type SearchType string

// Search types accepted by the server.
const (
	SearchAll         SearchType = "all"
	SearchItem        SearchType = "item"
	SearchOrder       SearchType = "order"
	SearchCombination SearchType = "combination"
)

// ParseSearchType validates a user-facing flag value. This exists for
// flag ergonomics only; Criteria still forwards whatever it holds.
func ParseSearchType(s string) (SearchType, error) {
	switch SearchType(s) {
	case SearchAll, SearchItem, SearchOrder, SearchCombination:
		return SearchType(s), nil
	}
	return "", fmt.Errorf("unknown search type %q (want all, item, order or combination)", s)
}

// Criteria carries the five search inputs exactly as the user entered
// them. The server is authoritative for validation, so nothing here is
// coerced or checked; malformed values travel to the server as-is.
type Criteria struct {
	Date          string
	Amount        string
	DaysRange     string
	SearchType    string
	MaxComboItems string
}

// Values encodes the criteria as the search endpoint's query parameters.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	v.Set("date", c.Date)
	v.Set("amount", c.Amount)
	v.Set("days_range", c.DaysRange)
	v.Set("search_type", c.SearchType)
	v.Set("max_combo_items", c.MaxComboItems)
	return v
}
