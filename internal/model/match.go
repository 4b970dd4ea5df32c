package model

// The server reports three distinct match shapes. They are modeled as
// separate types rather than one field-optional blob so downstream code
// can dispatch on the kind instead of probing which fields happen to be
// set.

// ItemMatch is a single line item whose price equals the target amount.
// The same shape appears nested inside order and combination matches.
type ItemMatch struct {
	ID             int    `json:"id,omitempty"`
	OrderID        string `json:"order_id,omitempty"`
	Date           string `json:"date,omitempty"`
	Amount         Money  `json:"amount"`
	Description    string `json:"description,omitempty"`
	ItemURL        string `json:"item_url,omitempty"`
	OrderURL       string `json:"order_url,omitempty"`
	ASIN           string `json:"asin,omitempty"`
	Quantity       int    `json:"quantity,omitempty"`
	DaysFromTarget *int   `json:"days_from_target,omitempty"`
	TargetDate     string `json:"target_date,omitempty"`
	SearchType     string `json:"search_type,omitempty"`
}

// OrderMatch is a whole order whose total equals the target amount.
type OrderMatch struct {
	OrderID        string      `json:"order_id,omitempty"`
	Date           string      `json:"date,omitempty"`
	Total          Money       `json:"total"`
	ItemCount      int         `json:"item_count,omitempty"`
	Items          []ItemMatch `json:"items,omitempty"`
	OrderURL       string      `json:"order_url,omitempty"`
	DaysFromTarget *int        `json:"days_from_target,omitempty"`
	TargetDate     string      `json:"target_date,omitempty"`
	SearchType     string      `json:"search_type,omitempty"`
}

// CombinationMatch is a set of items whose amounts sum to the target.
// The server sends the sum as total_amount, though older responses used
// total; both are modeled so the historical priority can be kept.
type CombinationMatch struct {
	Items             []ItemMatch `json:"items"`
	Total             Money       `json:"total"`
	TotalAmount       Money       `json:"total_amount"`
	ItemCount         int         `json:"item_count,omitempty"`
	AvgDaysFromTarget float64     `json:"avg_days_from_target,omitempty"`
	ProbabilityScore  *float64    `json:"probability_score,omitempty"`
	SameOrder         bool        `json:"same_order,omitempty"`
	OrderIDs          []string    `json:"order_ids,omitempty"`
	DaysFromTarget    *int        `json:"days_from_target,omitempty"`
	SearchType        string      `json:"search_type,omitempty"`
}

// QueryEcho is the server's restatement of the search parameters.
type QueryEcho struct {
	TargetDate      string  `json:"target_date"`
	TargetAmount    float64 `json:"target_amount"`
	SearchRangeDays int     `json:"search_range_days"`
	SearchType      string  `json:"search_type"`
	MaxComboItems   int     `json:"max_combo_items"`
}

// SearchResults is the raw, un-normalized search response.
type SearchResults struct {
	Query              *QueryEcho         `json:"query,omitempty"`
	TotalMatches       int                `json:"total_matches"`
	ItemMatches        []ItemMatch        `json:"item_matches"`
	OrderMatches       []OrderMatch       `json:"order_matches"`
	CombinationMatches []CombinationMatch `json:"combination_matches"`
}
