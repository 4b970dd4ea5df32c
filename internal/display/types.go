// Package display normalizes the server's heterogeneous match shapes
// into one display model and renders it.
package display

// DisplayItem is a normalized line item nested under an order or a
// combination. DaysText is always present in JSON output, as null when
// the server sent no day offset; top-level matches instead omit the key
// entirely. The asymmetry matches the original wire format and is kept
// deliberately.
type DisplayItem struct {
	DaysText    *string `json:"daysText"`
	OrderID     string  `json:"order_id,omitempty"`
	Date        string  `json:"date,omitempty"`
	Amount      string  `json:"amount"`
	Description string  `json:"description,omitempty"`
	ItemURL     string  `json:"item_url,omitempty"`
	ID          int     `json:"id,omitempty"`
	Quantity    int     `json:"quantity,omitempty"`
}

// DisplayMatch is the uniform display model, the same shape no matter
// which match kind it came from. Index is the 1-based position within
// its own result list. ProbClass and ProbBadge exist only when the
// server sent a probability score; ProbClass may then be the empty
// string, which is why both are pointers rather than omitempty strings.
type DisplayMatch struct {
	DaysText      *string       `json:"daysText,omitempty"`
	ProbClass     *string       `json:"probClass,omitempty"`
	ProbBadge     *string       `json:"probBadge,omitempty"`
	DisplayAmount string        `json:"displayAmount"`
	Description   string        `json:"description,omitempty"`
	Date          string        `json:"date,omitempty"`
	OrderID       string        `json:"order_id,omitempty"`
	ItemURL       string        `json:"item_url,omitempty"`
	OrderURL      string        `json:"order_url,omitempty"`
	OrderIDs      []string      `json:"order_ids,omitempty"`
	Items         []DisplayItem `json:"items,omitempty"`
	Index         int           `json:"index"`
	ItemCount     int           `json:"item_count,omitempty"`
	SameOrder     bool          `json:"same_order,omitempty"`
}

// ResultSet is one search's worth of normalized matches plus the
// booleans the presenter branches on. TotalMatches and the list lengths
// are independent signals taken from the server as-is; a response where
// they disagree is rendered without reconciliation.
type ResultSet struct {
	ItemMatches        []DisplayMatch `json:"item_matches"`
	OrderMatches       []DisplayMatch `json:"order_matches"`
	CombinationMatches []DisplayMatch `json:"combination_matches"`
	TotalMatches       int            `json:"total_matches"`
	HasItemMatches     bool           `json:"hasItemMatches"`
	HasOrderMatches    bool           `json:"hasOrderMatches"`
	HasCombinations    bool           `json:"hasCombinations"`
	NoMatches          bool           `json:"noMatches"`
}
