package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Money is an amount as the server sent it. Amounts are usually JSON
// numbers, but the server may substitute a sentinel string such as "N/A",
// and that sentinel must survive to the display layer unchanged.
type Money struct {
	raw     string
	value   float64
	numeric bool
	present bool
}

// NewMoney builds a numeric Money. Mostly useful in tests.
func NewMoney(v float64) Money {
	return Money{value: v, numeric: true, present: true}
}

// NewMoneyString builds a non-numeric Money carrying a sentinel value.
func NewMoneyString(s string) Money {
	return Money{raw: s, present: true}
}

// UnmarshalJSON accepts either a number or a string.
func (m *Money) UnmarshalJSON(data []byte) error {
	m.present = true

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		m.value = f
		m.numeric = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		m.raw = s
		return nil
	}

	// Anything else (bool, object) is kept verbatim rather than rejected;
	// missing or malformed optional fields are not errors.
	m.raw = strings.TrimSpace(string(data))
	return nil
}

// MarshalJSON re-emits the value in the shape it arrived.
func (m Money) MarshalJSON() ([]byte, error) {
	if m.numeric {
		return json.Marshal(m.value)
	}
	return json.Marshal(m.raw)
}

// Present reports whether the field appeared in the server response at all.
func (m Money) Present() bool {
	return m.present
}

// Display formats a numeric amount with exactly two decimals and passes
// any non-numeric value through unchanged. An absent amount displays as
// an empty string.
func (m Money) Display() string {
	if !m.present {
		return ""
	}
	if m.numeric {
		return fmt.Sprintf("%.2f", m.value)
	}
	return m.raw
}
