package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Display(t *testing.T) {
	tests := []struct {
		name  string
		money Money
		want  string
	}{
		{
			name:  "whole number gains two decimals",
			money: NewMoney(10),
			want:  "10.00",
		},
		{
			name:  "three decimals rounds like toFixed",
			money: NewMoney(10.555),
			want:  "10.55",
		},
		{
			name:  "one decimal pads",
			money: NewMoney(100.5),
			want:  "100.50",
		},
		{
			name:  "zero",
			money: NewMoney(0),
			want:  "0.00",
		},
		{
			name:  "negative",
			money: NewMoney(-3.5),
			want:  "-3.50",
		},
		{
			name:  "sentinel string passes through unchanged",
			money: NewMoneyString("N/A"),
			want:  "N/A",
		},
		{
			name:  "absent displays empty",
			money: Money{},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.money.Display())
		})
	}
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
		present bool
	}{
		{
			name:    "number",
			payload: `{"amount": 53.99}`,
			want:    "53.99",
			present: true,
		},
		{
			name:    "string sentinel",
			payload: `{"amount": "N/A"}`,
			want:    "N/A",
			present: true,
		},
		{
			name:    "absent field",
			payload: `{}`,
			want:    "",
			present: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target struct {
				Amount Money `json:"amount"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &target))
			assert.Equal(t, tt.present, target.Amount.Present())
			assert.Equal(t, tt.want, target.Amount.Display())
		})
	}
}
