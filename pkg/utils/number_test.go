package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 1349.99, RoundWithTwoDecimalPlace(1349.986))
	assert.Equal(t, 29.99, RoundWithTwoDecimalPlace(29.99))
	assert.Equal(t, -10.56, RoundWithTwoDecimalPlace(-10.556))
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		value    int64
		expected string
	}{
		{0, "0"},
		{2, "2"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatThousands(tt.value))
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0.00"},
		{1799.98, "1,799.98"},
		{1234567.891, "1,234,567.89"},
		{5.5, "5.50"},
		{-1234.56, "-1,234.56"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatMoney(tt.value))
	}
}
