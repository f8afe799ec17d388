package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	cases := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{0.01, "$0.01"},
		{2.5, "$2.50"},
		{1234.56, "$1,234.56"},
		{1000000, "$1,000,000.00"},
		{-5, "$-5.00"},
	}

	for _, tc := range cases {
		got, err := FormatCurrency(tc.amount)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestFormatCurrency_NonFinite(t *testing.T) {
	t.Parallel()

	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FormatCurrency(amount)
		assert.ErrorIs(t, err, ErrNotFinite)
	}
}

func TestFormatPercentage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value float64
		want  string
	}{
		{0, "0.00%"},
		{0.01, "0.01%"},
		{50, "50.00%"},
		{100, "100.00%"},
		{33.333333, "33.33%"},
	}

	for _, tc := range cases {
		got, err := FormatPercentage(tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestFormatPercentage_NonFinite(t *testing.T) {
	t.Parallel()

	_, err := FormatPercentage(math.NaN())
	assert.ErrorIs(t, err, ErrNotFinite)
}
