package money

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKnownCurrency(t *testing.T) {
	for _, tc := range []struct {
		amount float64
		code   string
		want   string
	}{
		{1620, "EUR", "1\u00a0620,00\u00a0€"},
		{1800, "EGP", "1\u00a0800,00\u00a0EGP"},
		{1234567.891, "USD", "1\u00a0234\u00a0567,89\u00a0$US"},
		{0, "EUR", "0,00\u00a0€"},
	} {
		assert.Equal(t, tc.want, Format(tc.amount, tc.code), "%v %s", tc.amount, tc.code)
	}
}

func TestFormatSymbolFollowsNumber(t *testing.T) {
	for _, c := range Currencies() {
		out := FormatAmount(1800, c)
		require.NotEmpty(t, out, c)
		assert.True(t, strings.HasPrefix(out, "1"), "number first in %q", out)
	}
}

func TestFormatFallbackUnknownCode(t *testing.T) {
	assert.Equal(t, "12.50", Format(12.5, "ZZZ"))
	assert.Equal(t, "0.00", Format(0, ""))
}

func TestFormatFallbackIdempotent(t *testing.T) {
	first := Format(1234.567, "QQQ")
	second := Format(1234.567, "QQQ")
	assert.Equal(t, first, second)
	assert.Equal(t, "1234.57", first)
}

func TestFormatNonFiniteIsZero(t *testing.T) {
	assert.Equal(t, "0.00", Format(math.NaN(), "ZZZ"))
	assert.Equal(t, "0.00", Format(math.Inf(1), "ZZZ"))
	assert.Equal(t, Format(0, "EUR"), Format(math.NaN(), "EUR"))
}

func TestFallbackUsesTableSymbol(t *testing.T) {
	assert.Equal(t, "€3.00", fallback(3, "EUR"))
	assert.Equal(t, "£900.00", fallback(900, "EGP"))
	assert.Equal(t, "$1.10", fallback(1.1, "USD"))
}

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("EUR")
	require.NoError(t, err)
	assert.Equal(t, EUR, c)
	assert.True(t, c.IsValid())

	_, err = ParseCurrency("eur")
	assert.Error(t, err)
	assert.False(t, Currency("GBP").IsValid())
	assert.Equal(t, "", Currency("GBP").Symbol())
}
