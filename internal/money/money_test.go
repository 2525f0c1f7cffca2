package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SeparatorConventions(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1,234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"$ 50,000.00", "50000.00"},
		{"50,000", "50000.00"},
		{"1.234.567,89", "1234567.89"},
		{"0.99", "0.99"},
		{"1000", "1000.00"},
	}
	for _, tc := range cases {
		d, neg, ok := Parse(tc.in)
		require.True(t, ok, "Parse(%q)", tc.in)
		assert.False(t, neg, "Parse(%q)", tc.in)
		assert.Equal(t, tc.want, d.StringFixed(2), "Parse(%q)", tc.in)
	}
}

func TestParse_SignMarkers(t *testing.T) {
	cases := []struct {
		in       string
		want     string
		negative bool
	}{
		{"-$12.00", "12.00", true},
		{"+$75.00", "75.00", false},
		{"(+) $50,000.00", "50000.00", false},
		{"(-) $ 1,500.00", "1500.00", true},
		{"123.45-", "123.45", true},
		{"- 200.00", "200.00", true},
	}
	for _, tc := range cases {
		d, neg, ok := Parse(tc.in)
		require.True(t, ok, "Parse(%q)", tc.in)
		assert.Equal(t, tc.negative, neg, "Parse(%q)", tc.in)
		assert.Equal(t, tc.want, d.StringFixed(2), "Parse(%q)", tc.in)
	}
}

func TestParse_Rejects(t *testing.T) {
	for _, in := range []string{"", "-", "   ", "SALDO", "$", "$ -"} {
		_, _, ok := Parse(in)
		assert.False(t, ok, "Parse(%q) should not parse", in)
	}
}
