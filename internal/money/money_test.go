package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.00", Cents(0).Format())
	assert.Equal(t, "5.99", Cents(599).Format())
	assert.Equal(t, "129.97", Cents(12997).Format())
	assert.Equal(t, "146.36", Cents(14636).Format())
	assert.Equal(t, "-3.05", Cents(-305).Format())
}

func TestParseDecimal(t *testing.T) {
	cases := map[string]Cents{
		"29.99": 2999,
		"30":    3000,
		"30.5":  3050,
		".99":   99,
		"-1.25": -125,
	}
	for in, want := range cases {
		got, err := ParseDecimal(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "abc", "1.999", "1.2.3"} {
		_, err := ParseDecimal(in)
		assert.Error(t, err, in)
	}
}
