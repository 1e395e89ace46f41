package quotes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value float64
		ok    bool
	}{
		{"dot separator", "178.999", 178.999, true},
		{"comma separator", "178,999", 178.999, true},
		{"integer", "1033", 1033, true},
		{"negative", "-12,5", -12.5, true},
		{"scientific", "1.5e2", 150, true},
		{"empty", "", 0, false},
		{"trailing garbage", "12.5x", 0, false},
		{"letters", "abc", 0, false},
		{"lone separator", ",", 0, false},
		{"double separator", "1,234,5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ParseDecimal(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.value, v)
			}
		})
	}
}

func TestParseDecimalSeparatorEquivalence(t *testing.T) {
	pairs := [][2]string{
		{"1180,5", "1180.5"},
		{"0,00001", "0.00001"},
		{"130", "130"},
	}
	for _, p := range pairs {
		commaVal, commaOK := ParseDecimal(p[0])
		dotVal, dotOK := ParseDecimal(p[1])
		assert.True(t, commaOK)
		assert.True(t, dotOK)
		assert.Equal(t, dotVal, commaVal)
	}
}
