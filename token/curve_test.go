package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceCurve_ReferenceValues(t *testing.T) {
	tests := []struct {
		name string
		id   TokenID
		want Mutez
	}{
		{"first token costs 0.9 tez", 1, 900_000},
		{"second token costs 3.6 tez", 2, 3_600_000},
		{"tenth token costs 90 tez", 10, 90_000_000},
		{"last token costs 14745.6 tez", 128, 14_745_600_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultCurve.Price(tt.id))
		})
	}
}

func TestPriceCurve_StrictlyIncreasing(t *testing.T) {
	prev := DefaultCurve.Price(1)
	for id := TokenID(2); id <= DefaultMaxSupply; id++ {
		cur := DefaultCurve.Price(id)
		assert.Greater(t, cur, prev, "price(%d) must exceed price(%d)", id, id-1)
		prev = cur
	}
}

func TestPriceCurve_CustomConstants(t *testing.T) {
	// Linear curve: price(id) = id * 1 tez.
	linear := PriceCurve{Exponent: 1, Coefficient: 1, Scale: 1}
	assert.Equal(t, Tez(1), linear.Price(1))
	assert.Equal(t, Tez(7), linear.Price(7))

	// Cubic curve with a coarse scale.
	cubic := PriceCurve{Exponent: 3, Coefficient: 2, Scale: 4}
	assert.Equal(t, Mutez(2*27*MutezPerTez/4), cubic.Price(3))
}

func TestTez(t *testing.T) {
	assert.Equal(t, Mutez(0), Tez(0))
	assert.Equal(t, Mutez(1_000_000), Tez(1))
	assert.Equal(t, Mutez(10_000_000), Tez(10))
}
