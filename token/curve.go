package token

// Reference curve constants, fixed at deployment.
const (
	// DefaultMaxSupply is the supply cap of the reference deployment.
	DefaultMaxSupply TokenID = 128

	// DefaultExponent is the bonding-curve exponent K.
	DefaultExponent uint64 = 2

	// DefaultCoefficient is the bonding-curve coefficient C.
	DefaultCoefficient uint64 = 900

	// DefaultScale is the divisor D applied when converting the curve value
	// to tez.
	DefaultScale uint64 = 1000
)

// PriceCurve is the bonding-curve price function of the series:
// price(id) = tez(1) * (id^Exponent * Coefficient) / Scale.
// The curve is strictly increasing and convex for Exponent >= 1, so each
// subsequent token costs more than the last.
type PriceCurve struct {
	Exponent    uint64
	Coefficient uint64
	Scale       uint64
}

// DefaultCurve is the reference deployment curve: price(id) = id^2 * 0.9 tez.
var DefaultCurve = PriceCurve{
	Exponent:    DefaultExponent,
	Coefficient: DefaultCoefficient,
	Scale:       DefaultScale,
}

// Price returns the mint cost of the given token id in mutez.
func (c PriceCurve) Price(id TokenID) Mutez {
	q := pow(uint64(id), c.Exponent) * c.Coefficient
	return Mutez(MutezPerTez * q / c.Scale)
}

// pow computes a^b by repeated multiplication. The exponent is always the
// small fixed curve constant, so no fast exponentiation is needed.
func pow(a, b uint64) uint64 {
	result := uint64(1)
	for i := uint64(0); i < b; i++ {
		result *= a
	}
	return result
}
