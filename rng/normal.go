package rng

import "math"

// NormFloat64 returns a standard-normal draw via the Marsaglia polar
// method: reject points outside the unit disc, then map the survivor
// through the Box-Muller transform. Consumes a variable, typically-one,
// number of uniform pairs (the rejection rate is 1-pi/4).
//
// One of the two values the polar method produces per accepted pair is
// cached and returned on the next call, so two NormFloat64 calls cost one
// rejection loop on average, not two.
func (src *Source) NormFloat64() float64 {
	if src.haveSpare {
		src.haveSpare = false
		return src.spare
	}

	for {
		u := 2*src.Float64() - 1
		v := 2*src.Float64() - 1
		s := u*u + v*v
		if s == 0 || s >= 1 {
			continue
		}
		mul := math.Sqrt(-2 * math.Log(s) / s)
		src.spare = v * mul
		src.haveSpare = true
		return u * mul
	}
}
