package landlord

import (
	"fmt"
	"math"
)

// credit is a total-ordered float wrapper: the engine never lets NaN
// into a cache, and every comparison here is a plain float64 compare
// once that invariant holds. assertFinite is the one gate all credit
// values pass through on the way into a Cache.
type credit float64

func newCredit(v float64) credit {
	assertFinite("credit", v)
	return credit(v)
}

// assertFinite panics if v is NaN. This guards a programming invariant
// not a user-input error: it must never fire in a correct
// run, and a fired assertion means the decay/refresh arithmetic above
// it produced a NaN.
func assertFinite(what string, v float64) {
	if math.IsNaN(v) {
		panic(fmt.Sprintf("landlord: %s is NaN", what))
	}
}

func (c credit) float() float64 { return float64(c) }
