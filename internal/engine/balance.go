// Package engine computes debt settlements for a shared expense pool.
// It is a pure calculation package: it never mutates its inputs, holds no
// state, and is safe to call concurrently.
package engine

import "math"

// Epsilon is the tolerance, in currency units, below which an amount is
// treated as settled. One cent absorbs the floating-point error that
// accumulates when the fair share is a repeating decimal.
const Epsilon = 0.01

// Contributor is one participant and the total they paid into the pool.
type Contributor struct {
	Name       string
	AmountPaid float64
}

// Balance is a contributor's position relative to the fair share.
// Positive Net means the group owes them money; negative means they owe
// the group.
type Balance struct {
	Name string
	Net  float64
}

// FairShare returns the per-person share of the pool: total paid divided
// by the number of contributors, or 0 for an empty list.
func FairShare(contributors []Contributor) float64 {
	if len(contributors) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range contributors {
		total += c.AmountPaid
	}
	return total / float64(len(contributors))
}

// Balances returns each contributor's net position in input order.
func Balances(contributors []Contributor) []Balance {
	share := FairShare(contributors)
	balances := make([]Balance, len(contributors))
	for i, c := range contributors {
		balances[i] = Balance{Name: c.Name, Net: c.AmountPaid - share}
	}
	return balances
}

// RoundCents rounds an amount to 2 decimal places, half up.
func RoundCents(amount float64) float64 {
	return math.Floor(amount*100+0.5) / 100
}
