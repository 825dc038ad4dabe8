package engine

import "sort"

// Transfer is a single directed payment closing part or all of one
// debtor's obligation to one creditor.
type Transfer struct {
	From   string
	To     string
	Amount float64
}

// party is a working copy used during matching. The mutable remaining
// balance lives here, never in the caller's Contributor records.
type party struct {
	name      string
	remaining float64
}

// Settle converts a contributor list into a small set of transfers that
// equalizes everyone's net contribution. It uses greedy matching: the
// largest remaining debtor pays the largest remaining creditor until one
// side is exhausted. The output is deterministic for a given input
// sequence; ties between equal amounts keep their relative input order.
//
// Fewer than two contributors means there is nothing to settle and the
// result is empty. Settle never fails; input validation (unique names,
// non-negative amounts) is the caller's responsibility.
func Settle(contributors []Contributor) []Transfer {
	if len(contributors) < 2 {
		return nil
	}

	var creditors, debtors []party
	for _, b := range Balances(contributors) {
		switch {
		case b.Net > Epsilon:
			creditors = append(creditors, party{name: b.Name, remaining: b.Net})
		case b.Net < -Epsilon:
			debtors = append(debtors, party{name: b.Name, remaining: -b.Net})
		}
	}

	// Largest amounts first. The sort must be stable for deterministic
	// output on repeated calls with the same input sequence.
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].remaining > creditors[j].remaining
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].remaining > debtors[j].remaining
	})

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := debtor.remaining
		if creditor.remaining < amount {
			amount = creditor.remaining
		}

		if amount > Epsilon {
			transfers = append(transfers, Transfer{
				From:   debtor.name,
				To:     creditor.name,
				Amount: RoundCents(amount),
			})
		}

		debtor.remaining -= amount
		creditor.remaining -= amount

		// Each step fully resolves at least one side, so the loop runs
		// at most len(debtors)+len(creditors) times.
		if debtor.remaining < Epsilon {
			i++
		}
		if creditor.remaining < Epsilon {
			j++
		}
	}

	return transfers
}
