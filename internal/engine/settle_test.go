package engine

import (
	"math"
	"reflect"
	"testing"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name         string
		contributors []Contributor
		want         []Transfer
	}{
		{
			name:         "empty input settles nothing",
			contributors: []Contributor{},
			want:         nil,
		},
		{
			name:         "single contributor settles nothing",
			contributors: []Contributor{{Name: "Alice", AmountPaid: 100}},
			want:         nil,
		},
		{
			name: "equal contributions settle nothing",
			contributors: []Contributor{
				{Name: "Alice", AmountPaid: 30},
				{Name: "Bob", AmountPaid: 30},
				{Name: "Carol", AmountPaid: 30},
			},
			want: nil,
		},
		{
			name: "simple pair",
			contributors: []Contributor{
				{Name: "Alice", AmountPaid: 100},
				{Name: "Bob", AmountPaid: 0},
			},
			want: []Transfer{
				{From: "Bob", To: "Alice", Amount: 50},
			},
		},
		{
			name: "three-way with one creditor",
			contributors: []Contributor{
				{Name: "Alice", AmountPaid: 90},
				{Name: "Bob", AmountPaid: 0},
				{Name: "Carol", AmountPaid: 30},
			},
			// fair share 40: Bob owes 40, Carol owes 10, largest debtor first.
			want: []Transfer{
				{From: "Bob", To: "Alice", Amount: 40},
				{From: "Carol", To: "Alice", Amount: 10},
			},
		},
		{
			name: "two creditors two debtors",
			contributors: []Contributor{
				{Name: "Alice", AmountPaid: 60},
				{Name: "Bob", AmountPaid: 40},
				{Name: "Carol", AmountPaid: 0},
				{Name: "Dave", AmountPaid: 0},
			},
			// fair share 25: Carol and Dave owe 25 each, Alice is owed 35,
			// Bob is owed 15.
			want: []Transfer{
				{From: "Carol", To: "Alice", Amount: 25},
				{From: "Dave", To: "Alice", Amount: 10},
				{From: "Dave", To: "Bob", Amount: 15},
			},
		},
		{
			name: "equal debtors keep input order",
			contributors: []Contributor{
				{Name: "Alice", AmountPaid: 60},
				{Name: "Bob", AmountPaid: 0},
				{Name: "Carol", AmountPaid: 0},
			},
			want: []Transfer{
				{From: "Bob", To: "Alice", Amount: 20},
				{From: "Carol", To: "Alice", Amount: 20},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Settle(tt.contributors)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Settle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettle_Rebalances(t *testing.T) {
	tests := []struct {
		name         string
		contributors []Contributor
	}{
		{
			name: "uneven cents",
			contributors: []Contributor{
				{Name: "Alice", AmountPaid: 70.10},
				{Name: "Bob", AmountPaid: 13.37},
				{Name: "Carol", AmountPaid: 0.03},
				{Name: "Dave", AmountPaid: 42},
			},
		},
		{
			name: "repeating decimal fair share",
			contributors: []Contributor{
				{Name: "Alice", AmountPaid: 100},
				{Name: "Bob", AmountPaid: 0},
				{Name: "Carol", AmountPaid: 0},
			},
		},
		{
			name: "many small contributions",
			contributors: []Contributor{
				{Name: "A", AmountPaid: 12.34},
				{Name: "B", AmountPaid: 5.67},
				{Name: "C", AmountPaid: 8.90},
				{Name: "D", AmountPaid: 0.01},
				{Name: "E", AmountPaid: 23.45},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share := FairShare(tt.contributors)
			transfers := Settle(tt.contributors)

			// Applying every transfer must bring everyone to the fair
			// share: the debtor's effective contribution goes up by the
			// amount they pay, the creditor's down by what they receive.
			adjusted := make(map[string]float64)
			for _, c := range tt.contributors {
				adjusted[c.Name] = c.AmountPaid
			}
			for _, tr := range transfers {
				if tr.From == tr.To {
					t.Errorf("self-transfer: %+v", tr)
				}
				if tr.Amount <= 0 {
					t.Errorf("non-positive transfer amount: %+v", tr)
				}
				adjusted[tr.From] += tr.Amount
				adjusted[tr.To] -= tr.Amount
			}

			for name, total := range adjusted {
				if math.Abs(total-share) > Epsilon {
					t.Errorf("%s adjusted total = %v, want fair share %v", name, total, share)
				}
			}

			if len(transfers) > len(tt.contributors)-1 {
				t.Errorf("got %d transfers for %d contributors, want at most %d",
					len(transfers), len(tt.contributors), len(tt.contributors)-1)
			}
		})
	}
}

func TestSettle_Deterministic(t *testing.T) {
	contributors := []Contributor{
		{Name: "Alice", AmountPaid: 55.55},
		{Name: "Bob", AmountPaid: 10},
		{Name: "Carol", AmountPaid: 10},
		{Name: "Dave", AmountPaid: 99.99},
	}

	first := Settle(contributors)
	second := Settle(contributors)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated calls diverged: %v vs %v", first, second)
	}
}

func TestSettle_DoesNotMutateInput(t *testing.T) {
	contributors := []Contributor{
		{Name: "Alice", AmountPaid: 90},
		{Name: "Bob", AmountPaid: 0},
		{Name: "Carol", AmountPaid: 30},
	}
	original := make([]Contributor, len(contributors))
	copy(original, contributors)

	Settle(contributors)

	if !reflect.DeepEqual(contributors, original) {
		t.Errorf("input mutated: %v, want %v", contributors, original)
	}
}

func TestSettle_RoundsToCents(t *testing.T) {
	// 100 over three people gives a repeating-decimal fair share.
	contributors := []Contributor{
		{Name: "Alice", AmountPaid: 100},
		{Name: "Bob", AmountPaid: 0},
		{Name: "Carol", AmountPaid: 0},
	}

	transfers := Settle(contributors)
	if len(transfers) != 2 {
		t.Fatalf("expected 2 transfers, got %d", len(transfers))
	}

	receivedByAlice := 0.0
	for _, tr := range transfers {
		cents := tr.Amount * 100
		if math.Abs(cents-math.Floor(cents+0.5)) > 1e-9 {
			t.Errorf("amount %v has more than 2 decimal places", tr.Amount)
		}
		if tr.To != "Alice" {
			t.Errorf("unexpected creditor %s", tr.To)
		}
		receivedByAlice += tr.Amount
	}

	// Alice is owed 66.666...; each of the two transfers may drop up to
	// half a cent in rounding.
	owed := 100.0 - FairShare(contributors)
	if math.Abs(receivedByAlice-RoundCents(owed)) > 0.01*float64(len(transfers)) {
		t.Errorf("Alice received %v, owed %v", receivedByAlice, owed)
	}
}
