package models

// Split represents a shared expense pool and its settlement.
type Split struct {
	// ID is the unique identifier for the split (UUID format).
	ID string

	// Title is the human-readable name for the split.
	// Auto-generated from contributor names when left empty.
	Title string

	// Currency is the display currency code (e.g. "USD", "EUR").
	// It is presentation-only: all amounts in a split are assumed to be
	// in this one currency, and the engine never converts.
	Currency string

	// Contributors is the list of people in the pool and what each paid.
	Contributors []Contributor

	// Transfers is the settlement derived from Contributors.
	// Recomputed on every write; stored for cheap reads.
	Transfers []Transfer

	// CreatedAt is the Unix timestamp when the split was created.
	CreatedAt int64

	// CreatedBy is the ID of the user who owns the split.
	CreatedBy string
}

// Contributor is one participant in a split and the total they paid.
type Contributor struct {
	Name       string
	AmountPaid float64
}

// Transfer is a single settlement payment: From owes Amount to To.
type Transfer struct {
	From   string
	To     string
	Amount float64
}
