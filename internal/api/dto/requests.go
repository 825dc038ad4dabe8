package dto

// ContributorRequest is one participant and the total they paid.
type ContributorRequest struct {
	Name       string  `json:"name"`
	AmountPaid float64 `json:"amount_paid"`
}

// CreateSplitRequest creates a new split.
type CreateSplitRequest struct {
	Title        string               `json:"title"`
	Currency     string               `json:"currency"`
	Contributors []ContributorRequest `json:"contributors"`
}

// UpdateSplitRequest replaces an existing split's contents.
type UpdateSplitRequest struct {
	Title        string               `json:"title"`
	Currency     string               `json:"currency"`
	Contributors []ContributorRequest `json:"contributors"`
}

// SettleRequest asks for a settlement computation without persisting
// anything.
type SettleRequest struct {
	Contributors []ContributorRequest `json:"contributors"`
}

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
