package dto

// ContributorResponse mirrors ContributorRequest in responses.
type ContributorResponse struct {
	Name       string  `json:"name"`
	AmountPaid float64 `json:"amount_paid"`
}

// BalanceResponse is one contributor's position relative to fair share.
type BalanceResponse struct {
	Name string  `json:"name"`
	Net  float64 `json:"net"`
}

// TransferResponse is a single settlement payment.
type TransferResponse struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// SettleResponse is the result of a pure settlement computation.
type SettleResponse struct {
	FairShare float64            `json:"fair_share"`
	Balances  []BalanceResponse  `json:"balances"`
	Transfers []TransferResponse `json:"transfers"`
}

// SplitResponse is a full split with its derived settlement.
type SplitResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Currency     string                `json:"currency"`
	Contributors []ContributorResponse `json:"contributors"`
	FairShare    float64               `json:"fair_share"`
	Balances     []BalanceResponse     `json:"balances"`
	Transfers    []TransferResponse    `json:"transfers"`
	CreatedAt    int64                 `json:"created_at"`
}

// SplitSummary is a list-view projection of a split.
type SplitSummary struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Currency         string  `json:"currency"`
	Total            float64 `json:"total"`
	ContributorCount int     `json:"contributor_count"`
	CreatedAt        int64   `json:"created_at"`
}

// ListSplitsResponse wraps the split list.
type ListSplitsResponse struct {
	Splits []SplitSummary `json:"splits"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// AuthResponse carries a session token and the authenticated user.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewHealthResponse returns a healthy status.
func NewHealthResponse() HealthResponse {
	return HealthResponse{Status: "ok"}
}
