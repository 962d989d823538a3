package models

// TransactionPoint is one observation in a user's balance history.
type TransactionPoint struct {
	Timestamp string  `json:"timestamp"`
	Amount    float64 `json:"amount"`
}

// APIResponse is the body of GET /api/transactions. Transactions is only
// meaningful when UserHasData is true.
type APIResponse struct {
	UserHasData  bool               `json:"user_has_data"`
	Transactions []TransactionPoint `json:"transactions,omitempty"`
}
