package models

import (
	"github.com/shopspring/decimal"
)

// Transaction is a stored bank transaction.
type Transaction struct {
	ID                  int64               `json:"id"`
	UserID              int64               `json:"user_id"`
	Timestamp           string              `json:"timestamp"`
	Description         string              `json:"description"`
	TransactionCategory string              `json:"transaction_category"`
	Amount              decimal.Decimal     `json:"amount"`
	Currency            string              `json:"currency"`
	RunningBalance      decimal.NullDecimal `json:"running_balance"`
	CreatedAt           string              `json:"created_at"`
}

// ToPoint converts the transaction to a graph point. The plotted value is the
// running balance; transactions without one fall back to their own amount.
func (t *Transaction) ToPoint() TransactionPoint {
	value := t.Amount
	if t.RunningBalance.Valid {
		value = t.RunningBalance.Decimal
	}
	return TransactionPoint{
		Timestamp: t.Timestamp,
		Amount:    value.InexactFloat64(),
	}
}

// FormatForGraph converts stored transactions to graph points, keeping order.
func FormatForGraph(transactions []Transaction) []TransactionPoint {
	points := make([]TransactionPoint, 0, len(transactions))
	for i := range transactions {
		points = append(points, transactions[i].ToPoint())
	}
	return points
}

// BankTransaction is one entry of a bank statement export, as returned by the
// account data provider's transactions endpoint.
type BankTransaction struct {
	Timestamp           string          `json:"timestamp"`
	Description         string          `json:"description"`
	TransactionCategory string          `json:"transaction_category"`
	Amount              decimal.Decimal `json:"amount"`
	Currency            string          `json:"currency"`
	RunningBalance      *struct {
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
	} `json:"running_balance,omitempty"`
}

// ToTransaction maps a statement entry onto the stored representation.
func (b *BankTransaction) ToTransaction(userID int64) Transaction {
	tx := Transaction{
		UserID:              userID,
		Timestamp:           b.Timestamp,
		Description:         b.Description,
		TransactionCategory: b.TransactionCategory,
		Amount:              b.Amount,
		Currency:            b.Currency,
	}
	if tx.Currency == "" {
		tx.Currency = "GBP"
	}
	if b.RunningBalance != nil {
		tx.RunningBalance = decimal.NewNullDecimal(b.RunningBalance.Amount)
	}
	return tx
}
