package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPointUsesRunningBalance(t *testing.T) {
	tx := Transaction{
		Timestamp:      "2024-01-01T00:00:00+00:00",
		Amount:         decimal.RequireFromString("-12.50"),
		RunningBalance: decimal.NewNullDecimal(decimal.RequireFromString("987.50")),
	}

	assert.Equal(t, TransactionPoint{Timestamp: "2024-01-01T00:00:00+00:00", Amount: 987.5}, tx.ToPoint())
}

func TestToPointFallsBackToAmount(t *testing.T) {
	tx := Transaction{Timestamp: "2024-01-02", Amount: decimal.RequireFromString("10")}

	assert.Equal(t, 10.0, tx.ToPoint().Amount)
}

func TestFormatForGraphKeepsOrder(t *testing.T) {
	txs := []Transaction{
		{Timestamp: "b", Amount: decimal.NewFromInt(2)},
		{Timestamp: "a", Amount: decimal.NewFromInt(1)},
	}

	points := FormatForGraph(txs)

	require.Len(t, points, 2)
	assert.Equal(t, "b", points[0].Timestamp)
	assert.Equal(t, "a", points[1].Timestamp)
	assert.Empty(t, FormatForGraph(nil))
}

func TestBankTransactionDecode(t *testing.T) {
	raw := `{
		"timestamp": "2018-03-06T00:00:00",
		"description": "GOOGLE PLAY STORE",
		"transaction_category": "PURCHASE",
		"amount": -2.99,
		"currency": "GBP",
		"running_balance": {"amount": 1238.6, "currency": "GBP"}
	}`

	var bt BankTransaction
	require.NoError(t, json.Unmarshal([]byte(raw), &bt))

	tx := bt.ToTransaction(7)
	assert.Equal(t, int64(7), tx.UserID)
	assert.Equal(t, "PURCHASE", tx.TransactionCategory)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("-2.99")))
	require.True(t, tx.RunningBalance.Valid)
	assert.Equal(t, 1238.6, tx.ToPoint().Amount)
}

func TestAPIResponseOmitsTransactionsWhenEmpty(t *testing.T) {
	body, err := json.Marshal(APIResponse{UserHasData: false})
	require.NoError(t, err)

	assert.JSONEq(t, `{"user_has_data": false}`, string(body))
}
