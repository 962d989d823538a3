package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePreservesOrder(t *testing.T) {
	resp, err := Decode([]byte(`{"user_has_data": true, "transactions": [
		{"timestamp": "2024-01-03", "amount": 3},
		{"timestamp": "2024-01-01", "amount": 1.5},
		{"timestamp": "2024-01-02", "amount": -2}
	]}`))

	require.NoError(t, err)
	require.Len(t, resp.Transactions, 3)
	assert.Equal(t, "2024-01-03", resp.Transactions[0].Timestamp)
	assert.Equal(t, 1.5, resp.Transactions[1].Amount)
	assert.Equal(t, -2.0, resp.Transactions[2].Amount)
}

func TestDecodeIgnoresTransactionsWithoutData(t *testing.T) {
	resp, err := Decode([]byte(`{"user_has_data": false, "transactions": "garbage"}`))

	require.NoError(t, err)
	assert.False(t, resp.UserHasData)
	assert.Nil(t, resp.Transactions)
}

func TestDecodeFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing flag", `{"transactions": []}`, "user_has_data"},
		{"null flag", `{"user_has_data": null}`, "user_has_data"},
		{"string flag", `{"user_has_data": "true"}`, "user_has_data"},
		{"missing transactions", `{"user_has_data": true}`, "transactions"},
		{"null transactions", `{"user_has_data": true, "transactions": null}`, "transactions"},
		{"transactions not array", `{"user_has_data": true, "transactions": {}}`, "transactions"},
		{"null element", `{"user_has_data": true, "transactions": [null]}`, "transactions[0]"},
		{"missing timestamp", `{"user_has_data": true, "transactions": [{"amount": 1}]}`, "transactions[0].timestamp"},
		{"numeric timestamp", `{"user_has_data": true, "transactions": [{"timestamp": 1, "amount": 1}]}`, "transactions[0].timestamp"},
		{"missing amount", `{"user_has_data": true, "transactions": [{"timestamp": "a", "amount": 1}, {"timestamp": "b"}]}`, "transactions[1].amount"},
		{"string amount", `{"user_has_data": true, "transactions": [{"timestamp": "a", "amount": "1"}]}`, "transactions[0].amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.body))

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr), "got %v", err)
			assert.Equal(t, tt.field, fieldErr.Field)
			assert.True(t, errors.Is(err, ErrFetch))
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, body := range []string{``, `null`, `[]`, `"text"`, `{"user_has_data": true,`} {
		_, err := Decode([]byte(body))
		assert.True(t, errors.Is(err, ErrMalformedBody), "body %q", body)
	}
}

func TestDecodeEmptyTransactionsWithData(t *testing.T) {
	resp, err := Decode([]byte(`{"user_has_data": true, "transactions": []}`))

	require.NoError(t, err)
	assert.True(t, resp.UserHasData)
	assert.Empty(t, resp.Transactions)
}
