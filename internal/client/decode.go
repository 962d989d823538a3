package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zoomie/transations/internal/models"
)

var null = []byte("null")

// Decode parses a transactions response body. user_has_data must be a
// boolean. When it is true, transactions must be an array whose elements each
// carry a string timestamp and a numeric amount. When it is false the
// transactions field is ignored.
func Decode(body []byte) (*models.APIResponse, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil || top == nil {
		return nil, ErrMalformedBody
	}

	var hasData bool
	if err := decodeField(top, "user_has_data", &hasData, "a boolean"); err != nil {
		return nil, err
	}
	if !hasData {
		return &models.APIResponse{UserHasData: false}, nil
	}

	var items []map[string]json.RawMessage
	if err := decodeField(top, "transactions", &items, "an array of objects"); err != nil {
		return nil, err
	}

	points := make([]models.TransactionPoint, 0, len(items))
	for i, item := range items {
		var p models.TransactionPoint
		prefix := fmt.Sprintf("transactions[%d].", i)
		if item == nil {
			return nil, &FieldError{Field: fmt.Sprintf("transactions[%d]", i), Reason: "must be an object"}
		}
		if err := decodeField(item, "timestamp", &p.Timestamp, "a string"); err != nil {
			err.Field = prefix + err.Field
			return nil, err
		}
		if err := decodeField(item, "amount", &p.Amount, "a number"); err != nil {
			err.Field = prefix + err.Field
			return nil, err
		}
		points = append(points, p)
	}

	return &models.APIResponse{UserHasData: true, Transactions: points}, nil
}

func decodeField(obj map[string]json.RawMessage, name string, dst any, want string) *FieldError {
	raw, ok := obj[name]
	if !ok {
		return &FieldError{Field: name, Reason: "missing"}
	}
	if bytes.Equal(bytes.TrimSpace(raw), null) {
		return &FieldError{Field: name, Reason: "must be " + want + ", got null"}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &FieldError{Field: name, Reason: "must be " + want}
	}
	return nil
}
