// Package statement reads bank statement exports.
package statement

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/zoomie/transations/internal/models"
)

var ErrInvalid = errors.New("invalid statement")

// Parse decodes a statement: either a bare JSON array of transactions or the
// provider's envelope {"results": [...]}.
func Parse(r io.Reader) ([]models.BankTransaction, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}

	var txs []models.BankTransaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		var envelope struct {
			Results *[]models.BankTransaction `json:"results"`
		}
		if err2 := json.Unmarshal(raw, &envelope); err2 != nil || envelope.Results == nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		txs = *envelope.Results
	}

	for i, tx := range txs {
		if tx.Timestamp == "" {
			return nil, fmt.Errorf("%w: entry %d has no timestamp", ErrInvalid, i)
		}
	}
	return txs, nil
}

// ParseFile is Parse for a file on disk.
func ParseFile(path string) ([]models.BankTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// ToTransactions assigns every entry to userID.
func ToTransactions(userID int64, entries []models.BankTransaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(entries))
	for i := range entries {
		out = append(out, entries[i].ToTransaction(userID))
	}
	return out
}
