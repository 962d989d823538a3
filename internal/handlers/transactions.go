package handlers

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/zoomie/transations/internal/middleware"
	"github.com/zoomie/transations/internal/models"
	"github.com/zoomie/transations/internal/statement"
	"github.com/zoomie/transations/internal/storage"
)

var csvColumns = []string{"timestamp", "description", "transaction_category", "amount"}

// GetTransactions handles GET /api/transactions. With ?format=csv the stored
// transactions are returned as a CSV attachment instead of graph points.
func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.repo.ListTransactions(r.Context(), h.currentUserID())
	if err != nil {
		middleware.Log(r.Context()).Error("failed to list transactions", zap.Error(err))
		http.Error(w, "Failed to load transactions", http.StatusInternalServerError)
		return
	}

	if len(transactions) == 0 {
		writeJSON(w, r, http.StatusOK, models.APIResponse{UserHasData: false})
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, r, transactions)
		return
	}

	writeJSON(w, r, http.StatusOK, models.APIResponse{
		UserHasData:  true,
		Transactions: models.FormatForGraph(transactions),
	})
}

// GetTestTransactions handles GET /api/transactions/test: the mock statement
// formatted for the graph.
func (h *Handler) GetTestTransactions(w http.ResponseWriter, r *http.Request) {
	entries, err := statement.ParseFile(h.mockDataPath)
	if err != nil {
		middleware.Log(r.Context()).Error("failed to load mock data", zap.String("path", h.mockDataPath), zap.Error(err))
		http.Error(w, "Failed to load mock data", http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, models.APIResponse{
		UserHasData:  true,
		Transactions: models.FormatForGraph(statement.ToTransactions(h.currentUserID(), entries)),
	})
}

// ImportStatement handles POST /api/transactions/import. The uploaded
// statement replaces the user's stored history.
func (h *Handler) ImportStatement(w http.ResponseWriter, r *http.Request) {
	log := middleware.Log(r.Context())

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("statement")
	if err != nil {
		http.Error(w, "No file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename, err := h.storage.SaveStatement(header.Filename, file)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			http.Error(w, "Statement must be a JSON file", http.StatusBadRequest)
			return
		}
		log.Error("failed to save statement", zap.Error(err))
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	entries, err := h.parseStored(filename)
	if err != nil {
		log.Warn("rejected statement", zap.String("file", filename), zap.Error(err))
		if err := h.storage.Delete(filename); err != nil {
			log.Error("failed to delete rejected statement", zap.String("file", filename), zap.Error(err))
		}
		http.Error(w, "Invalid statement", http.StatusBadRequest)
		return
	}

	userID := h.currentUserID()
	if err := h.repo.ReplaceTransactions(r.Context(), userID, statement.ToTransactions(userID, entries)); err != nil {
		log.Error("failed to store transactions", zap.Error(err))
		http.Error(w, "Failed to store transactions", http.StatusInternalServerError)
		return
	}

	log.Info("statement imported", zap.String("file", filename), zap.Int("transactions", len(entries)))
	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"success":      true,
		"file":         filename,
		"transactions": len(entries),
	})
}

func (h *Handler) parseStored(filename string) ([]models.BankTransaction, error) {
	rc, err := h.storage.Open(filename)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return statement.Parse(rc)
}

// writeJSON encodes v before the status line is written; encoding failures
// are answered with a 500.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		middleware.Log(r.Context()).Error("failed to encode response", zap.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

func writeCSV(w http.ResponseWriter, r *http.Request, transactions []models.Transaction) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)

	cw := csv.NewWriter(w)
	cw.Write(csvColumns)
	for _, tx := range transactions {
		cw.Write([]string{tx.Timestamp, tx.Description, tx.TransactionCategory, tx.Amount.String()})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		middleware.Log(r.Context()).Error("failed to write csv", zap.Error(err))
	}
}
